package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"portfolio-cms/config"
	"portfolio-cms/database"
	"portfolio-cms/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequirePreviewToken gates draft-preview routes. The token is a short-lived
// HMAC JWT minted for an editor by the admin side; it is accepted from the
// "token" query parameter or a bearer header. The email claim must match an
// existing verified editor account.
func RequirePreviewToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.PREVIEW_JWT_SECRET)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Preview secret not configured"})
			c.Abort()
			return
		}

		tokenString := c.Query("token")
		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				tokenString = ""
			}
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Preview token missing"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired preview token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		var editor users.User
		if err := database.DB.First(&editor, "email = ? AND is_verified = true", email).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown editor"})
			c.Abort()
			return
		}

		c.Set("editor_email", editor.Email)
		c.Next()
	}
}
