package database

import (
	"portfolio-cms/internal/domain/media"
	"portfolio-cms/internal/domain/pages"
	"portfolio-cms/internal/domain/posts"
	"portfolio-cms/internal/domain/projects"
	"portfolio-cms/internal/domain/users"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		log.Fatal().Msg("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	DB = db

	// Required for gen_random_uuid() defaults.
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to enable pgcrypto extension")
	}

	if err := DB.AutoMigrate(
		// media
		&media.Media{},
		&media.Size{},

		// projects
		&projects.Project{},
		&projects.Category{},
		&projects.Section{},
		&projects.SectionMedia{},

		// other collections
		&posts.Post{},
		&pages.Page{},
		&users.User{},
	); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate error")
	}

	log.Info().Msg("Connected and migrated successfully")
}
