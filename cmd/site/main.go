package main

import (
	"context"
	"flag"
	"os"
	"time"

	"portfolio-cms/config"
	"portfolio-cms/internal/content"
	"portfolio-cms/internal/web"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	exportDir := flag.String("export", "", "pre-render the site into this directory and exit")
	flag.Parse()

	config.LoadSiteEnv()

	client := content.NewClient(config.CONTENT_BASE_URL)
	resolver := content.NewResolver(config.CONTENT_BASE_URL)
	server := web.NewServer(client, resolver)

	if *exportDir != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := server.Export(ctx, *exportDir); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		return
	}

	if err := server.Router().Run(":" + config.SITE_PORT); err != nil {
		log.Fatal().Err(err).Msg("site server exited")
	}
}
