package main

import (
	"pawsit/config"
	"pawsit/helper"
	"pawsit/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Warn().Err(err).Msg("continuing with environment-provided configuration")
	}

	if err := helper.Migrate(config.Get()); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
