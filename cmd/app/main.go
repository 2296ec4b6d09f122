package main

import (
	"context"

	"pawsit/config"
	"pawsit/di"
	"pawsit/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title						Pawsit API
//	@version					1.0
//	@description				Pet-sitting marketplace backend: bookings, visits and automatic sitter assignment.
//	@securityDefinitions.apikey	BearerToken
//	@in							header
//	@name						Authorization
//	@BasePath					/

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Warn().Err(err).Msg("continuing with environment-provided configuration")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.Worker.Start(ctx)
	app.HTTP.SetupAndServe()
}
