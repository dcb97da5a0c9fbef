package main

import (
	"os"

	"github.com/PeteShepley/simple-point-of-sale/configs"
	"github.com/PeteShepley/simple-point-of-sale/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	logger := configs.NewLogger(cfg, os.Stdout)

	// DB
	db, err := configs.ConnectionDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("connect database failed")
	}

	// migrate
	if cfg.AutoMigrate {
		if err := configs.SetupDatabase(db); err != nil {
			logger.Fatal().Err(err).Msg("migrate failed")
		}
	}
	if cfg.Seed {
		if err := configs.SeedSample(db, logger); err != nil {
			logger.Fatal().Err(err).Msg("seed failed")
		}
	}

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.NewRouter(cfg, db, logger)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
