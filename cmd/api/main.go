package main

import (
	"os"

	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
	"github.com/GHAITHBT/Projet-Master-2025/internal/server"
)

// @title Master's Admissions Portal API
// @version 1.0
// @description API for the master's program admissions portal: student applications, university program management and super-admin administration

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
