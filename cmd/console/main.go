package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/config"
	"github.com/thanhvu/engcenter-console/internal/pkg/logger"
	"github.com/thanhvu/engcenter-console/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	configPath := config.GetEnv("CONSOLE_CONFIG", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	email := config.GetEnv("CONSOLE_EMAIL", "")
	password := config.GetEnv("CONSOLE_PASSWORD", "")
	if email == "" || password == "" {
		logger.Error().Msg("CONSOLE_EMAIL and CONSOLE_PASSWORD are required")
		os.Exit(1)
	}

	ctx := context.Background()
	sess := session.New(cfg, logger.Default())

	user, err := sess.Login(ctx, email, password)
	if err != nil {
		logger.Error().Err(err).Msg("Login failed")
		os.Exit(1)
	}
	logger.Info().Str("route", sess.LandingRoute()).Msg("Session established")

	// Smoke-fetch the dashboard lists through the cache
	courses, err := sess.Queries.Courses.List(ctx, dto.PageQuery{Page: 1, Size: dto.DefaultPageSize})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch courses")
	} else {
		logger.Info().Int("count", len(courses.Content)).Int64("total", courses.TotalElements).Msg("Courses loaded")
	}

	parents, err := sess.Queries.Parents.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch parents")
	} else {
		logger.Info().Int("count", len(parents)).Msg("Parents loaded")
	}

	available, err := sess.Queries.Students.Available(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch available students")
	} else {
		logger.Info().Int("count", len(available)).Msg("Available students loaded")
	}

	if err := sess.Logout(ctx); err != nil {
		logger.Warn().Err(err).Msg("Logout completed with errors")
	}

	logger.Info().Str("user", user.Code).Msg("Console run finished")
}
