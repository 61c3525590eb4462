package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Tanapat0215/Exit-Exam68/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Start()
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	if err := app.Run(ctx); err != nil {
		zap.L().Fatal("Console session ended with error: ", zap.Error(err))
	}

	zap.L().Info("Session closed")
}
