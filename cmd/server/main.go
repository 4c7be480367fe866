package main

import (
	"context"
	"embed"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/tombcrawler/tombcrawler-server/internal/app"
	"github.com/tombcrawler/tombcrawler-server/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func newLogger() *logrus.Logger {
	logger := logrus.New()

	if config.Development() {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   "logs/server.log",
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		logger.WithError(err).Warn("unable to create rotate file hook")
	} else {
		logger.AddHook(hook)
	}

	return logger
}

func main() {
	logger := newLogger()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a := app.New(logger, migrations)

	if err := a.Start(ctx); err != nil {
		logger.WithError(err).Fatal("failed to start server")
	}
}
