package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/ndbell/nonogram-server/internal/app"
	"github.com/ndbell/nonogram-server/internal/config"
	"github.com/ndbell/nonogram-server/migrations"
)

var log = logrus.New()

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile := config.LogFile(); logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return err
		}
		log.AddHook(hook)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up")

	a := app.New(log, migrations.FS)
	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("exit reason: ", err)
	}
}
