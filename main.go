package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded; using the existing environment")
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.WithError(err).Error("invalid arguments")
		logger.Error("usage: company_resolver --input companies.txt --output report.csv")
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewWorkflow(cfg, logger).RunResolution(ctx); err != nil {
		logger.WithError(err).Error("resolution run failed")
		stop()
		os.Exit(1)
	}
}
