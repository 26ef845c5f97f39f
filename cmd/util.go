// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/SladkyCitron/slogcolor"
	"github.com/sirupsen/logrus"

	"github.com/choria-io/upm/internal/config"
	"github.com/choria-io/upm/manager"
	"github.com/choria-io/upm/model"
)

func newManager() (*manager.UPM, error) {
	logger := newLogger()

	cfg, err := config.Load(configFile, logger)
	if err != nil {
		return nil, err
	}

	cfg = config.Override(cfg, flagConfig)

	return manager.NewManager(logger, newOutputLogger(), manager.WithConfig(cfg))
}

func newOutputLogger() model.Logger {
	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	return manager.NewSlogLogger(slog.New(slogcolor.NewHandler(os.Stdout, &slogcolor.Options{Level: level})))
}

func newLogger() model.Logger {
	if logJSON {
		return newJSONLogger()
	}

	var level slog.Level

	switch {
	case debug:
		level = slog.LevelDebug
	case info:
		level = slog.LevelInfo
	default:
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return manager.NewSlogLogger(logger)
}

func newJSONLogger() model.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.JSONFormatter{})

	switch {
	case debug:
		log.SetLevel(logrus.DebugLevel)
	case info:
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	return manager.NewLogrusLogger(logrus.NewEntry(log))
}
