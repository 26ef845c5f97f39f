// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/choria-io/appbuilder/builder"
	"github.com/choria-io/appbuilder/commands/exec"
	"github.com/choria-io/appbuilder/commands/parent"
	"github.com/choria-io/fisk"

	iu "github.com/choria-io/upm/internal/util"
	"github.com/choria-io/upm/model"
)

var (
	ctx        context.Context
	debug      bool
	info       bool
	logJSON    bool
	configFile string
	flagConfig model.Config
	Version    = "development"
)

func main() {
	app := fisk.New("upm", "Universal Package Manager")
	app.Version(Version)
	app.Author("https://choria.io")

	app.Flag("debug", "Enable debug logging").UnNegatableBoolVar(&debug)
	app.Flag("info", "Enable info logging").UnNegatableBoolVar(&info)
	app.Flag("log-json", "Log diagnostics in JSON format").UnNegatableBoolVar(&logJSON)
	app.Flag("config", "Configuration file to use").Envar("UPM_CONFIG").PlaceHolder("FILE").StringVar(&configFile)
	app.Flag("dry-run", "Show commands without running them").UnNegatableBoolVar(&flagConfig.DryRun)
	app.Flag("no-confirm", "Do not ask for confirmation").UnNegatableBoolVar(&flagConfig.NoConfirm)
	app.Flag("needed", "Do not reinstall packages that are already installed").UnNegatableBoolVar(&flagConfig.Needed)
	app.Flag("no-cache", "Remove cached packages after installing or upgrading").UnNegatableBoolVar(&flagConfig.NoCache)
	app.Flag("backend", "Backend to use rather than detecting one").Envar("UPM_BACKEND").StringVar(&flagConfig.Backend)
	app.Flag("metrics-file", "Write metrics to this file in the textfile format").PlaceHolder("FILE").StringVar(&flagConfig.MetricsFile)
	app.Flag("session", "Directory to record operations in").Envar("UPM_SESSION_STORE").PlaceHolder("DIR").StringVar(&flagConfig.SessionDirectory)

	registerOperationCommands(app)
	registerBackendsCommand(app)
	registerHistoryCommand(app)

	var cancel context.CancelFunc
	ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)

	err := extendCli(app)
	if err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "upm: error: could not load CLI extensions: %v\n", err)
		os.Exit(1)
	}

	_, err = app.Parse(os.Args[1:])
	cancel()

	if err != nil && !errors.Is(err, model.ErrCancelled) {
		fmt.Fprintf(os.Stderr, "upm: error: %v\n", err)
	}

	os.Exit(exitCode(err))
}

// exitCode is the exit code of a failed package manager command, 0 when the user declined a prompt
func exitCode(err error) int {
	var cerr *model.CommandError

	switch {
	case err == nil, errors.Is(err, model.ErrCancelled):
		return 0
	case errors.As(err, &cerr) && cerr.ExitCode > 0:
		return cerr.ExitCode
	default:
		return 1
	}
}

func extendCli(app *fisk.Application) error {
	var path string
	var userFile = filepath.Join(xdg.ConfigHome, "choria", "upm", "cli-extension.yaml")
	var systemFile = "/etc/choria/upm/cli-extension.yaml"

	if iu.FileExists(userFile) {
		path = userFile
	} else if iu.FileExists(systemFile) {
		path = systemFile
	}

	if path == "" {
		return nil
	}

	def, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	parent.MustRegister()
	exec.MustRegister()

	ext := app.Command("plugin", "External CLI plugin commands").Alias("ext")

	return builder.MountAsCommand(ctx, ext, def, nil)
}
