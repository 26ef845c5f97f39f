// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/choria-io/upm/internal/engine"
	"github.com/choria-io/upm/internal/filter"
	"github.com/choria-io/upm/model"
)

const (
	// BackendName is the name the backend is registered as
	BackendName = "brew"

	program = "brew"
)

var rmtreeMissing = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`Unknown command:\s*rmtree`)
})

// Backend maps operations onto Homebrew and Linuxbrew
type Backend struct {
	cfg    model.Config
	exec   model.Executor
	stdout io.Writer
	log    model.Logger
	out    model.Logger
}

var _ model.Backend = (*Backend)(nil)

// NewBrewBackend creates a new brew backend
func NewBrewBackend(opts model.BackendOptions) (*Backend, error) {
	if opts.Executor == nil {
		return nil, fmt.Errorf("executor is required")
	}
	if opts.Logger == nil || opts.UserLogger == nil {
		return nil, fmt.Errorf("loggers are required")
	}

	b := &Backend{
		cfg:    opts.Config,
		exec:   opts.Executor,
		stdout: opts.Stdout,
		log:    opts.Logger.With("backend", BackendName),
		out:    opts.UserLogger,
	}

	if b.stdout == nil {
		b.stdout = os.Stdout
	}

	return b, nil
}

// Name returns the backend name
func (b *Backend) Name() string {
	return BackendName
}

func (b *Backend) execute(ctx context.Context, mode model.ExecutionMode, kws []string, flags []string, subcmd ...string) (*model.CommandResult, error) {
	cmd := model.NewCommand(program, subcmd...).WithKeywords(kws).WithFlags(flags)

	b.log.Debug("Executing mapped command", "command", cmd.String(), "mode", mode.String())

	return b.exec.Execute(ctx, cmd, mode)
}

// justRun runs informational and intended commands, previewing them under dry run
func (b *Backend) justRun(ctx context.Context, kws []string, flags []string, subcmd ...string) error {
	_, err := b.execute(ctx, model.ResolveMode(b.cfg, model.InfoClass), kws, flags, subcmd...)
	return err
}

// promptRun runs destructive commands after confirmation unless no_confirm is set
func (b *Backend) promptRun(ctx context.Context, kws []string, flags []string, subcmd ...string) error {
	_, err := b.execute(ctx, model.ResolveMode(b.cfg, model.PromptedClass), kws, flags, subcmd...)
	return err
}

// Query lists installed packages, with keywords it searches them
func (b *Backend) Query(ctx context.Context, kws []string, flags []string) error {
	if len(kws) > 0 {
		return b.QuerySearch(ctx, kws, flags)
	}

	return b.justRun(ctx, nil, flags, "list")
}

// QueryChangelog shows the changelog of a package
func (b *Backend) QueryChangelog(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "log")
}

// QueryInfo shows local package information, brew does not distinguish local and remote information
func (b *Backend) QueryInfo(ctx context.Context, kws []string, flags []string) error {
	return b.SyncInfo(ctx, kws, flags)
}

// QueryFiles lists files provided by local packages
func (b *Backend) QueryFiles(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "list")
}

// QuerySearch captures the list of installed packages and shows those matching all keywords
func (b *Backend) QuerySearch(ctx context.Context, kws []string, flags []string) error {
	f, err := filter.Compile(kws)
	if err != nil {
		return err
	}

	mode := model.ResolveMode(b.cfg, model.CaptureClass)

	res, err := b.execute(ctx, mode, nil, flags, "list")
	if err != nil {
		return err
	}

	if mode == model.DryRun {
		return nil
	}

	text, err := engine.DecodeText(res.Stdout)
	if err != nil {
		return err
	}

	return f.Emit(text, b.stdout)
}

// QueryUpdates lists packages with an update available
func (b *Backend) QueryUpdates(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "outdated")
}

// Remove removes packages leaving their dependencies installed
func (b *Backend) Remove(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "uninstall")
}

// RemoveWithDeps removes packages and their unused dependencies using the rmtree external command
func (b *Backend) RemoveWithDeps(ctx context.Context, kws []string, flags []string) error {
	subcmd := []string{"rmtree"}
	if b.cfg.DryRun {
		subcmd = append(subcmd, "--dry-run")
	}

	res, err := b.execute(ctx, model.CheckErr, kws, flags, subcmd...)
	if err != nil && !errors.Is(err, model.ErrCommandFailed) {
		return err
	}

	if res != nil && rmtreeMissing().Match(res.Stderr) {
		b.out.Info("`rmtree` is not installed. You may install it with the following command:")
		b.out.Info("`brew tap beeftornado/rmtree`")

		return fmt.Errorf("%w: rmtree", model.ErrRequiredComponentMissing)
	}

	return err
}

// SyncInstall installs packages, reinstalling those already present unless needed is set
func (b *Backend) SyncInstall(ctx context.Context, kws []string, flags []string) error {
	subcmd := "reinstall"
	if b.cfg.Needed {
		subcmd = "install"
	}

	return engine.RunSteps(ctx,
		func(ctx context.Context) error { return b.justRun(ctx, kws, flags, subcmd) },
		engine.Optional(b.cfg.NoCache, func(ctx context.Context) error { return b.SyncCleanAll(ctx, kws, flags) }),
	)
}

// SyncClean removes cached packages that are no longer installed
func (b *Backend) SyncClean(ctx context.Context, kws []string, flags []string) error {
	if b.cfg.DryRun {
		_, err := b.execute(ctx, model.CheckErr, kws, flags, "cleanup", "--dry-run")
		return err
	}

	return b.promptRun(ctx, kws, flags, "cleanup")
}

// SyncCleanAll removes all files from the cache
func (b *Backend) SyncCleanAll(ctx context.Context, kws []string, flags []string) error {
	if b.cfg.DryRun {
		_, err := b.execute(ctx, model.CheckErr, kws, flags, "cleanup", "-s", "--dry-run")
		return err
	}

	return b.promptRun(ctx, kws, flags, "cleanup", "-s")
}

// SyncInfo shows remote package information
func (b *Backend) SyncInfo(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "info")
}

// SyncReverseDeps shows packages that require the given packages
func (b *Backend) SyncReverseDeps(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "uses")
}

// SyncSearch searches remote packages
func (b *Backend) SyncSearch(ctx context.Context, kws []string, flags []string) error {
	return b.justRun(ctx, kws, flags, "search")
}

// SyncUpdate upgrades outdated packages
func (b *Backend) SyncUpdate(ctx context.Context, kws []string, flags []string) error {
	return engine.RunSteps(ctx,
		func(ctx context.Context) error { return b.justRun(ctx, kws, flags, "upgrade") },
		engine.Optional(b.cfg.NoCache, func(ctx context.Context) error { return b.SyncCleanAll(ctx, kws, flags) }),
	)
}

// SyncUpdateRefresh refreshes the package database and then upgrades
func (b *Backend) SyncUpdateRefresh(ctx context.Context, kws []string, flags []string) error {
	return engine.RunSteps(ctx,
		func(ctx context.Context) error { return b.SyncRefresh(ctx, nil, flags) },
		func(ctx context.Context) error { return b.SyncUpdate(ctx, kws, flags) },
	)
}

// SyncDownload fetches packages without installing them
func (b *Backend) SyncDownload(ctx context.Context, kws []string, flags []string) error {
	return b.promptRun(ctx, kws, flags, "fetch")
}

// SyncRefresh refreshes the package database, keywords are not supported by brew
func (b *Backend) SyncRefresh(ctx context.Context, _ []string, flags []string) error {
	return b.justRun(ctx, nil, flags, "update")
}
