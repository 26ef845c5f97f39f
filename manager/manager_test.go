// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/segmentio/ksuid"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/upm/backends/brew"
	"github.com/choria-io/upm/internal/engine"
	"github.com/choria-io/upm/internal/registry"
	"github.com/choria-io/upm/model"
	"github.com/choria-io/upm/model/modelmocks"
	"github.com/choria-io/upm/session"
)

func TestManager(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Manager Suite")
}

var _ = Describe("Manager", func() {
	var (
		mockctl *gomock.Controller
		logger  *modelmocks.MockLogger
		out     *modelmocks.MockLogger
		runner  *modelmocks.MockCommandRunner
		confirm *modelmocks.MockConfirmer
		stdin   *strings.Reader
		stdout  *bytes.Buffer
		stderr  *bytes.Buffer
		ctx     context.Context
	)

	newManager := func(cfg model.Config, opts ...Option) *UPM {
		opts = append([]Option{
			WithConfig(cfg),
			WithRunner(runner),
			WithConfirmer(confirm),
			WithOutput(stdin, stdout, stderr),
		}, opts...)

		mgr, err := NewManager(logger, out, opts...)
		Expect(err).ToNot(HaveOccurred())

		return mgr
	}

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewPermissiveLogger(mockctl)
		out = modelmocks.NewPermissiveLogger(mockctl)
		runner = modelmocks.NewMockCommandRunner(mockctl)
		confirm = modelmocks.NewMockConfirmer(mockctl)
		stdin = strings.NewReader("")
		stdout = &bytes.Buffer{}
		stderr = &bytes.Buffer{}
		ctx = context.Background()

		registry.Clear()
		DeferCleanup(registry.Clear)
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	Describe("NewManager", func() {
		It("Should have a unique run id", func() {
			mgr := newManager(model.Config{})
			_, err := ksuid.Parse(mgr.RunID())
			Expect(err).ToNot(HaveOccurred())
			Expect(newManager(model.Config{}).RunID()).ToNot(Equal(mgr.RunID()))
		})

		It("Should validate options", func() {
			_, err := NewManager(logger, out, WithRunner(nil))
			Expect(err).To(MatchError("runner is required"))

			_, err = NewManager(logger, out, WithOutput(nil, stdout, stderr))
			Expect(err).To(MatchError("all of stdin, stdout and stderr are required"))
		})

		It("Should default to a memory session store", func() {
			mgr := newManager(model.Config{})
			Expect(mgr.session).To(BeAssignableToTypeOf(&session.MemorySessionStore{}))
		})

		It("Should use a directory session store when configured", func() {
			mgr := newManager(model.Config{SessionDirectory: GinkgoT().TempDir()})
			Expect(mgr.session).To(BeAssignableToTypeOf(&session.DirectorySessionStore{}))
		})

		It("Should require key value pairs for loggers", func() {
			mgr := newManager(model.Config{})

			_, err := mgr.Logger("component")
			Expect(err).To(MatchError(ContainSubstring("must be key value pairs")))

			_, err = mgr.Logger("component", "test")
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Describe("Run", func() {
		var (
			factory *modelmocks.MockBackendFactory
			backend *modelmocks.MockBackend
		)

		BeforeEach(func() {
			factory = modelmocks.NewMockBackendFactory(mockctl)
			backend = modelmocks.NewMockBackend(mockctl)

			factory.EXPECT().Name().Return("mock").AnyTimes()
			factory.EXPECT().IsManageable().Return(true, 1, nil).AnyTimes()
			backend.EXPECT().Name().Return("mock").AnyTimes()
		})

		It("Should fail when no backend is suitable", func() {
			mgr := newManager(model.Config{})

			Expect(mgr.Run(ctx, model.OpQuery, nil, nil)).To(MatchError(model.ErrNoSuitableBackend))

			events, err := mgr.History()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(BeEmpty())
		})

		It("Should create the backend once and dispatch operations", func() {
			cfg := model.Config{NoConfirm: true, Needed: true}

			factory.EXPECT().New(gomock.Any()).DoAndReturn(func(opts model.BackendOptions) (model.Backend, error) {
				Expect(opts.Config).To(Equal(cfg))
				Expect(opts.Executor).To(BeAssignableToTypeOf(&engine.Engine{}))
				Expect(opts.Stdout).To(BeIdenticalTo(stdout))
				return backend, nil
			}).Times(1)
			registry.MustRegister(factory)

			backend.EXPECT().SyncRefresh(gomock.Any(), gomock.Nil(), gomock.Nil()).Return(nil)
			backend.EXPECT().SyncInstall(gomock.Any(), []string{"wget"}, []string{"--verbose"}).Return(nil)

			mgr := newManager(cfg)
			Expect(mgr.Run(ctx, model.OpSyncRefresh, nil, nil)).To(Succeed())
			Expect(mgr.Run(ctx, model.OpSyncInstall, []string{"wget"}, []string{"--verbose"})).To(Succeed())

			events, err := mgr.History()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(2))
			Expect(events[1].Operation).To(Equal(model.OpSyncInstall))
			Expect(events[1].Backend).To(Equal("mock"))
			Expect(events[1].RunID).To(Equal(mgr.RunID()))
			Expect(events[1].Outcome).To(Equal(model.OutcomeSuccess))
		})

		It("Should return and record failures", func() {
			factory.EXPECT().New(gomock.Any()).Return(backend, nil)
			registry.MustRegister(factory)

			failure := &model.CommandError{Program: "brew", Args: []string{"uninstall", "wget"}, ExitCode: 2}
			backend.EXPECT().Remove(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure)

			mgr := newManager(model.Config{})
			Expect(mgr.Run(ctx, model.OpRemove, []string{"wget"}, nil)).To(BeIdenticalTo(failure))

			events, _ := mgr.History()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Outcome).To(Equal(model.OutcomeFailed))
			Expect(events[0].ExitCode).To(Equal(2))
		})

		It("Should record cancellations", func() {
			factory.EXPECT().New(gomock.Any()).Return(backend, nil)
			registry.MustRegister(factory)
			backend.EXPECT().SyncClean(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.ErrCancelled)

			mgr := newManager(model.Config{})
			Expect(mgr.Run(ctx, model.OpSyncClean, nil, nil)).To(MatchError(model.ErrCancelled))

			events, _ := mgr.History()
			Expect(events[0].Outcome).To(Equal(model.OutcomeCancelled))
		})

		It("Should reject unknown operations", func() {
			factory.EXPECT().New(gomock.Any()).Return(backend, nil)
			registry.MustRegister(factory)

			mgr := newManager(model.Config{})
			Expect(mgr.Run(ctx, model.Operation("bogus"), nil, nil)).To(MatchError(model.ErrUnknownOperation))
		})

		It("Should write metrics and persist history when configured", func() {
			td := GinkgoT().TempDir()
			cfg := model.Config{
				DryRun:           true,
				MetricsFile:      filepath.Join(td, "upm.prom"),
				SessionDirectory: filepath.Join(td, "history"),
			}

			factory.EXPECT().New(gomock.Any()).Return(backend, nil)
			registry.MustRegister(factory)
			backend.EXPECT().SyncUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			mgr := newManager(cfg)
			Expect(mgr.Run(ctx, model.OpSyncUpdate, nil, nil)).To(Succeed())

			prom, err := os.ReadFile(cfg.MetricsFile)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(prom)).To(ContainSubstring(`choria_upm_operation_count{backend="mock",operation="sync-update"}`))

			store, err := session.NewDirectorySessionStore(cfg.SessionDirectory, logger)
			Expect(err).ToNot(HaveOccurred())
			events, err := store.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(1))
			Expect(events[0].DryRun).To(BeTrue())
		})
	})

	Describe("brew", func() {
		BeforeEach(func() {
			td := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(td, "brew"), []byte("#!/bin/sh\nexit 0\n"), 0755)).To(Succeed())

			path := os.Getenv("PATH")
			DeferCleanup(os.Setenv, "PATH", path)
			Expect(os.Setenv("PATH", td)).To(Succeed())

			brew.Register()
		})

		It("Should search installed packages", func() {
			runner.EXPECT().ExecuteWithOptions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, opts model.ExtendedExecOptions) ([]byte, []byte, int, error) {
				Expect(opts.Command).To(Equal("brew"))
				Expect(opts.Args).To(Equal([]string{"list"}))
				Expect(opts.Stdout).To(BeNil())
				return []byte("gettext\ngit\nwget\n"), nil, 0, nil
			})

			mgr := newManager(model.Config{Backend: "brew"})
			Expect(mgr.Run(ctx, model.OpQuery, []string{"^g"}, nil)).To(Succeed())
			Expect(stdout.String()).To(Equal("gettext\ngit\n"))
		})

		It("Should not spawn anything when a prompt is declined", func() {
			confirm.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, nil)

			mgr := newManager(model.Config{})
			Expect(mgr.Run(ctx, model.OpSyncClean, nil, nil)).To(MatchError(model.ErrCancelled))
		})

		It("Should install and purge without prompting under no_confirm", func() {
			gomock.InOrder(
				runner.EXPECT().ExecuteWithOptions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, opts model.ExtendedExecOptions) ([]byte, []byte, int, error) {
					Expect(opts.Args).To(Equal([]string{"reinstall", "wget"}))
					Expect(opts.Stdout).To(BeIdenticalTo(stdout))
					return nil, nil, 0, nil
				}),
				runner.EXPECT().ExecuteWithOptions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, opts model.ExtendedExecOptions) ([]byte, []byte, int, error) {
					Expect(opts.Args).To(Equal([]string{"cleanup", "-s", "wget"}))
					return nil, nil, 0, nil
				}),
			)

			mgr := newManager(model.Config{NoConfirm: true, NoCache: true})
			Expect(mgr.Run(ctx, model.OpSyncInstall, []string{"wget"}, nil)).To(Succeed())
		})

		It("Should explain a missing rmtree", func() {
			runner.EXPECT().ExecuteWithOptions(gomock.Any(), gomock.Any()).Return(nil, []byte("Error: Unknown command: rmtree\n"), 1, nil)

			mgr := newManager(model.Config{})
			Expect(mgr.Run(ctx, model.OpRemoveWithDeps, []string{"wget"}, nil)).To(MatchError(model.ErrRequiredComponentMissing))
		})
	})
})

