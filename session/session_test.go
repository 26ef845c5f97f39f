// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/mock/gomock"

	"github.com/choria-io/upm/metrics"
	"github.com/choria-io/upm/model"
	"github.com/choria-io/upm/model/modelmocks"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Session")
}

func counterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	Expect(c.Write(m)).To(Succeed())
	return m.GetCounter().GetValue()
}

func newEvent(op model.Operation, err error) *model.OperationEvent {
	e := model.NewOperationEvent("run", "brew", op, []string{"wget"}, nil)
	e.Complete(err)
	return e
}

var _ = Describe("Session", func() {
	var (
		mockctl *gomock.Controller
		logger  *modelmocks.MockLogger
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger = modelmocks.NewPermissiveLogger(mockctl)
	})

	AfterEach(func() {
		mockctl.Finish()
	})

	Describe("MemorySessionStore", func() {
		It("Should record events in order and return copies", func() {
			store, err := NewMemorySessionStore(logger)
			Expect(err).ToNot(HaveOccurred())

			e1 := newEvent(model.OpSyncRefresh, nil)
			e2 := newEvent(model.OpSyncUpdate, nil)
			Expect(store.RecordEvent(e1)).To(Succeed())
			Expect(store.RecordEvent(e2)).To(Succeed())

			events, err := store.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(Equal([]*model.OperationEvent{e1, e2}))

			events[0] = nil
			again, _ := store.AllEvents()
			Expect(again[0]).To(Equal(e1))
		})

		It("Should update operation metrics", func() {
			store, err := NewMemorySessionStore(logger)
			Expect(err).ToNot(HaveOccurred())

			count := counterValue(metrics.OperationCount.WithLabelValues("brew", "remove-with-deps"))
			failures := counterValue(metrics.OperationErrorCount.WithLabelValues("brew", "remove-with-deps"))

			Expect(store.RecordEvent(newEvent(model.OpRemoveWithDeps, model.ErrRequiredComponentMissing))).To(Succeed())
			Expect(store.RecordEvent(newEvent(model.OpRemoveWithDeps, model.ErrCancelled))).To(Succeed())

			Expect(counterValue(metrics.OperationCount.WithLabelValues("brew", "remove-with-deps"))).To(Equal(count + 2))
			Expect(counterValue(metrics.OperationErrorCount.WithLabelValues("brew", "remove-with-deps"))).To(Equal(failures + 1))
		})
	})

	Describe("DirectorySessionStore", func() {
		var dir string

		BeforeEach(func() {
			dir = filepath.Join(GinkgoT().TempDir(), "history")
		})

		It("Should require a directory", func() {
			_, err := NewDirectorySessionStore("", logger)
			Expect(err).To(MatchError("session directory path cannot be empty"))
		})

		It("Should return nothing before any event is recorded", func() {
			store, err := NewDirectorySessionStore(dir, logger)
			Expect(err).ToNot(HaveOccurred())

			events, err := store.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(BeEmpty())
		})

		It("Should create the directory and persist events", func() {
			store, err := NewDirectorySessionStore(dir, logger)
			Expect(err).ToNot(HaveOccurred())

			e1 := newEvent(model.OpSyncInstall, nil)
			e2 := newEvent(model.OpSyncCleanAll, &model.CommandError{Program: "brew", Args: []string{"cleanup", "-s"}, ExitCode: 1})
			Expect(store.RecordEvent(e1)).To(Succeed())
			Expect(store.RecordEvent(e2)).To(Succeed())

			Expect(filepath.Join(dir, e1.EventID+".event")).To(BeARegularFile())

			reopened, err := NewDirectorySessionStore(dir, logger)
			Expect(err).ToNot(HaveOccurred())

			events, err := reopened.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(2))
			Expect(events[0].EventID).To(Equal(e1.EventID))
			Expect(events[0].Keywords).To(Equal([]string{"wget"}))
			Expect(events[1].Outcome).To(Equal(model.OutcomeFailed))
			Expect(events[1].ExitCode).To(Equal(1))
		})

		It("Should reject events with unsafe ids", func() {
			store, err := NewDirectorySessionStore(dir, logger)
			Expect(err).ToNot(HaveOccurred())

			e := newEvent(model.OpQuery, nil)
			e.EventID = "../../etc/passwd"
			Expect(store.RecordEvent(e)).To(MatchError(ContainSubstring("invalid event ID")))
		})

		It("Should skip unrelated and corrupt files", func() {
			store, err := NewDirectorySessionStore(dir, logger)
			Expect(err).ToNot(HaveOccurred())
			Expect(store.RecordEvent(newEvent(model.OpQuery, nil))).To(Succeed())

			Expect(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "broken.event"), []byte("{"), 0644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "other.event"), []byte(`{"protocol":"io.choria.ccm.v1.transaction"}`), 0644)).To(Succeed())

			logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

			events, err := store.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(1))
		})
	})

	Describe("FilterEvents", func() {
		It("Should select events by operation", func() {
			events := []*model.OperationEvent{newEvent(model.OpQuery, nil), newEvent(model.OpRemove, nil), newEvent(model.OpQuery, nil)}

			Expect(FilterEvents(events, "")).To(HaveLen(3))
			Expect(FilterEvents(events, model.OpQuery)).To(Equal([]*model.OperationEvent{events[0], events[2]}))
			Expect(FilterEvents(events, model.OpSyncRefresh)).To(BeEmpty())
		})
	})

	Describe("SelectEvents", func() {
		var events []*model.OperationEvent

		BeforeEach(func() {
			events = []*model.OperationEvent{
				newEvent(model.OpQuery, nil),
				newEvent(model.OpRemove, &model.CommandError{Program: "brew", ExitCode: 2}),
				newEvent(model.OpSyncInstall, errors.New("boom")),
			}
		})

		It("Should return all events without an expression", func() {
			Expect(SelectEvents(events, "")).To(Equal(events))
		})

		It("Should select matching events", func() {
			Expect(SelectEvents(events, `outcome == "failed" && exit_code == 2`)).To(Equal([]*model.OperationEvent{events[1]}))
			Expect(SelectEvents(events, `operation startsWith "sync" || operation == "query"`)).To(Equal([]*model.OperationEvent{events[0], events[2]}))
			Expect(SelectEvents(events, `"wget" in keywords && !dry_run`)).To(HaveLen(3))
		})

		It("Should reject invalid and non boolean expressions", func() {
			_, err := SelectEvents(events, `outcome ==`)
			Expect(err).To(MatchError(ContainSubstring("expr compile error")))

			_, err = SelectEvents(events, `exit_code + 1`)
			Expect(err).To(HaveOccurred())
		})
	})
})
