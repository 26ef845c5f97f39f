// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"bytes"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Loggers", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	Describe("SlogLogger", func() {
		It("Should log with context", func() {
			log := NewSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

			log.With("run", "abc").Info("Running operation", "operation", "query")
			log.Debug("hidden")

			Expect(buf.String()).To(ContainSubstring(`msg="Running operation"`))
			Expect(buf.String()).To(ContainSubstring("run=abc"))
			Expect(buf.String()).To(ContainSubstring("operation=query"))
			Expect(buf.String()).ToNot(ContainSubstring("hidden"))
		})

		It("Should log every level", func() {
			log := NewSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

			log.Debug("one")
			log.Warn("two")
			log.Error("three")

			Expect(buf.String()).To(ContainSubstring("level=DEBUG msg=one"))
			Expect(buf.String()).To(ContainSubstring("level=WARN msg=two"))
			Expect(buf.String()).To(ContainSubstring("level=ERROR msg=three"))
		})
	})

	Describe("LogrusLogger", func() {
		var (
			log    *LogrusLogger
			decode func() map[string]any
		)

		BeforeEach(func() {
			l := logrus.New()
			l.SetOutput(buf)
			l.SetFormatter(&logrus.JSONFormatter{})
			l.SetLevel(logrus.InfoLevel)

			log = NewLogrusLogger(logrus.NewEntry(l))

			decode = func() map[string]any {
				var entry map[string]any
				Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
				return entry
			}
		})

		It("Should log fields with context", func() {
			log.With("run", "abc").Warn("Could not record operation", "error", "disk full")

			entry := decode()
			Expect(entry).To(HaveKeyWithValue("msg", "Could not record operation"))
			Expect(entry).To(HaveKeyWithValue("level", "warning"))
			Expect(entry).To(HaveKeyWithValue("run", "abc"))
			Expect(entry).To(HaveKeyWithValue("error", "disk full"))
		})

		It("Should handle malformed key value pairs", func() {
			log.Error("failed", 1, "one", "dangling")

			entry := decode()
			Expect(entry).To(HaveKeyWithValue("1", "one"))
			Expect(entry).To(HaveKeyWithValue("!BADKEY", "dangling"))
		})

		It("Should accept slog attributes", func() {
			log.Info("Selected backend", slog.String("backend", "brew"), slog.Int("priority", 1), "run", "abc")

			entry := decode()
			Expect(entry).To(HaveKeyWithValue("backend", "brew"))
			Expect(entry).To(HaveKeyWithValue("priority", float64(1)))
			Expect(entry).To(HaveKeyWithValue("run", "abc"))
		})

		It("Should honor the level", func() {
			log.Debug("hidden")
			Expect(buf.Len()).To(Equal(0))
		})
	})
})
