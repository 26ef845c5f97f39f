// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"

	"github.com/choria-io/upm/model"
)

var (
	_ model.Logger = (*SlogLogger)(nil)
	_ model.Logger = (*LogrusLogger)(nil)
)

// SlogLogger logs to a slog.Logger, used for diagnostics and for the user facing command output
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger(log *slog.Logger) *SlogLogger {
	return &SlogLogger{log: log}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.emit(slog.LevelDebug, msg, args) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.emit(slog.LevelInfo, msg, args) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.emit(slog.LevelWarn, msg, args) }
func (s *SlogLogger) Error(msg string, args ...any) { s.emit(slog.LevelError, msg, args) }

func (s *SlogLogger) With(args ...any) model.Logger {
	return NewSlogLogger(s.log.With(args...))
}

func (s *SlogLogger) emit(level slog.Level, msg string, args []any) {
	s.log.Log(context.Background(), level, msg, args...)
}

// LogrusLogger logs to a logrus entry, used when diagnostics are logged as JSON
type LogrusLogger struct {
	entry *logrus.Entry
}

func NewLogrusLogger(entry *logrus.Entry) *LogrusLogger {
	return &LogrusLogger{entry: entry}
}

func (l *LogrusLogger) Debug(msg string, args ...any) { l.emit(logrus.DebugLevel, msg, args) }
func (l *LogrusLogger) Info(msg string, args ...any)  { l.emit(logrus.InfoLevel, msg, args) }
func (l *LogrusLogger) Warn(msg string, args ...any)  { l.emit(logrus.WarnLevel, msg, args) }
func (l *LogrusLogger) Error(msg string, args ...any) { l.emit(logrus.ErrorLevel, msg, args) }

func (l *LogrusLogger) With(args ...any) model.Logger {
	return NewLogrusLogger(l.entry.WithFields(logrusFields(args)))
}

func (l *LogrusLogger) emit(level logrus.Level, msg string, args []any) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}

	l.entry.WithFields(logrusFields(args)).Log(level, msg)
}

// logrusFields reads args the way slog does: slog.Attr values, key value pairs, and a trailing value under !BADKEY
func logrusFields(args []any) logrus.Fields {
	fields := logrus.Fields{}

	for len(args) > 0 {
		switch key := args[0].(type) {
		case slog.Attr:
			fields[key.Key] = key.Value.Resolve().Any()
			args = args[1:]

		case string:
			if len(args) == 1 {
				fields["!BADKEY"] = key
				return fields
			}
			fields[key] = args[1]
			args = args[2:]

		default:
			if len(args) == 1 {
				fields["!BADKEY"] = key
				return fields
			}
			fields[fmt.Sprint(key)] = args[1]
			args = args[2:]
		}
	}

	return fields
}
