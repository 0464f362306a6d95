// Copyright 2026 The Strpack Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package logging defines the pluggable logger the store emits region
// lifecycle events through.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level log level for Logger.
type Level uint8

const (
	// Error error log level.
	Error Level = iota
	// Warn warn log level.
	Warn
	// Info info log level.
	Info
	// Debug debug log level.
	Debug
)

// Logger provides an interface for logger implementations. Implementations
// must be safe for concurrent use.
type Logger interface {
	Debug(fmt string, a ...any)
	Info(fmt string, a ...any)
	Error(fmt string, a ...any)
	Warn(fmt string, a ...any)

	WithFields(fields map[string]any) Logger

	GetLevel() Level
	SetLevel(Level)
}

// StandardLogger is the default implementation of the Logger interface,
// backed by logrus.
type StandardLogger struct {
	logger *logrus.Logger
	fields map[string]any
}

// New returns a new standard logger.
func New() *StandardLogger {
	return &StandardLogger{
		logger: logrus.New(),
	}
}

// Get returns a standard logger sharing the global logrus logger.
func Get() *StandardLogger {
	return &StandardLogger{
		logger: logrus.StandardLogger(),
	}
}

// SetOutput sets the underlying logrus output.
func (l *StandardLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

// SetFormatter sets the underlying logrus formatter.
func (l *StandardLogger) SetFormatter(formatter logrus.Formatter) {
	l.logger.SetFormatter(formatter)
}

// WithFields provides additional fields to include in log output.
func (l *StandardLogger) WithFields(fields map[string]any) Logger {
	cp := *l
	cp.fields = make(map[string]any)
	for k, v := range l.fields {
		cp.fields[k] = v
	}
	for k, v := range fields {
		cp.fields[k] = v
	}
	return &cp
}

// SetLevel sets the standard logger level.
func (l *StandardLogger) SetLevel(level Level) {
	var logrusLevel logrus.Level
	switch level {
	case Error:
		logrusLevel = logrus.ErrorLevel
	case Warn:
		logrusLevel = logrus.WarnLevel
	case Info:
		logrusLevel = logrus.InfoLevel
	case Debug:
		logrusLevel = logrus.DebugLevel
	default:
		logrusLevel = logrus.InfoLevel
	}
	l.logger.SetLevel(logrusLevel)
}

// GetLevel returns the standard logger level.
func (l *StandardLogger) GetLevel() Level {
	var level Level
	switch l.logger.GetLevel() {
	case logrus.ErrorLevel:
		level = Error
	case logrus.WarnLevel:
		level = Warn
	case logrus.InfoLevel:
		level = Info
	default:
		level = Debug
	}
	return level
}

// Debug logs at debug level.
func (l *StandardLogger) Debug(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Debugf(fmt, a...)
}

// Info logs at info level.
func (l *StandardLogger) Info(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Infof(fmt, a...)
}

// Error logs at error level.
func (l *StandardLogger) Error(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Errorf(fmt, a...)
}

// Warn logs at warn level.
func (l *StandardLogger) Warn(fmt string, a ...any) {
	l.logger.WithFields(l.fields).Warnf(fmt, a...)
}

// NoOpLogger is a logging implementation that discards everything. It is
// the store's default.
type NoOpLogger struct {
	level  Level
	fields map[string]any
}

// NewNoOpLogger instantiates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{
		level: Info,
	}
}

// WithFields provides additional fields to include in log output.
// Implemented here primarily to be able to switch between implementations
// without loss of data.
func (l *NoOpLogger) WithFields(fields map[string]any) Logger {
	cp := *l
	cp.fields = fields
	return &cp
}

// Debug noop.
func (*NoOpLogger) Debug(string, ...any) {}

// Info noop.
func (*NoOpLogger) Info(string, ...any) {}

// Error noop.
func (*NoOpLogger) Error(string, ...any) {}

// Warn noop.
func (*NoOpLogger) Warn(string, ...any) {}

// SetLevel set log level.
func (l *NoOpLogger) SetLevel(level Level) {
	l.level = level
}

// GetLevel get log level.
func (l *NoOpLogger) GetLevel() Level {
	return l.level
}
