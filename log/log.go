// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides a minimal leveled logger used throughout the fru
// package and the frugen CLI. It is first-party code within this module,
// not a fetched dependency: it exists to give decode/encode diagnostics a
// consistent Helper/Logger shape without pulling in a full structured
// logging framework for a handful of Debug/Warn/Error call sites.
package log

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Level orders log severities; a Filter drops anything below its
// configured Level.
type Level int

// Log levels, lowest to highest severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String implements fmt.Stringer.
func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "UNKNOWN"
}

// Logger is the minimal sink every log call goes through.
type Logger interface {
	Log(level Level, msg string) error
}

// stdLogger writes to an io.Writer via the standard library's log.Logger.
type stdLogger struct {
	mu  sync.Mutex
	std *log.Logger
}

// NewStdLogger returns a Logger that writes timestamped lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{std: log.New(w, "", log.LstdFlags)}
}

// Log implements Logger.
func (l *stdLogger) Log(level Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Printf("[%s] %s", level, msg)
	return nil
}

// filter wraps a Logger, dropping any record below its configured level.
type filter struct {
	next  Logger
	level Level
}

// FilterOption configures a filter built by NewFilter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a filter lets through.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) { f.level = level }
}

// NewFilter wraps next with the given options (currently just FilterLevel).
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, level: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Log implements Logger.
func (f *filter) Log(level Level, msg string) error {
	if level < f.level {
		return nil
	}
	return f.next.Log(level, msg)
}

// Helper adds printf-style convenience methods over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) { h.log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) { h.log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }
