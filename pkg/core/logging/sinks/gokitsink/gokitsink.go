/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gokitsink provides sinks backed by a go-kit logger.
//
// go-kit loggers cannot be queried for a level, enablement is decided by the
// module level table alone. FATAL is emitted at level error and TRACE at
// level debug, each with a severity key.
package gokitsink

import (
	"io"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/sinks"
	"github.com/securekey/fabric-logbridge/pkg/util/concurrent/lazycache"
)

// Keys of every emitted record
const (
	ModuleKey   = "module"
	MessageKey  = "msg"
	CauseKey    = "err"
	SeverityKey = "severity"
)

// NewLogfmtLogger returns a synchronized logfmt logger with a UTC timestamp.
func NewLogfmtLogger(w io.Writer) log.Logger {
	if w == nil {
		w = os.Stdout
	}
	return log.With(log.NewLogfmtLogger(log.NewSyncWriter(w)), "ts", log.DefaultTimestampUTC)
}

// NewJSONLogger returns a synchronized JSON logger with a UTC timestamp.
func NewJSONLogger(w io.Writer) log.Logger {
	if w == nil {
		w = os.Stdout
	}
	return log.With(log.NewJSONLogger(log.NewSyncWriter(w)), "ts", log.DefaultTimestampUTC)
}

// Resolver creates one contextual go-kit logger per module.
type Resolver struct {
	*sinks.Levels
	logger log.Logger
	cache  *lazycache.Cache
}

// New returns a resolver logging through logger, a logfmt logger on stdout
// if nil.
func New(logger log.Logger) *Resolver {
	if logger == nil {
		logger = NewLogfmtLogger(os.Stdout)
	}

	r := &Resolver{
		Levels: sinks.NewLevels(sink.INFO),
		logger: logger,
	}
	r.cache = lazycache.New("gokitsink", func(module string) (interface{}, error) {
		return &Sink{
			logger: log.With(r.logger, ModuleKey, module),
			module: module,
			levels: r.Levels,
		}, nil
	})
	return r
}

// GetSink returns the sink for the given module, creating it if needed.
func (r *Resolver) GetSink(module string) (sink.Sink, error) {
	s, err := r.cache.Get(module)
	if err != nil {
		return nil, err
	}
	return s.(*Sink), nil
}

// Sink is a go-kit backed module sink.
type Sink struct {
	logger log.Logger
	module string
	levels *sinks.Levels
}

// IsFatalEnabled reports whether FATAL is enabled for the module.
func (s *Sink) IsFatalEnabled() bool { return s.levels.IsEnabledFor(s.module, sink.FATAL) }

// IsErrorEnabled reports whether ERROR is enabled for the module.
func (s *Sink) IsErrorEnabled() bool { return s.levels.IsEnabledFor(s.module, sink.ERROR) }

// IsWarnEnabled reports whether WARN is enabled for the module.
func (s *Sink) IsWarnEnabled() bool { return s.levels.IsEnabledFor(s.module, sink.WARN) }

// IsInfoEnabled reports whether INFO is enabled for the module.
func (s *Sink) IsInfoEnabled() bool { return s.levels.IsEnabledFor(s.module, sink.INFO) }

// IsDebugEnabled reports whether DEBUG is enabled for the module.
func (s *Sink) IsDebugEnabled() bool { return s.levels.IsEnabledFor(s.module, sink.DEBUG) }

// IsTraceEnabled reports whether TRACE is enabled for the module.
func (s *Sink) IsTraceEnabled() bool { return s.levels.IsEnabledFor(s.module, sink.TRACE) }

// Fatal logs at level error with severity=fatal. It does not exit.
func (s *Sink) Fatal(message string, cause error) {
	s.log(sink.FATAL, level.Error(s.logger), message, cause, SeverityKey, "fatal")
}

// Error logs at level error.
func (s *Sink) Error(message string, cause error) {
	s.log(sink.ERROR, level.Error(s.logger), message, cause)
}

// Warn logs at level warn.
func (s *Sink) Warn(message string, cause error) {
	s.log(sink.WARN, level.Warn(s.logger), message, cause)
}

// Info logs at level info.
func (s *Sink) Info(message string, cause error) {
	s.log(sink.INFO, level.Info(s.logger), message, cause)
}

// Debug logs at level debug.
func (s *Sink) Debug(message string, cause error) {
	s.log(sink.DEBUG, level.Debug(s.logger), message, cause)
}

// Trace logs at level debug with severity=trace.
func (s *Sink) Trace(message string, cause error) {
	s.log(sink.TRACE, level.Debug(s.logger), message, cause, SeverityKey, "trace")
}

func (s *Sink) log(lvl sink.Level, logger log.Logger, message string, cause error, kv ...interface{}) {
	if !s.levels.IsEnabledFor(s.module, lvl) {
		return
	}
	keyvals := append([]interface{}{MessageKey, message}, kv...)
	if cause != nil {
		keyvals = append(keyvals, CauseKey, cause)
	}
	// go-kit loggers report write failures, a sink has nowhere to send them
	_ = logger.Log(keyvals...) //nolint
}
