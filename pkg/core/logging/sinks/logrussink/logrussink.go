/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logrussink provides sinks backed by a shared logrus logger.
// Each module logs through an entry carrying a module field.
package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/sinks"
	"github.com/securekey/fabric-logbridge/pkg/util/concurrent/lazycache"
)

// ModuleField is the entry field holding the module name.
const ModuleField = "module"

var logrusLevels = [...]logrus.Level{
	sink.FATAL: logrus.FatalLevel,
	sink.ERROR: logrus.ErrorLevel,
	sink.WARN:  logrus.WarnLevel,
	sink.INFO:  logrus.InfoLevel,
	sink.DEBUG: logrus.DebugLevel,
	sink.TRACE: logrus.TraceLevel,
}

// Resolver creates one logrus entry per module.
type Resolver struct {
	*sinks.Levels
	logger *logrus.Logger
	cache  *lazycache.Cache
}

// New returns a resolver logging through logger. A nil logger is replaced
// by a new logrus logger at TraceLevel so that module levels decide.
func New(logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.TraceLevel)
	}

	r := &Resolver{
		Levels: sinks.NewLevels(sink.INFO),
		logger: logger,
	}
	r.cache = lazycache.New("logrussink", func(module string) (interface{}, error) {
		return &Sink{
			entry:  r.logger.WithField(ModuleField, module),
			module: module,
			levels: r.Levels,
		}, nil
	})
	return r
}

// Logger returns the shared logrus logger.
func (r *Resolver) Logger() *logrus.Logger {
	return r.logger
}

// GetSink returns the sink for the given module, creating it if needed.
func (r *Resolver) GetSink(module string) (sink.Sink, error) {
	s, err := r.cache.Get(module)
	if err != nil {
		return nil, err
	}
	return s.(*Sink), nil
}

// Sink is a logrus backed module sink.
type Sink struct {
	entry  *logrus.Entry
	module string
	levels *sinks.Levels
}

// IsFatalEnabled reports whether FATAL is enabled for the module.
func (s *Sink) IsFatalEnabled() bool { return s.enabled(sink.FATAL) }

// IsErrorEnabled reports whether ERROR is enabled for the module.
func (s *Sink) IsErrorEnabled() bool { return s.enabled(sink.ERROR) }

// IsWarnEnabled reports whether WARN is enabled for the module.
func (s *Sink) IsWarnEnabled() bool { return s.enabled(sink.WARN) }

// IsInfoEnabled reports whether INFO is enabled for the module.
func (s *Sink) IsInfoEnabled() bool { return s.enabled(sink.INFO) }

// IsDebugEnabled reports whether DEBUG is enabled for the module.
func (s *Sink) IsDebugEnabled() bool { return s.enabled(sink.DEBUG) }

// IsTraceEnabled reports whether TRACE is enabled for the module.
func (s *Sink) IsTraceEnabled() bool { return s.enabled(sink.TRACE) }

// Fatal logs at logrus.FatalLevel. Unlike logrus Fatal it does not exit.
func (s *Sink) Fatal(message string, cause error) { s.log(sink.FATAL, message, cause) }

// Error logs at logrus.ErrorLevel.
func (s *Sink) Error(message string, cause error) { s.log(sink.ERROR, message, cause) }

// Warn logs at logrus.WarnLevel.
func (s *Sink) Warn(message string, cause error) { s.log(sink.WARN, message, cause) }

// Info logs at logrus.InfoLevel.
func (s *Sink) Info(message string, cause error) { s.log(sink.INFO, message, cause) }

// Debug logs at logrus.DebugLevel.
func (s *Sink) Debug(message string, cause error) { s.log(sink.DEBUG, message, cause) }

// Trace logs at logrus.TraceLevel.
func (s *Sink) Trace(message string, cause error) { s.log(sink.TRACE, message, cause) }

func (s *Sink) enabled(level sink.Level) bool {
	return s.levels.IsEnabledFor(s.module, level) && s.entry.Logger.IsLevelEnabled(logrusLevels[level])
}

// log goes through Entry.Log which, unlike Entry.Fatal, never exits.
func (s *Sink) log(level sink.Level, message string, cause error) {
	if !s.enabled(level) {
		return
	}
	entry := s.entry
	if cause != nil {
		entry = entry.WithError(cause)
	}
	entry.Log(logrusLevels[level], message)
}
