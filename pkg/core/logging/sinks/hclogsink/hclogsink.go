/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hclogsink provides sinks backed by hashicorp go-hclog.
//
// hclog has no FATAL level: FATAL is enabled together with ERROR and is
// emitted at hclog.Error with severity=fatal.
package hclogsink

import (
	"github.com/hashicorp/go-hclog"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/sinks"
	"github.com/securekey/fabric-logbridge/pkg/util/concurrent/lazycache"
)

const (
	causeKey    = "error"
	severityKey = "severity"
)

// Resolver creates one named hclog logger per module.
type Resolver struct {
	*sinks.Levels
	root  hclog.Logger
	cache *lazycache.Cache
}

// New returns a resolver whose module loggers derive from a root logger built
// with opts. Module levels start at INFO; the hclog level defaults to Trace so
// that the module level decides.
func New(opts *hclog.LoggerOptions) *Resolver {
	o := hclog.LoggerOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Level == hclog.NoLevel {
		o.Level = hclog.Trace
	}
	o.IndependentLevels = true

	return NewWithLogger(hclog.New(&o))
}

// NewWithLogger returns a resolver deriving module loggers from root.
func NewWithLogger(root hclog.Logger) *Resolver {
	r := &Resolver{
		Levels: sinks.NewLevels(sink.INFO),
		root:   root,
	}
	r.cache = lazycache.New("hclogsink", func(module string) (interface{}, error) {
		return &Sink{
			logger: r.root.ResetNamed(module),
			module: module,
			levels: r.Levels,
		}, nil
	})
	return r
}

// GetSink returns the sink for the given module, creating it if needed.
func (r *Resolver) GetSink(module string) (sink.Sink, error) {
	return r.Sink(module)
}

// Sink returns the concrete sink for the given module.
func (r *Resolver) Sink(module string) (*Sink, error) {
	s, err := r.cache.Get(module)
	if err != nil {
		return nil, err
	}
	return s.(*Sink), nil
}

// Sink is an hclog backed module sink.
type Sink struct {
	logger hclog.Logger
	module string
	levels *sinks.Levels
}

// Logger returns the underlying hclog logger.
func (s *Sink) Logger() hclog.Logger {
	return s.logger
}

// IsFatalEnabled reports whether FATAL is enabled for the module.
func (s *Sink) IsFatalEnabled() bool {
	return s.enabled(sink.FATAL, s.logger.IsError)
}

// IsErrorEnabled reports whether ERROR is enabled for the module.
func (s *Sink) IsErrorEnabled() bool {
	return s.enabled(sink.ERROR, s.logger.IsError)
}

// IsWarnEnabled reports whether WARN is enabled for the module.
func (s *Sink) IsWarnEnabled() bool {
	return s.enabled(sink.WARN, s.logger.IsWarn)
}

// IsInfoEnabled reports whether INFO is enabled for the module.
func (s *Sink) IsInfoEnabled() bool {
	return s.enabled(sink.INFO, s.logger.IsInfo)
}

// IsDebugEnabled reports whether DEBUG is enabled for the module.
func (s *Sink) IsDebugEnabled() bool {
	return s.enabled(sink.DEBUG, s.logger.IsDebug)
}

// IsTraceEnabled reports whether TRACE is enabled for the module.
func (s *Sink) IsTraceEnabled() bool {
	return s.enabled(sink.TRACE, s.logger.IsTrace)
}

// Fatal logs at hclog.Error with severity=fatal. It does not exit.
func (s *Sink) Fatal(message string, cause error) {
	if s.IsFatalEnabled() {
		s.logger.Error(message, args(cause, severityKey, "fatal")...)
	}
}

// Error logs at hclog.Error.
func (s *Sink) Error(message string, cause error) {
	if s.IsErrorEnabled() {
		s.logger.Error(message, args(cause)...)
	}
}

// Warn logs at hclog.Warn.
func (s *Sink) Warn(message string, cause error) {
	if s.IsWarnEnabled() {
		s.logger.Warn(message, args(cause)...)
	}
}

// Info logs at hclog.Info.
func (s *Sink) Info(message string, cause error) {
	if s.IsInfoEnabled() {
		s.logger.Info(message, args(cause)...)
	}
}

// Debug logs at hclog.Debug.
func (s *Sink) Debug(message string, cause error) {
	if s.IsDebugEnabled() {
		s.logger.Debug(message, args(cause)...)
	}
}

// Trace logs at hclog.Trace.
func (s *Sink) Trace(message string, cause error) {
	if s.IsTraceEnabled() {
		s.logger.Trace(message, args(cause)...)
	}
}

func (s *Sink) enabled(level sink.Level, native func() bool) bool {
	return s.levels.IsEnabledFor(s.module, level) && native()
}

func args(cause error, kv ...interface{}) []interface{} {
	if cause == nil {
		return kv
	}
	return append(kv, causeKey, cause)
}
