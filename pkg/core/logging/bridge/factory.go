/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bridge implements the host logger factory on top of a sink library.
//
//  Basic Flow:
//  1) Create a factory over a sink resolver, optionally replacing strategies
//  2) Create a logger for a named channel
//  3) Check IsEnabled and Write events; severities are translated to sink levels
package bridge

import (
	"github.com/pkg/errors"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
)

// SinkConstructor returns the sink for a channel name.
type SinkConstructor func(name string) (sink.Sink, error)

// EnabledFunc reports whether a severity is enabled on a sink.
type EnabledFunc func(s sink.Sink, severity api.Severity) (bool, error)

// WriteFunc records an event on a sink.
type WriteFunc func(s sink.Sink, severity api.Severity, message string, cause error) error

type options struct {
	newSink   SinkConstructor
	isEnabled EnabledFunc
	write     WriteFunc
}

// Option configures the factory.
type Option func(opts *options) error

// WithSinkConstructor replaces the resolver lookup used to obtain channel sinks.
func WithSinkConstructor(newSink SinkConstructor) Option {
	return func(opts *options) error {
		opts.newSink = newSink
		return nil
	}
}

// WithEnabledFunc replaces the default enablement check.
func WithEnabledFunc(isEnabled EnabledFunc) Option {
	return func(opts *options) error {
		opts.isEnabled = isEnabled
		return nil
	}
}

// WithWriteFunc replaces the default write function.
func WithWriteFunc(write WriteFunc) Option {
	return func(opts *options) error {
		opts.write = write
		return nil
	}
}

// Factory creates channel loggers backed by sinks.
type Factory struct {
	newSink   SinkConstructor
	isEnabled EnabledFunc
	write     WriteFunc
}

// New returns a factory that obtains sinks from resolver, checks enablement
// with IsSinkEnabled and writes with WriteToSink unless options replace them.
// resolver may be nil when WithSinkConstructor is given.
func New(resolver sink.Resolver, opts ...Option) (*Factory, error) {
	o := options{
		isEnabled: IsSinkEnabled,
		write:     WriteToSink,
	}
	if resolver != nil {
		o.newSink = resolver.GetSink
	}

	for _, option := range opts {
		err := option(&o)
		if err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create logger factory")
		}
	}

	if o.newSink == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "sink constructor is required")
	}
	if o.isEnabled == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "enabled func is required")
	}
	if o.write == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "write func is required")
	}

	return &Factory{
		newSink:   o.newSink,
		isEnabled: o.isEnabled,
		write:     o.write,
	}, nil
}

// Create returns a logger for the named channel. Errors from the sink
// constructor are returned unchanged.
func (f *Factory) Create(name string) (api.Logger, error) {
	s, err := f.newSink(name)
	if err != nil {
		return nil, err
	}
	return &Logger{
		name:      name,
		sink:      s,
		isEnabled: f.isEnabled,
		write:     f.write,
	}, nil
}

// Logger is the channel logger returned by Factory.Create.
type Logger struct {
	name      string
	sink      sink.Sink
	isEnabled EnabledFunc
	write     WriteFunc
}

// Name returns the channel name.
func (l *Logger) Name() string {
	return l.name
}

// Sink returns the sink events are forwarded to.
func (l *Logger) Sink() sink.Sink {
	return l.sink
}

// IsEnabled is evaluated against the sink on every call.
func (l *Logger) IsEnabled(severity api.Severity) (bool, error) {
	return l.isEnabled(l.sink, severity)
}

// Write forwards the event to the sink.
func (l *Logger) Write(severity api.Severity, message string, cause error) error {
	return l.write(l.sink, severity, message, cause)
}
