/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sink defines the contract of the logging library that the bridge
// forwards into. A Sink is a named logger owned by that library.
package sink

// Level is the sink library's own level taxonomy, ordered from the most
// to the least severe.
type Level int

// Sink levels.
const (
	FATAL Level = iota
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

// Sink is a named logger that records events. Each level has its own
// enablement flag and its own emit method; emit methods accept a message
// and an optional cause.
//
// Fatal only records the event at FATAL level, it never terminates the process.
type Sink interface {
	IsFatalEnabled() bool
	IsErrorEnabled() bool
	IsWarnEnabled() bool
	IsInfoEnabled() bool
	IsDebugEnabled() bool
	IsTraceEnabled() bool

	Fatal(message string, cause error)
	Error(message string, cause error)
	Warn(message string, cause error)
	Info(message string, cause error)
	Debug(message string, cause error)
	Trace(message string, cause error)
}

//go:generate mockgen -destination ../../../core/logging/mocks/mocksink.gen.go -package mocks github.com/securekey/fabric-logbridge/pkg/common/providers/sink Sink

// Resolver looks up, or creates on first use, the sink registered under name.
type Resolver interface {
	GetSink(name string) (Sink, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (Sink, error)

// GetSink calls f(name).
func (f ResolverFunc) GetSink(name string) (Sink, error) {
	return f(name)
}
