/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package api

// Severity defines the importance of a trace event as classified by the host.
type Severity int

// Severities. START through TRANSFER describe activity boundaries rather than
// importance.
const (
	CRITICAL Severity = iota
	ERROR
	WARNING
	INFORMATION
	VERBOSE
	START
	STOP
	SUSPEND
	RESUME
	TRANSFER
)

// Logger is a logging handle bound to one named channel.
type Logger interface {
	// IsEnabled reports whether events of the given severity are currently
	// recorded for this channel.
	IsEnabled(severity Severity) (bool, error)

	// Write records message and the optional cause at the given severity.
	Write(severity Severity, message string, cause error) error
}

// LoggerFactory creates channel loggers.
type LoggerFactory interface {
	Create(name string) (Logger, error)
}
