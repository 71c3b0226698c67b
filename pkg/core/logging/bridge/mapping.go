/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import (
	"github.com/pkg/errors"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
)

// sinkLevels translates host severities into sink levels. Every activity
// severity collapses onto DEBUG.
var sinkLevels = [...]sink.Level{
	api.CRITICAL:    sink.FATAL,
	api.ERROR:       sink.ERROR,
	api.WARNING:     sink.WARN,
	api.INFORMATION: sink.INFO,
	api.VERBOSE:     sink.TRACE,
	api.START:       sink.DEBUG,
	api.STOP:        sink.DEBUG,
	api.SUSPEND:     sink.DEBUG,
	api.RESUME:      sink.DEBUG,
	api.TRANSFER:    sink.DEBUG,
}

var enabledChecks = map[sink.Level]func(sink.Sink) bool{
	sink.FATAL: sink.Sink.IsFatalEnabled,
	sink.ERROR: sink.Sink.IsErrorEnabled,
	sink.WARN:  sink.Sink.IsWarnEnabled,
	sink.INFO:  sink.Sink.IsInfoEnabled,
	sink.DEBUG: sink.Sink.IsDebugEnabled,
	sink.TRACE: sink.Sink.IsTraceEnabled,
}

var emitters = map[sink.Level]func(sink.Sink, string, error){
	sink.FATAL: sink.Sink.Fatal,
	sink.ERROR: sink.Sink.Error,
	sink.WARN:  sink.Sink.Warn,
	sink.INFO:  sink.Sink.Info,
	sink.DEBUG: sink.Sink.Debug,
	sink.TRACE: sink.Sink.Trace,
}

// SinkLevel returns the sink level the given severity is recorded at.
func SinkLevel(severity api.Severity) (sink.Level, error) {
	if severity < 0 || int(severity) >= len(sinkLevels) {
		return 0, errors.Wrapf(ErrSeverityOutOfRange, "unhandled severity [%d]", severity)
	}
	return sinkLevels[severity], nil
}

// IsSinkEnabled is the default enablement check: it reads the sink's own flag
// for the level the severity translates to.
func IsSinkEnabled(s sink.Sink, severity api.Severity) (bool, error) {
	level, err := SinkLevel(severity)
	if err != nil {
		return false, err
	}
	return enabledChecks[level](s), nil
}

// WriteToSink is the default write function: it calls the sink's emit method
// for the level the severity translates to, passing message and cause as is.
func WriteToSink(s sink.Sink, severity api.Severity, message string, cause error) error {
	level, err := SinkLevel(severity)
	if err != nil {
		return err
	}
	emitters[level](s, message, cause)
	return nil
}
