/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
)

//Sink level names in string
var levelNames = []string{
	"FATAL",
	"ERROR",
	"WARN",
	"INFO",
	"DEBUG",
	"TRACE",
}

//Severity names in string
var severityNames = []string{
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFORMATION",
	"VERBOSE",
	"START",
	"STOP",
	"SUSPEND",
	"RESUME",
	"TRANSFER",
}

// ParseLevel returns the sink level from a string representation.
func ParseLevel(level string) (sink.Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return sink.Level(i), nil
		}
	}
	return sink.ERROR, errors.Errorf("logger: invalid log level [%s]", level)
}

//ParseString returns String repressentation of given sink level
func ParseString(level sink.Level) string {
	if level < sink.FATAL || int(level) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[level]
}

// ParseSeverity returns the severity from a string representation.
func ParseSeverity(severity string) (api.Severity, error) {
	for i, name := range severityNames {
		if strings.EqualFold(name, severity) {
			return api.Severity(i), nil
		}
	}
	return api.ERROR, errors.Errorf("logger: invalid severity [%s]", severity)
}

// SeverityString returns the string representation of the given severity.
func SeverityString(severity api.Severity) string {
	if severity < api.CRITICAL || int(severity) >= len(severityNames) {
		return "UNKNOWN"
	}
	return severityNames[severity]
}
