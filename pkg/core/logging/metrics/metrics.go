/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metrics decorates the bridge write function with prometheus counters.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/bridge"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metadata"
)

// Label names
const (
	SeverityLabel = "severity"
	LevelLabel    = "level"

	unknownLabel = "UNKNOWN"
)

var (
	messagesWritten = prometheus.CounterOpts{
		Namespace: "logbridge",
		Name:      "messages_written_total",
		Help:      "The number of messages handed to a sink, by host severity and sink level.",
	}
	writeFailures = prometheus.CounterOpts{
		Namespace: "logbridge",
		Name:      "write_failures_total",
		Help:      "The number of writes that returned an error, by host severity.",
	}
)

// WriteMetrics contains the counters maintained around bridge writes
type WriteMetrics struct {
	MessagesWritten *prometheus.CounterVec
	WriteFailures   *prometheus.CounterVec
}

// NewWriteMetrics creates the write counters and registers them with reg.
// Counters already registered with reg are reused.
func NewWriteMetrics(reg prometheus.Registerer) (*WriteMetrics, error) {
	written, err := register(reg, prometheus.NewCounterVec(messagesWritten, []string{SeverityLabel, LevelLabel}))
	if err != nil {
		return nil, err
	}
	failed, err := register(reg, prometheus.NewCounterVec(writeFailures, []string{SeverityLabel}))
	if err != nil {
		return nil, err
	}
	return &WriteMetrics{
		MessagesWritten: written,
		WriteFailures:   failed,
	}, nil
}

func register(reg prometheus.Registerer, counter *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, errors.Wrap(err, "failed to register write counter")
	}
	return counter, nil
}

// CountWrites wraps next so that every write is counted. Errors from next are
// returned unchanged.
func (m *WriteMetrics) CountWrites(next bridge.WriteFunc) bridge.WriteFunc {
	return func(s sink.Sink, severity api.Severity, message string, cause error) error {
		err := next(s, severity, message, cause)
		severityName := metadata.SeverityString(severity)
		if err != nil {
			m.WriteFailures.WithLabelValues(severityName).Inc()
			return err
		}
		m.MessagesWritten.WithLabelValues(severityName, levelName(severity)).Inc()
		return nil
	}
}

// CountWrites creates the write counters on reg and wraps next with them.
func CountWrites(next bridge.WriteFunc, reg prometheus.Registerer) (bridge.WriteFunc, error) {
	m, err := NewWriteMetrics(reg)
	if err != nil {
		return nil, err
	}
	return m.CountWrites(next), nil
}

func levelName(severity api.Severity) string {
	level, err := bridge.SinkLevel(severity)
	if err != nil {
		return unknownLabel
	}
	return metadata.ParseString(level)
}
