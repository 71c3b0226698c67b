/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cfsslbridge routes the cloudflare cfssl package logger through a
// host logger.
package cfsslbridge

import (
	clog "github.com/cloudflare/cfssl/log"

	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
)

// DefaultChannel is the channel cfssl output is written to by Install.
const DefaultChannel = "logbridge/cfssl"

// SyslogWriter implements cfssl's SyslogWriter over a host logger
type SyslogWriter struct {
	logger api.Logger
}

// New returns a SyslogWriter writing to logger.
func New(logger api.Logger) *SyslogWriter {
	return &SyslogWriter{logger: logger}
}

// Install creates the channel logger and registers it as the cfssl logger.
// cfssl's own level is lowered to debug so that the channel level decides.
func Install(factory api.LoggerFactory, channel string) (*SyslogWriter, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	logger, err := factory.Create(channel)
	if err != nil {
		return nil, err
	}
	w := New(logger)
	clog.SetLogger(w)
	clog.Level = clog.LevelDebug
	return w, nil
}

// Debug writes a VERBOSE event.
func (w *SyslogWriter) Debug(s string) {
	w.write(api.VERBOSE, s)
}

// Info writes an INFORMATION event.
func (w *SyslogWriter) Info(s string) {
	w.write(api.INFORMATION, s)
}

// Warning writes a WARNING event.
func (w *SyslogWriter) Warning(s string) {
	w.write(api.WARNING, s)
}

// Err writes an ERROR event.
func (w *SyslogWriter) Err(s string) {
	w.write(api.ERROR, s)
}

// Crit writes a CRITICAL event.
func (w *SyslogWriter) Crit(s string) {
	w.write(api.CRITICAL, s)
}

// Emerg writes a CRITICAL event. cfssl exits after calling it for Fatal.
func (w *SyslogWriter) Emerg(s string) {
	w.write(api.CRITICAL, s)
}

// cfssl gives a SyslogWriter no way to report errors
func (w *SyslogWriter) write(severity api.Severity, s string) {
	enabled, err := w.logger.IsEnabled(severity)
	if err != nil || !enabled {
		return
	}
	_ = w.logger.Write(severity, s, nil) //nolint
}
