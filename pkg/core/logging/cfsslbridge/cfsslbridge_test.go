/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cfsslbridge

import (
	"bytes"
	"fmt"
	"testing"

	clog "github.com/cloudflare/cfssl/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/bridge"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/testdata"
)

type record struct {
	severity api.Severity
	message  string
}

// recordingLogger is an api.Logger with every severity enabled unless listed
type recordingLogger struct {
	disabled map[api.Severity]bool
	records  []record
}

func (l *recordingLogger) IsEnabled(severity api.Severity) (bool, error) {
	return !l.disabled[severity], nil
}

func (l *recordingLogger) Write(severity api.Severity, message string, cause error) error {
	l.records = append(l.records, record{severity, message})
	return nil
}

func TestSyslogWriterMapping(t *testing.T) {
	logger := &recordingLogger{}
	w := New(logger)

	w.Debug("debug")
	w.Info("info")
	w.Warning("warning")
	w.Err("err")
	w.Crit("crit")
	w.Emerg("emerg")

	assert.Equal(t, []record{
		{api.VERBOSE, "debug"},
		{api.INFORMATION, "info"},
		{api.WARNING, "warning"},
		{api.ERROR, "err"},
		{api.CRITICAL, "crit"},
		{api.CRITICAL, "emerg"},
	}, logger.records)
}

func TestSyslogWriterDisabled(t *testing.T) {
	logger := &recordingLogger{disabled: map[api.Severity]bool{api.VERBOSE: true}}
	w := New(logger)

	w.Debug("debug")
	assert.Empty(t, logger.records)
}

type failingFactory struct{}

func (f *failingFactory) Create(name string) (api.Logger, error) {
	return nil, errors.New("no logger")
}

func TestInstallFailure(t *testing.T) {
	_, err := Install(&failingFactory{}, "")
	assert.Error(t, err)
}

func TestInstall(t *testing.T) {
	var buf bytes.Buffer
	resolver := testdata.GetSampleResolver(&buf)

	factory, err := bridge.New(resolver)
	require.NoError(t, err)

	level := clog.Level
	defer func() {
		clog.SetLogger(nil)
		clog.Level = level
	}()

	_, err = Install(factory, "")
	require.NoError(t, err)
	assert.Equal(t, clog.LevelDebug, clog.Level)

	clog.Info("brown fox")
	assert.Contains(t, buf.String(), fmt.Sprintf(" [%s] ", DefaultChannel))
	assert.Contains(t, buf.String(), "CUSTOM LOG OUTPUT INFO")
	assert.Contains(t, buf.String(), "brown fox")
	buf.Reset()

	clog.Critical("lazy dog")
	assert.Contains(t, buf.String(), "CUSTOM LOG OUTPUT FATAL")
	assert.Contains(t, buf.String(), "lazy dog")
	buf.Reset()

	s, err := resolver.GetSink(DefaultChannel)
	require.NoError(t, err)
	s.(*testdata.SampleSink).SetEnabled(sink.TRACE, false)

	clog.Debug("brown fox")
	assert.Empty(t, buf.String(), "disabled channel level is supposed to drop cfssl debug output")
}
