/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logrussink

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/bridge"
)

const moduleName = "module.a"

func newTestResolver() (*Resolver, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	// Fatal must never reach os.Exit
	logger.ExitFunc = func(int) { panic("exit called") }
	return New(logger), hook
}

func TestSinkLevels(t *testing.T) {
	r, _ := newTestResolver()

	s, err := r.GetSink(moduleName)
	require.NoError(t, err)

	assert.True(t, s.IsFatalEnabled())
	assert.True(t, s.IsErrorEnabled())
	assert.True(t, s.IsWarnEnabled())
	assert.True(t, s.IsInfoEnabled())
	assert.False(t, s.IsDebugEnabled())
	assert.False(t, s.IsTraceEnabled())

	r.SetLevel(moduleName, sink.TRACE)
	assert.True(t, s.IsTraceEnabled())

	r.Logger().SetLevel(logrus.WarnLevel)
	assert.False(t, s.IsInfoEnabled(), "logrus level is supposed to be honored too")
	assert.True(t, s.IsWarnEnabled())
}

func TestSinkOutput(t *testing.T) {
	r, hook := newTestResolver()
	r.SetLevel("", sink.TRACE)

	s, err := r.GetSink(moduleName)
	require.NoError(t, err)

	cause := errors.New("lazy dog error")
	s.Fatal("fatal message", cause)
	s.Error("error message", cause)
	s.Warn("warn message", nil)
	s.Info("info message", nil)
	s.Debug("debug message", nil)
	s.Trace("trace message", nil)

	entries := hook.AllEntries()
	require.Len(t, entries, 6)

	expected := []logrus.Level{
		logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel,
		logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel,
	}
	for i, level := range expected {
		assert.Equal(t, level, entries[i].Level)
		assert.Equal(t, moduleName, entries[i].Data[ModuleField])
	}

	assert.Equal(t, "fatal message", entries[0].Message)
	assert.True(t, entries[0].Data[logrus.ErrorKey] == cause, "cause is supposed to be passed unchanged")
	assert.NotContains(t, entries[2].Data, logrus.ErrorKey)
}

func TestSinkOutputFiltered(t *testing.T) {
	r, hook := newTestResolver()

	s, err := r.GetSink(moduleName)
	require.NoError(t, err)

	s.Debug("debug message", nil)
	s.Trace("trace message", nil)
	assert.Empty(t, hook.AllEntries())
}

func TestDefaultLogger(t *testing.T) {
	r := New(nil)
	assert.Equal(t, logrus.TraceLevel, r.Logger().GetLevel())

	s1, err := r.GetSink(moduleName)
	require.NoError(t, err)
	s2, err := r.GetSink(moduleName)
	require.NoError(t, err)
	assert.True(t, s1 == s2)
}

func TestBridge(t *testing.T) {
	r, hook := newTestResolver()

	factory, err := bridge.New(r)
	require.NoError(t, err)

	logger, err := factory.Create(moduleName)
	require.NoError(t, err)

	cause := errors.New("lazy dog error")
	require.NoError(t, logger.Write(api.ERROR, "brown fox", cause))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "brown fox", entry.Message)
	assert.True(t, entry.Data[logrus.ErrorKey] == cause)

	enabled, err := logger.IsEnabled(api.START)
	require.NoError(t, err)
	assert.False(t, enabled)

	r.SetLevel(moduleName, sink.DEBUG)
	enabled, err = logger.IsEnabled(api.START)
	require.NoError(t, err)
	assert.True(t, enabled)
}
