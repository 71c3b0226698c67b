/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging enables setting a custom logger factory.
//
//  Basic Flow:
//  1) Initialize the logger factory (optional, defaults to the modlog registry)
//  2) Create new logger for specific channel
//  3) Trace events
package logging

import (
	"fmt"
	"sync"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/bridge"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metadata"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/modlog"
)

//Logger is a lazily bound channel logger
type Logger struct {
	instance api.Logger // access only via Logger.logger()
	err      error
	channel  string
	once     sync.Once
}

// logger factory singleton - access only via loggerFactory()
var loggerFactoryInstance api.LoggerFactory
var loggerFactoryOnce sync.Once

// levels of the initialized factory, nil unless it owns a level table
var levelsInstance levelController
var levelsMutex sync.RWMutex

// levelController is implemented by factories that own their channel levels
type levelController interface {
	SetLevel(channel string, level sink.Level)
	GetLevel(channel string) sink.Level
}

const (
	//loggerNotInitializedMsg is used when a logger is not initialized before logging
	loggerNotInitializedMsg = "Default logger initialized (please call logging.Initialize if you wish to use a custom logger factory)"
	loggerModule            = "logbridge/common"
)

// NewLogger creates and returns a Logger object based on the channel name.
func NewLogger(channel string) *Logger {
	// note: the underlying logger instance is lazy initialized on first use
	return &Logger{channel: channel}
}

func loggerFactory() api.LoggerFactory {
	loggerFactoryOnce.Do(func() {
		// A custom factory must be initialized prior to the first log output
		// Otherwise the bridge over the default registry is used
		factory, err := bridge.New(modlog.DefaultRegistry())
		if err != nil {
			panic(fmt.Sprintf("default logger factory: %s", err))
		}
		loggerFactoryInstance = factory
		announce(loggerFactoryInstance, loggerNotInitializedMsg)
	})
	return loggerFactoryInstance
}

//Initialize sets new logger factory which takes over logging operations.
//It is required to call this function before making any loggings.
func Initialize(f api.LoggerFactory) {
	loggerFactoryOnce.Do(func() {
		loggerFactoryInstance = f
		if lc, ok := f.(levelController); ok {
			setLevelController(lc)
		}
		announce(loggerFactoryInstance, "Logger factory initialized")
	})
}

// announce must not go through loggerFactory() since it runs while the
// factory singleton is being initialized
func announce(f api.LoggerFactory, message string) {
	logger, err := f.Create(loggerModule)
	if err != nil {
		return
	}
	if enabled, err := logger.IsEnabled(api.VERBOSE); err == nil && enabled {
		_ = logger.Write(api.VERBOSE, message, nil) //nolint
	}
}

func setLevelController(lc levelController) {
	levelsMutex.Lock()
	defer levelsMutex.Unlock()
	levelsInstance = lc
}

// levels returns the level table of the initialized factory if it owns one,
// the default registry otherwise
func levels() levelController {
	levelsMutex.RLock()
	defer levelsMutex.RUnlock()
	if levelsInstance != nil {
		return levelsInstance
	}
	return modlog.DefaultRegistry()
}

//SetLevel - setting log level for given channel
//  Parameters:
//  channel is channel name
//  level is sink level
//
//  Acts on the factory passed to Initialize when it has SetLevel and
//  GetLevel methods, on the default registry otherwise.
func SetLevel(channel string, level sink.Level) {
	levels().SetLevel(channel, level)
}

//GetLevel - getting log level for given channel
//  Parameters:
//  channel is channel name
//
//  Returns:
//  sink level
func GetLevel(channel string) sink.Level {
	return levels().GetLevel(channel)
}

// LogLevel returns the sink level from a string representation.
//  Parameters:
//  level is logging level in string representation
//
//  Returns:
//  sink level
func LogLevel(level string) (sink.Level, error) {
	return metadata.ParseLevel(level)
}

// Channel returns the channel name.
func (l *Logger) Channel() string {
	return l.channel
}

//IsEnabledFor - Check if given severity is enabled for this channel
func (l *Logger) IsEnabledFor(severity api.Severity) bool {
	instance, err := l.logger()
	if err != nil {
		return false
	}
	enabled, err := instance.IsEnabled(severity)
	return err == nil && enabled
}

// TraceEvent writes the event if its severity is enabled for the channel.
// It returns whether the event was written.
func (l *Logger) TraceEvent(severity api.Severity, message string, cause error) (bool, error) {
	instance, err := l.logger()
	if err != nil {
		return false, err
	}
	enabled, err := instance.IsEnabled(severity)
	if err != nil || !enabled {
		return false, err
	}
	if err := instance.Write(severity, message, cause); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Logger) trace(severity api.Severity, message string, cause error) {
	// severities used here are always in range; sink constructor failures
	// are reported once by logger()
	_, _ = l.TraceEvent(severity, message, cause) //nolint
}

func (l *Logger) tracef(severity api.Severity, format string, args ...interface{}) {
	if !l.IsEnabledFor(severity) {
		return
	}
	l.trace(severity, fmt.Sprintf(format, args...), nil)
}

//Critical writes a CRITICAL event
func (l *Logger) Critical(message string, cause error) {
	l.trace(api.CRITICAL, message, cause)
}

//Criticalf writes a formatted CRITICAL event
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.tracef(api.CRITICAL, format, args...)
}

//Error writes an ERROR event
func (l *Logger) Error(message string, cause error) {
	l.trace(api.ERROR, message, cause)
}

//Errorf writes a formatted ERROR event
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.tracef(api.ERROR, format, args...)
}

//Warning writes a WARNING event
func (l *Logger) Warning(message string, cause error) {
	l.trace(api.WARNING, message, cause)
}

//Warningf writes a formatted WARNING event
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.tracef(api.WARNING, format, args...)
}

//Info writes an INFORMATION event
func (l *Logger) Info(message string) {
	l.trace(api.INFORMATION, message, nil)
}

//Infof writes a formatted INFORMATION event
func (l *Logger) Infof(format string, args ...interface{}) {
	l.tracef(api.INFORMATION, format, args...)
}

//Verbose writes a VERBOSE event
func (l *Logger) Verbose(message string) {
	l.trace(api.VERBOSE, message, nil)
}

//Verbosef writes a formatted VERBOSE event
func (l *Logger) Verbosef(format string, args ...interface{}) {
	l.tracef(api.VERBOSE, format, args...)
}

//Start writes a START activity event
func (l *Logger) Start(message string) {
	l.trace(api.START, message, nil)
}

//Stop writes a STOP activity event
func (l *Logger) Stop(message string) {
	l.trace(api.STOP, message, nil)
}

func (l *Logger) logger() (api.Logger, error) {
	l.once.Do(func() {
		l.instance, l.err = loggerFactory().Create(l.channel)
		if l.err != nil {
			fmt.Printf("failed to create logger for channel [%s]: %s\n", l.channel, l.err)
		}
	})
	return l.instance, l.err
}
