/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metadata"
	"github.com/securekey/fabric-logbridge/pkg/util/concurrent/lazycache"
)

// process wide registry - access only via DefaultRegistry()
var defaultRegistryInstance *Registry
var defaultRegistryOnce sync.Once

const (
	logLevelFormatter   = "UTC %s-> %4.4s "
	logPrefixFormatter  = " [%s] "
	callerInfoFormatter = "- %s "
	causeFormatter      = "%s: %s"
)

// DefaultRegistry returns the process wide registry writing to stdout.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistryInstance = NewRegistry(os.Stdout)
	})
	return defaultRegistryInstance
}

// Registry creates module sinks on first request and keeps the per module
// level and caller info settings they consult on every call.
type Registry struct {
	rwmutex      sync.RWMutex
	moduleLevels metadata.ModuleLevels
	callerInfos  metadata.CallerInfo
	output       io.Writer
	sinks        *lazycache.Cache
}

// NewRegistry returns a registry whose sinks write to output (stdout if nil).
func NewRegistry(output io.Writer) *Registry {
	if output == nil {
		output = os.Stdout
	}
	r := &Registry{output: output}
	r.sinks = lazycache.New("modlog", func(module string) (interface{}, error) {
		return r.newLog(module), nil
	})
	return r
}

// GetSink returns the sink for the given module, creating it if needed.
func (r *Registry) GetSink(module string) (sink.Sink, error) {
	return r.Logger(module)
}

// Logger returns the concrete sink for the given module, creating it if needed.
func (r *Registry) Logger(module string) (*Log, error) {
	l, err := r.sinks.Get(module)
	if err != nil {
		return nil, err
	}
	return l.(*Log), nil
}

// Modules returns the names of all modules a sink was created for.
func (r *Registry) Modules() []string {
	return r.sinks.Keys()
}

//SetLevel - setting log level for given module
func (r *Registry) SetLevel(module string, level sink.Level) {
	r.rwmutex.Lock()
	defer r.rwmutex.Unlock()
	r.moduleLevels.SetLevel(module, level)
}

//GetLevel - getting log level for given module
func (r *Registry) GetLevel(module string) sink.Level {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()
	return r.moduleLevels.GetLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func (r *Registry) IsEnabledFor(module string, level sink.Level) bool {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()
	return r.moduleLevels.IsEnabledFor(module, level)
}

//ShowCallerInfo - Show caller info in log lines for given log level
func (r *Registry) ShowCallerInfo(module string, level sink.Level) {
	r.rwmutex.Lock()
	defer r.rwmutex.Unlock()
	r.callerInfos.ShowCallerInfo(module, level)
}

//HideCallerInfo - Do not show caller info in log lines for given log level
func (r *Registry) HideCallerInfo(module string, level sink.Level) {
	r.rwmutex.Lock()
	defer r.rwmutex.Unlock()
	r.callerInfos.HideCallerInfo(module, level)
}

//getLoggerOpts - returns LoggerOpts which can be used for customization
func (r *Registry) getLoggerOpts(module string, level sink.Level) *loggerOpts {
	r.rwmutex.RLock()
	defer r.rwmutex.RUnlock()
	return &loggerOpts{
		levelEnabled:      r.moduleLevels.IsEnabledFor(module, level),
		callerInfoEnabled: r.callerInfos.IsCallerInfoEnabled(module, level),
	}
}

func (r *Registry) newLog(module string) *Log {
	return &Log{
		deflogger: log.New(r.output, fmt.Sprintf(logPrefixFormatter, module), log.Ldate|log.Ltime|log.LUTC),
		module:    module,
		registry:  r,
	}
}

//Log is the module sink of the default logging library
type Log struct {
	deflogger *log.Logger
	module    string
	registry  *Registry
}

//loggerOpts  for all logger customization options
type loggerOpts struct {
	levelEnabled      bool
	callerInfoEnabled bool
}

// Module returns the module this sink logs for.
func (l *Log) Module() string {
	return l.module
}

// IsFatalEnabled reports whether FATAL is enabled for the module.
func (l *Log) IsFatalEnabled() bool {
	return l.registry.IsEnabledFor(l.module, sink.FATAL)
}

// IsErrorEnabled reports whether ERROR is enabled for the module.
func (l *Log) IsErrorEnabled() bool {
	return l.registry.IsEnabledFor(l.module, sink.ERROR)
}

// IsWarnEnabled reports whether WARN is enabled for the module.
func (l *Log) IsWarnEnabled() bool {
	return l.registry.IsEnabledFor(l.module, sink.WARN)
}

// IsInfoEnabled reports whether INFO is enabled for the module.
func (l *Log) IsInfoEnabled() bool {
	return l.registry.IsEnabledFor(l.module, sink.INFO)
}

// IsDebugEnabled reports whether DEBUG is enabled for the module.
func (l *Log) IsDebugEnabled() bool {
	return l.registry.IsEnabledFor(l.module, sink.DEBUG)
}

// IsTraceEnabled reports whether TRACE is enabled for the module.
func (l *Log) IsTraceEnabled() bool {
	return l.registry.IsEnabledFor(l.module, sink.TRACE)
}

// Fatal logs at FATAL level. Unlike log.Fatal it does not exit.
func (l *Log) Fatal(message string, cause error) {
	l.emit(sink.FATAL, message, cause)
}

// Error logs at ERROR level.
func (l *Log) Error(message string, cause error) {
	l.emit(sink.ERROR, message, cause)
}

// Warn logs at WARN level.
func (l *Log) Warn(message string, cause error) {
	l.emit(sink.WARN, message, cause)
}

// Info logs at INFO level.
func (l *Log) Info(message string, cause error) {
	l.emit(sink.INFO, message, cause)
}

// Debug logs at DEBUG level.
func (l *Log) Debug(message string, cause error) {
	l.emit(sink.DEBUG, message, cause)
}

// Trace logs at TRACE level.
func (l *Log) Trace(message string, cause error) {
	l.emit(sink.TRACE, message, cause)
}

//ChangeOutput for changing output destination for the logger.
func (l *Log) ChangeOutput(output io.Writer) {
	l.deflogger.SetOutput(output)
}

func (l *Log) emit(level sink.Level, message string, cause error) {
	opts := l.registry.getLoggerOpts(l.module, level)
	if !opts.levelEnabled {
		return
	}
	l.log(opts, level, message, cause)
}

func (l *Log) log(opts *loggerOpts, level sink.Level, message string, cause error) {
	//Format prefix to show function name and log level and to indicate that timezone used is UTC
	customPrefix := fmt.Sprintf(logLevelFormatter, l.getCallerInfo(opts), metadata.ParseString(level))
	if cause != nil {
		message = fmt.Sprintf(causeFormatter, message, cause)
	}
	err := l.deflogger.Output(3, customPrefix+message)
	if err != nil {
		fmt.Printf("error from deflogger.Output %v\n", err)
	}
}

func (l *Log) getCallerInfo(opts *loggerOpts) string {

	if !opts.callerInfoEnabled {
		return ""
	}

	const MAXCALLERS = 16 // search MAXCALLERS frames for the real caller
	const SKIPCALLERS = 3 // skip SKIPCALLERS frames when determining the real caller
	const NOTFOUND = "n/a"

	fpcs := make([]uintptr, MAXCALLERS)

	n := runtime.Callers(SKIPCALLERS, fpcs)
	if n == 0 {
		return fmt.Sprintf(callerInfoFormatter, NOTFOUND)
	}

	frames := runtime.CallersFrames(fpcs[:n])
	loggerFrameFound := false
	for {
		// the frame returned along with more == false is still valid
		f, more := frames.Next()
		pkgPath, fnName := filepath.Split(f.Function)

		if f.Function == "" {
			fnName = NOTFOUND // not a function or unknown
		}

		if hasLoggerFnPrefix(pkgPath, fnName) {
			loggerFrameFound = true

		} else if loggerFrameFound {
			return fmt.Sprintf(callerInfoFormatter, fnName)
		}

		if !more {
			break
		}
	}

	return fmt.Sprintf(callerInfoFormatter, NOTFOUND)
}

// loggerFnPrefixes lists, per package path, the function name prefixes of
// frames that belong to the logging plumbing rather than to the caller.
var loggerFnPrefixes = map[string][]string{
	"github.com/securekey/fabric-logbridge/pkg/core/logging/": {
		"modlog.(*Log).",
		"bridge.(*Logger).",
		"bridge.WriteToSink",
		"bridge.IsSinkEnabled",
		"metrics.(*WriteMetrics).CountWrites",
		"cfsslbridge.(*SyslogWriter).",
	},
	"github.com/securekey/fabric-logbridge/pkg/common/": {
		"logging.(*Logger).",
	},
	"github.com/securekey/fabric-logbridge/pkg/common/providers/": {
		"sink.Sink.",
	},
	"github.com/cloudflare/cfssl/": {
		"log.",
	},
}

func hasLoggerFnPrefix(pkgPath string, fnName string) bool {
	for _, prefix := range loggerFnPrefixes[pkgPath] {
		if strings.HasPrefix(fnName, prefix) {
			return true
		}
	}
	return false
}
