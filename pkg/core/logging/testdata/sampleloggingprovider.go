/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testdata

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
)

var logPrefixFormatter = " [%s] "

// SampleOutputFormatter is the format of every line written by a SampleSink:
// the level name, the message and the cause.
const SampleOutputFormatter = "CUSTOM LOG OUTPUT %s %s %v"

//GetSampleResolver returns a resolver of sample sinks writing to output
func GetSampleResolver(output *bytes.Buffer) *SampleResolver {
	return &SampleResolver{buf: output, sinks: make(map[string]*SampleSink)}
}

/*
	Sample sink resolver
*/
type SampleResolver struct {
	mutex sync.Mutex
	buf   *bytes.Buffer
	sinks map[string]*SampleSink
}

//GetSink returns the sample sink for the module, all levels enabled
func (p *SampleResolver) GetSink(module string) (sink.Sink, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	s, ok := p.sinks[module]
	if !ok {
		s = &SampleSink{
			customLogger: log.New(p.buf, fmt.Sprintf(logPrefixFormatter, module), log.Ldate|log.Ltime|log.LUTC),
			module:       module,
			enabled:      map[sink.Level]bool{},
		}
		p.sinks[module] = s
	}
	return s, nil
}

//SampleSink writes every event it receives, regardless of its flags
type SampleSink struct {
	mutex        sync.RWMutex
	customLogger *log.Logger
	module       string
	enabled      map[sink.Level]bool
}

//SetEnabled toggles the flag reported for level
func (l *SampleSink) SetEnabled(level sink.Level, enabled bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.enabled[level] = enabled
}

func (l *SampleSink) isEnabled(level sink.Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	enabled, ok := l.enabled[level]
	return !ok || enabled
}

//IsFatalEnabled sample flag
func (l *SampleSink) IsFatalEnabled() bool { return l.isEnabled(sink.FATAL) }

//IsErrorEnabled sample flag
func (l *SampleSink) IsErrorEnabled() bool { return l.isEnabled(sink.ERROR) }

//IsWarnEnabled sample flag
func (l *SampleSink) IsWarnEnabled() bool { return l.isEnabled(sink.WARN) }

//IsInfoEnabled sample flag
func (l *SampleSink) IsInfoEnabled() bool { return l.isEnabled(sink.INFO) }

//IsDebugEnabled sample flag
func (l *SampleSink) IsDebugEnabled() bool { return l.isEnabled(sink.DEBUG) }

//IsTraceEnabled sample flag
func (l *SampleSink) IsTraceEnabled() bool { return l.isEnabled(sink.TRACE) }

//Fatal logging
func (l *SampleSink) Fatal(message string, cause error) { l.print("FATAL", message, cause) }

//Error logging
func (l *SampleSink) Error(message string, cause error) { l.print("ERROR", message, cause) }

//Warn logging
func (l *SampleSink) Warn(message string, cause error) { l.print("WARN", message, cause) }

//Info logging
func (l *SampleSink) Info(message string, cause error) { l.print("INFO", message, cause) }

//Debug logging
func (l *SampleSink) Debug(message string, cause error) { l.print("DEBUG", message, cause) }

//Trace logging
func (l *SampleSink) Trace(message string, cause error) { l.print("TRACE", message, cause) }

func (l *SampleSink) print(level, message string, cause error) {
	l.customLogger.Printf(SampleOutputFormatter, level, message, cause)
}
