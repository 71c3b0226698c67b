/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import "github.com/securekey/fabric-logbridge/pkg/common/providers/sink"

type callerInfoKey struct {
	module string
	level  sink.Level
}

//CallerInfo maintains module-level based information to toggle caller info
type CallerInfo struct {
	showcaller map[callerInfoKey]bool
}

//ShowCallerInfo enables caller info for given module and level
func (l *CallerInfo) ShowCallerInfo(module string, level sink.Level) {
	l.set(module, level, true)
}

//HideCallerInfo disables caller info for given module and level
func (l *CallerInfo) HideCallerInfo(module string, level sink.Level) {
	l.set(module, level, false)
}

//IsCallerInfoEnabled returns if callerinfo enabled for given module and level
func (l *CallerInfo) IsCallerInfoEnabled(module string, level sink.Level) bool {
	showcaller, exists := l.showcaller[callerInfoKey{module, level}]
	if !exists {
		//If no callerinfo setting exists, then look for default
		showcaller, exists = l.showcaller[callerInfoKey{"", level}]
		if !exists {
			return true
		}
	}
	return showcaller
}

func (l *CallerInfo) set(module string, level sink.Level, show bool) {
	if l.showcaller == nil {
		l.showcaller = make(map[callerInfoKey]bool)
	}
	l.showcaller[callerInfoKey{module, level}] = show
}
