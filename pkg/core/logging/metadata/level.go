/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import "github.com/securekey/fabric-logbridge/pkg/common/providers/sink"

//ModuleLevels maintains sink levels based on module
type ModuleLevels struct {
	levels map[string]sink.Level
}

// GetLevel returns the log level for the given module.
// The level registered for module "" applies to modules without their own level.
func (l *ModuleLevels) GetLevel(module string) sink.Level {
	level, exists := l.levels[module]
	if !exists {
		level, exists = l.levels[""]
		// no configuration exists, default to info
		if !exists {
			level = sink.INFO
		}
	}
	return level
}

// SetLevel sets the log level for the given module.
func (l *ModuleLevels) SetLevel(module string, level sink.Level) {
	if l.levels == nil {
		l.levels = make(map[string]sink.Level)
	}
	l.levels[module] = level
}

// IsEnabledFor will return true if logging is enabled for the given module.
func (l *ModuleLevels) IsEnabledFor(module string, level sink.Level) bool {
	return level <= l.GetLevel(module)
}
