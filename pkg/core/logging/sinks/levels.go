/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sinks holds what the third party sink backends share: a module
// level table consulted on every enablement check.
package sinks

import (
	"sync"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metadata"
)

// Levels is a concurrency safe module level table. Module "" holds the
// default level, INFO unless set.
type Levels struct {
	rwmutex      sync.RWMutex
	moduleLevels metadata.ModuleLevels
}

// NewLevels returns a level table with the given default level.
func NewLevels(defaultLevel sink.Level) *Levels {
	l := &Levels{}
	l.moduleLevels.SetLevel("", defaultLevel)
	return l
}

//SetLevel - setting log level for given module
func (l *Levels) SetLevel(module string, level sink.Level) {
	l.rwmutex.Lock()
	defer l.rwmutex.Unlock()
	l.moduleLevels.SetLevel(module, level)
}

//GetLevel - getting log level for given module
func (l *Levels) GetLevel(module string) sink.Level {
	l.rwmutex.RLock()
	defer l.rwmutex.RUnlock()
	return l.moduleLevels.GetLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func (l *Levels) IsEnabledFor(module string, level sink.Level) bool {
	l.rwmutex.RLock()
	defer l.rwmutex.RUnlock()
	return l.moduleLevels.IsEnabledFor(module, level)
}
