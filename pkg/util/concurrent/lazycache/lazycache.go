/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lazycache

import (
	"sync"
	"sync/atomic"
)

// EntryInitializer creates a cache value for the given key
type EntryInitializer func(key string) (interface{}, error)

// entry is initialized once by whichever caller reaches it first; concurrent
// callers for the same key wait for that initialization.
type entry struct {
	once  sync.Once
	set   int32
	value interface{}
	err   error
}

func (e *entry) get(initializer func() (interface{}, error)) (interface{}, error) {
	e.once.Do(func() {
		e.value, e.err = initializer()
		atomic.StoreInt32(&e.set, 1)
	})
	return e.value, e.err
}

func (e *entry) isSet() bool {
	return atomic.LoadInt32(&e.set) == 1
}

// Cache implements a lazy initializing cache keyed by name. A cache entry is
// created the first time a value is accessed (via Get) by invoking
// the provided initializer. If the initializer returns an error then the
// entry will not be kept and the next Get tries again.
type Cache struct {
	// name is useful for debugging
	name        string
	m           sync.Map
	initializer EntryInitializer
}

// New creates a new lazy cache with the given name
// (Note that the name is only used for debugging purpose)
func New(name string, initializer EntryInitializer) *Cache {
	return &Cache{
		name:        name,
		initializer: initializer,
	}
}

// Name returns the name of the cache (useful for debugging)
func (c *Cache) Name() string {
	return c.name
}

// Get returns the value for the given key, creating it on first access.
func (c *Cache) Get(key string) (interface{}, error) {
	e, _ := c.m.LoadOrStore(key, &entry{})

	value, err := e.(*entry).get(func() (interface{}, error) {
		return c.initializer(key)
	})
	if err != nil {
		c.m.Delete(key)
	}
	return value, err
}

// Keys returns the keys of all initialized entries.
func (c *Cache) Keys() []string {
	var keys []string
	c.m.Range(func(key interface{}, value interface{}) bool {
		if e := value.(*entry); e.isSet() && e.err == nil {
			keys = append(keys, key.(string))
		}
		return true
	})
	return keys
}
