/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lazycache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCache_Get() {
	cache := New("Example_Cache", func(key string) (interface{}, error) {
		return fmt.Sprintf("Value_for_key_%s", key), nil
	})

	value, err := cache.Get("Key1")
	if err != nil {
		fmt.Printf("failed to get value: %s\n", err)
		return
	}
	fmt.Println(value)
	// Output: Value_for_key_Key1
}

func TestGet(t *testing.T) {
	var numTimesInitialized int32
	expectedTimesInitialized := 2

	cache := New("Example_Cache", func(key string) (interface{}, error) {
		if key == "error" {
			return nil, fmt.Errorf("some error")
		}
		atomic.AddInt32(&numTimesInitialized, 1)
		return fmt.Sprintf("Value_for_key_%s", key), nil
	})

	concurrency := 100
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()

			value, err := cache.Get("Key1")
			assert.NoError(t, err)
			assert.Equal(t, "Value_for_key_Key1", value)

			value, err = cache.Get("Key2")
			assert.NoError(t, err)
			assert.Equal(t, "Value_for_key_Key2", value)

			_, err = cache.Get("error")
			assert.Error(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(expectedTimesInitialized), atomic.LoadInt32(&numTimesInitialized))
	assert.ElementsMatch(t, []string{"Key1", "Key2"}, cache.Keys())
}

func TestGetRetriesAfterError(t *testing.T) {
	fail := true
	cache := New("Retry_Cache", func(key string) (interface{}, error) {
		if fail {
			return nil, fmt.Errorf("some error")
		}
		return key, nil
	})

	_, err := cache.Get("Key1")
	require.Error(t, err)

	fail = false
	value, err := cache.Get("Key1")
	require.NoError(t, err)
	assert.Equal(t, "Key1", value)
}

func TestSameValuePerKey(t *testing.T) {
	cache := New("Example_Cache", func(key string) (interface{}, error) {
		return &struct{ key string }{key: key}, nil
	})
	assert.Equal(t, "Example_Cache", cache.Name())

	value, err := cache.Get("Key1")
	require.NoError(t, err)

	again, err := cache.Get("Key1")
	require.NoError(t, err)
	assert.True(t, value == again, "expecting the same value for the same key")

	other, err := cache.Get("Key2")
	require.NoError(t, err)
	assert.False(t, value == other)
}
