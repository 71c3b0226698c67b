/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package core

// ConfigBackend backend for all config types in the bridge
type ConfigBackend interface {
	Lookup(key string, opts ...LookupOption) (interface{}, bool)
}

// ConfigProvider provides config backend for the bridge
type ConfigProvider func() ([]ConfigBackend, error)

// LookupOpts contains options for looking up key in config backend
type LookupOpts struct {
	UnmarshalType interface{}
}

// LookupOption option to lookup key in config backend
type LookupOption func(opts *LookupOpts)

// WithUnmarshalType lookup option which can be used to unmarshal
// lookup value to provided type
func WithUnmarshalType(unmarshalType interface{}) LookupOption {
	return func(opts *LookupOpts) {
		opts.UnmarshalType = unmarshalType
	}
}
