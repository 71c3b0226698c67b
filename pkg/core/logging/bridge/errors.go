/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is the cause of errors returned by New when a
	// required strategy is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSeverityOutOfRange is the cause of errors returned when a severity
	// outside of the host taxonomy reaches the translation.
	ErrSeverityOutOfRange = errors.New("severity out of range")
)
