/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metadata"
)

const (
	basicLevelOutputWithCallerInfoExpectedRegex = "\\[%s\\] .* UTC - %s.* -> %4.4s brown fox jumps over the lazy dog"
	basicLevelOutputExpectedRegex               = "\\[%s\\] .* UTC -> %4.4s brown fox jumps over the lazy dog"
	causeOutputExpectedRegex                    = "brown fox jumps over the lazy dog: %s"

	// TestMessage is the message emitted by the Verify* helpers
	TestMessage = "brown fox jumps over the lazy dog"
)

type emitFn func(message string, cause error)

//VerifyBasicLogging calls emit and verifies the line it produced. An empty caller
//means that caller info is expected to be hidden.
func VerifyBasicLogging(t *testing.T, level sink.Level, emit emitFn, cause error, buf *bytes.Buffer, moduleName string, caller string) {

	emit(TestMessage, cause)

	var regex string
	levelName := metadata.ParseString(level)
	if caller != "" {
		regex = fmt.Sprintf(basicLevelOutputWithCallerInfoExpectedRegex, regexp.QuoteMeta(moduleName), regexp.QuoteMeta(caller), levelName)
	} else {
		regex = fmt.Sprintf(basicLevelOutputExpectedRegex, regexp.QuoteMeta(moduleName), levelName)
	}
	if cause != nil {
		match, err := regexp.MatchString(fmt.Sprintf(causeOutputExpectedRegex, regexp.QuoteMeta(cause.Error())), buf.String())
		assert.NoError(t, err, "error while matching regex with logoutput wasnt expected")
		assert.True(t, match, "%s logger isn't writing the cause, \n logoutput:%s", levelName, buf.String())
	}

	match, err := regexp.MatchString(regex, buf.String())
	assert.NoError(t, err, "error while matching regex with logoutput wasnt expected")
	assert.True(t, match, "%s logger isn't producing output as expected, \n logoutput:%s\n regex: %s", levelName, buf.String(), regex)

	//Reset output buffer, for next use
	buf.Reset()
}

//VerifyNoLogging calls emit and verifies that nothing was written.
func VerifyNoLogging(t *testing.T, level sink.Level, emit emitFn, buf *bytes.Buffer) {
	emit(TestMessage, nil)
	assert.Empty(t, buf.String(), "%s log isn't supposed to show up", metadata.ParseString(level))
	buf.Reset()
}
