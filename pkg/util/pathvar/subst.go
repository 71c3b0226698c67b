/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pathvar

import (
	"bytes"
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

// goPath returns the current GOPATH. If the system
// has multiple GOPATHs then the first is used.
func goPath() string {
	gpDefault := build.Default.GOPATH
	gps := filepath.SplitList(gpDefault)

	return gps[0]
}

// Subst replaces instances of '${VARNAME}' (eg ${GOPATH}) with the variable.
// Names other than GOPATH and CONFIG_DIR are resolved from the environment;
// unknown names are left untouched.
func Subst(path string) string {
	const (
		sepPrefix = "${"
		sepSuffix = "}"
	)

	splits := strings.Split(path, sepPrefix)

	var buffer bytes.Buffer

	// first split precedes the first sepPrefix so should always be written
	buffer.WriteString(splits[0]) // nolint: gas

	for _, s := range splits[1:] {
		subst, rest := substVar(s, sepPrefix, sepSuffix)
		buffer.WriteString(subst) // nolint: gas
		buffer.WriteString(rest)  // nolint: gas
	}

	return buffer.String()
}

// substVar replaces the leading variable name in s.
// It returns noMatch and s unchanged when no known variable starts s.
func substVar(s string, noMatch string, sep string) (string, string) {
	endPos := strings.Index(s, sep)
	if endPos == -1 {
		return noMatch, s
	}

	v, ok := lookupVar(s[:endPos])
	if !ok {
		return noMatch, s
	}

	return v, s[endPos+1:]
}

func lookupVar(v string) (string, bool) {
	switch v {
	case "GOPATH":
		return goPath(), true
	case "CONFIG_DIR":
		return configDir(), true
	}
	return os.LookupEnv(v)
}

// configDir is LOGBRIDGE_CONFIG_DIR if set, the working directory otherwise.
func configDir() string {
	if dir, ok := os.LookupEnv("LOGBRIDGE_CONFIG_DIR"); ok {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
