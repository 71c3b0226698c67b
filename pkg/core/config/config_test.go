/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/core"
)

var configBackend core.ConfigBackend

const (
	configFile = "config_test.yaml"
	configType = "yaml"
)

var (
	configTestFilePath = filepath.Join("testdata", configFile)
	defaultConfigPath  = filepath.Join("testdata", "template")
)

func TestFromRawSuccess(t *testing.T) {
	cBytes := loadConfigBytesFromFile(t, configTestFilePath)

	// test init config from bytes
	_, err := FromRaw(cBytes, configType)()
	if err != nil {
		t.Fatalf("Failed to initialize config from bytes array. Error: %s", err)
	}
}

func TestFromReaderSuccess(t *testing.T) {
	cBytes := loadConfigBytesFromFile(t, configTestFilePath)
	buf := bytes.NewBuffer(cBytes)

	// test init config from bytes
	_, err := FromReader(buf, configType)()
	if err != nil {
		t.Fatalf("Failed to initialize config from reader. Error: %s", err)
	}
}

func TestFromRawEmptyType(t *testing.T) {
	_, err := FromRaw([]byte("logging:\n  level: info\n"), "")()
	assert.Error(t, err)
}

func TestFromRawInvalidContent(t *testing.T) {
	_, err := FromRaw([]byte("logging: [level"), configType)()
	assert.Error(t, err)
}

func loadConfigBytesFromFile(t *testing.T, filePath string) []byte {
	cBytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		t.Fatalf("Failed to read config file. Error: %s", err)
	}
	if len(cBytes) == 0 {
		t.Fatal("Failed to read test config for bytes array testing. Mock bytes array is empty")
	}
	return cBytes
}

func TestFromFileEmptyFilename(t *testing.T) {
	_, err := FromFile("")()
	if err == nil {
		t.Fatal("Expected error when passing empty string to FromFile")
	}
}

func TestInitConfigInvalidLocation(t *testing.T) {
	//...Negative case
	_, err := FromFile("invalid file location")()
	if err == nil {
		t.Fatal("Config file initialization is supposed to fail")
	}
}

func TestFromFileSubstitutesPath(t *testing.T) {
	const envKey = "LOGBRIDGE_TEST_CONFIG"
	os.Setenv(envKey, configFile)
	defer os.Unsetenv(envKey)

	backends, err := FromFile(filepath.Join("testdata", "${"+envKey+"}"))()
	require.NoError(t, err)
	require.Len(t, backends, 1)

	level, ok := backends[0].Lookup("logging.level")
	assert.True(t, ok)
	assert.Equal(t, "info", level)
}

// Test case to create a new viper instance to prevent conflict with existing
// viper instances in applications that use the bridge
func TestMultipleVipers(t *testing.T) {
	first, err := FromRaw([]byte("logging:\n  level: debug\n"), configType)()
	require.NoError(t, err)
	second, err := FromRaw([]byte("logging:\n  level: error\n"), configType)()
	require.NoError(t, err)

	level, _ := first[0].Lookup("logging.level")
	assert.Equal(t, "debug", level)
	level, _ = second[0].Lookup("logging.level")
	assert.Equal(t, "error", level)
}

func TestEnvironmentVariablesDefaultCmdRoot(t *testing.T) {
	testValue, _ := configBackend.Lookup("env.test")
	if testValue != nil {
		t.Fatalf("Expected environment variable value to be empty but got: %s", testValue)
	}

	err := os.Setenv("LOGBRIDGE_ENV_TEST", "123")
	defer os.Unsetenv("LOGBRIDGE_ENV_TEST")

	if err != nil {
		t.Log(err)
	}

	testValue, ok := configBackend.Lookup("env.test")
	if testValue != "123" || !ok {
		t.Fatalf("Expected environment variable value but got: %s", testValue)
	}
}

func TestEnvironmentVariablesSpecificCmdRoot(t *testing.T) {
	err := os.Setenv("TEST_ROOT_ENV_TEST", "456")
	defer os.Unsetenv("TEST_ROOT_ENV_TEST")

	if err != nil {
		t.Log(err)
	}

	configBackend1, err := FromFile(configTestFilePath, WithEnvPrefix("test_root"))()
	require.NoError(t, err)

	if len(configBackend1) == 0 {
		t.Fatal("invalid backend")
	}

	value, ok := configBackend1[0].Lookup("env.test")
	if value != "456" || !ok {
		t.Fatalf("Expected environment variable value but got: %s", value)
	}
}

func TestMain(m *testing.M) {
	setUp()
	r := m.Run()
	teardown()
	os.Exit(r)
}

func setUp() {
	cfgBackend, err := FromFile(configTestFilePath)()
	if err != nil {
		panic(err)
	}
	if len(cfgBackend) != 1 {
		panic("invalid backend found")
	}
	configBackend = cfgBackend[0]
}

func teardown() {
	configBackend = nil
}

func TestNewGoodOpt(t *testing.T) {
	_, err := FromFile(configTestFilePath, goodOpt())()
	if err != nil {
		t.Fatalf("Expected no error from FromFile, but got %s", err)
	}

	cBytes := loadConfigBytesFromFile(t, configTestFilePath)

	_, err = FromReader(bytes.NewBuffer(cBytes), configType, goodOpt())()
	if err != nil {
		t.Fatalf("Unexpected error from FromReader: %s", err)
	}

	_, err = FromRaw(cBytes, configType, goodOpt())()
	if err != nil {
		t.Fatalf("Unexpected error from FromRaw %s", err)
	}
}

func goodOpt() Option {
	return func(opts *options) error {
		return nil
	}
}

func TestNewBadOpt(t *testing.T) {
	_, err := FromFile(configTestFilePath, badOpt())()
	if err == nil {
		t.Fatal("Expected error from FromFile")
	}

	cBytes := loadConfigBytesFromFile(t, configTestFilePath)

	_, err = FromReader(bytes.NewBuffer(cBytes), configType, badOpt())()
	if err == nil {
		t.Fatal("Expected error from FromReader")
	}

	_, err = FromRaw(cBytes, configType, badOpt())()
	if err == nil {
		t.Fatal("Expected error from FromRaw")
	}
}

func badOpt() Option {
	return func(opts *options) error {
		return errors.New("Bad Opt")
	}
}

func TestConfigBackend_Lookup(t *testing.T) {
	checkConfigStringKey(t, "logging.level", "info")
	checkConfigStringKey(t, "logging.backend", "modlog")
	checkConfigMapKey(t, "logging.modules", 2)

	_, ok := configBackend.Lookup("logging.missing")
	assert.False(t, ok)
}

func TestConfigBackend_LookupUnmarshal(t *testing.T) {
	var modules map[string]string
	value, ok := configBackend.Lookup("logging.modules", core.WithUnmarshalType(&modules))
	require.True(t, ok)
	assert.Equal(t, &modules, value)
	assert.Equal(t, "debug", modules["fabsdk/core"])

	var level map[string]int
	_, ok = configBackend.Lookup("logging.level", core.WithUnmarshalType(&level))
	assert.False(t, ok, "unmarshal of a string into a map is supposed to fail")
}

func checkConfigStringKey(t *testing.T, configKey string, expectedValue string) {
	value, ok := configBackend.Lookup(configKey)
	if !ok {
		t.Fatalf("can't lookup key %s in the config", configKey)
	}
	v := value.(string)
	if v != expectedValue {
		t.Fatalf("Expected %s to be '%s' but got '%s'", configKey, expectedValue, v)
	}
}

func checkConfigMapKey(t *testing.T, configKey string, expectedNumItems int) {
	value, ok := configBackend.Lookup(configKey)
	if !ok {
		t.Fatalf("can't lookup key %s in the config", configKey)
	}
	v := value.(map[string]interface{})
	if len(v) != expectedNumItems {
		t.Fatalf("Expected only %d %s but got %d", expectedNumItems, configKey, len(v))
	}
}

func TestDefaultConfigFromRaw(t *testing.T) {
	backends, err := FromRaw([]byte("logging:\n  level: debug\n"), configType, WithTemplatePath(defaultConfigPath))()
	require.NoError(t, err)

	level, _ := backends[0].Lookup("logging.level")
	assert.Equal(t, "debug", level, "raw config is supposed to override the template")

	backend, _ := backends[0].Lookup("logging.backend")
	assert.Equal(t, "logrus", backend, "template value is supposed to be kept")
}

func TestDefaultConfigInvalidPath(t *testing.T) {
	_, err := FromRaw([]byte("logging:\n  level: debug\n"), configType, WithTemplatePath(defaultConfigPath+"/bad"))()
	assert.Error(t, err)
}
