/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/securekey/fabric-logbridge/pkg/common/providers/core"
	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/config/lookup"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metadata"
)

// Sink backends selectable through logging.backend
const (
	BackendModlog = "modlog"
	BackendHclog  = "hclog"
	BackendLogrus = "logrus"
	BackendGoKit  = "gokit"
)

// Output formats selectable through logging.format
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	loggingKey           = "logging"
	loggingLevelKey      = "logging.level"
	loggingModulesKey    = "logging.modules"
	loggingCallerInfoKey = "logging.callerInfo"
	loggingBackendKey    = "logging.backend"
	loggingFormatKey     = "logging.format"
	loggingMetricsKey    = "logging.metrics"
)

// LoggingConfig is the logging section of the bridge configuration.
type LoggingConfig struct {
	// Level is the default level for all channels
	Level string `yaml:"level"`
	// Modules overrides Level per channel
	Modules map[string]string `yaml:"modules,omitempty"`
	// CallerInfo toggles caller info in modlog output
	CallerInfo bool `yaml:"callerInfo"`
	// Backend is the sink library channels are resolved against
	Backend string `yaml:"backend"`
	// Format is the output format of the hclog, logrus and gokit backends
	Format string `yaml:"format"`
	// Metrics wraps writes with prometheus counters
	Metrics bool `yaml:"metrics"`
}

// LevelSetter sets the sink level of a module. Module "" is the default
// for modules without their own level.
type LevelSetter interface {
	SetLevel(module string, level sink.Level)
}

// DefaultLoggingConfig returns the configuration used for absent keys.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:      "info",
		CallerInfo: true,
		Backend:    BackendModlog,
		Format:     FormatText,
	}
}

// LoggingConfigFromBackend reads the logging section from the given backends,
// the first backend holding a key wins.
func LoggingConfigFromBackend(backends ...core.ConfigBackend) (*LoggingConfig, error) {
	cfg := DefaultLoggingConfig()
	l := lookup.New(backends...)

	if level := l.GetString(loggingLevelKey); level != "" {
		cfg.Level = level
	}
	if backend := l.GetLowerString(loggingBackendKey); backend != "" {
		cfg.Backend = backend
	}
	if format := l.GetLowerString(loggingFormatKey); format != "" {
		cfg.Format = format
	}
	if _, ok := l.Lookup(loggingCallerInfoKey); ok {
		cfg.CallerInfo = l.GetBool(loggingCallerInfoKey)
	}
	cfg.Metrics = l.GetBool(loggingMetricsKey)

	if err := l.UnmarshalKey(loggingModulesKey, &cfg.Modules, lookup.WithUnmarshalHookFunction(moduleLevelsHook)); err != nil {
		return nil, errors.Wrap(err, "invalid logging.modules")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// moduleLevelsHook decodes the "module=level,module=level" form an
// environment override of logging.modules takes
func moduleLevelsHook(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
	if from != reflect.String || to != reflect.Map {
		return data, nil
	}

	modules := make(map[string]string)
	for _, pair := range strings.Split(data.(string), ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return nil, errors.Errorf("invalid module level [%s], expecting module=level", pair)
		}
		modules[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return modules, nil
}

// LoggingConfigFromProvider loads the provider and reads its logging section.
func LoggingConfigFromProvider(provider core.ConfigProvider) (*LoggingConfig, error) {
	backends, err := provider()
	if err != nil {
		return nil, errors.WithMessage(err, "unable to load config")
	}
	return LoggingConfigFromBackend(backends...)
}

// Marshal returns the configuration as a YAML document with a logging
// section, in the layout FromRaw and FromFile read.
func (c *LoggingConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(map[string]*LoggingConfig{loggingKey: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal logging config")
	}
	return out, nil
}

// Validate checks backend, format and level names.
func (c *LoggingConfig) Validate() error {
	switch c.Backend {
	case BackendModlog, BackendHclog, BackendLogrus, BackendGoKit:
	default:
		return errors.Errorf("unsupported logging backend [%s]", c.Backend)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unsupported logging format [%s]", c.Format)
	}

	if _, err := c.DefaultLevel(); err != nil {
		return err
	}
	for module, level := range c.Modules {
		if _, err := metadata.ParseLevel(level); err != nil {
			return errors.Wrapf(err, "invalid level for module [%s]", module)
		}
	}
	return nil
}

// DefaultLevel returns the parsed default level.
func (c *LoggingConfig) DefaultLevel() (sink.Level, error) {
	level, err := metadata.ParseLevel(c.Level)
	if err != nil {
		return level, errors.Wrap(err, "invalid default level")
	}
	return level, nil
}

// Apply pushes the default and per module levels to levels.
func (c *LoggingConfig) Apply(levels LevelSetter) error {
	level, err := c.DefaultLevel()
	if err != nil {
		return err
	}

	moduleLevels := make(map[string]sink.Level, len(c.Modules))
	for module, name := range c.Modules {
		l, err := metadata.ParseLevel(name)
		if err != nil {
			return errors.Wrapf(err, "invalid level for module [%s]", module)
		}
		moduleLevels[module] = l
	}

	levels.SetLevel("", level)
	for module, l := range moduleLevels {
		levels.SetLevel(module, l)
	}
	return nil
}
