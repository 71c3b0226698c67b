/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logbridge assembles a logger factory from configuration: it builds
// the configured sink backend, applies levels, optionally counts writes and
// routes cfssl output.
//
//  Basic Flow:
//  1) Create a LogBridge from a config provider and options
//  2) Install it as the process logger factory (optional)
//  3) Create channel loggers
package logbridge

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/securekey/fabric-logbridge/pkg/common/logging"
	"github.com/securekey/fabric-logbridge/pkg/common/providers/core"
	"github.com/securekey/fabric-logbridge/pkg/common/providers/sink"
	"github.com/securekey/fabric-logbridge/pkg/core/config"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/bridge"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/cfsslbridge"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/metrics"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/modlog"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/sinks/gokitsink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/sinks/hclogsink"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/sinks/logrussink"
)

const loggerModule = "logbridge"

// levelResolver is what every backend provides: sinks and a level table
type levelResolver interface {
	sink.Resolver
	config.LevelSetter
	GetLevel(module string) sink.Level
}

// LogBridge is a logger factory over the configured sink backend
type LogBridge struct {
	configProvider core.ConfigProvider
	loggingConfig  *config.LoggingConfig
	output         io.Writer
	registerer     prometheus.Registerer
	cfsslChannel   string
	bridgeOpts     []bridge.Option

	resolver levelResolver
	factory  *bridge.Factory
}

// Option configures the LogBridge
type Option func(lb *LogBridge) error

// WithConfig loads the logging section from the given provider
func WithConfig(configProvider core.ConfigProvider) Option {
	return func(lb *LogBridge) error {
		lb.configProvider = configProvider
		return nil
	}
}

// WithLoggingConfig uses an already loaded logging section. It takes
// precedence over WithConfig.
func WithLoggingConfig(cfg *config.LoggingConfig) Option {
	return func(lb *LogBridge) error {
		if cfg == nil {
			return errors.New("logging config is nil")
		}
		lb.loggingConfig = cfg
		return nil
	}
}

// WithOutput redirects the backend output, stdout by default
func WithOutput(output io.Writer) Option {
	return func(lb *LogBridge) error {
		lb.output = output
		return nil
	}
}

// WithRegisterer counts writes on reg, regardless of logging.metrics
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(lb *LogBridge) error {
		lb.registerer = reg
		return nil
	}
}

// WithCfsslChannel routes cfssl log output to the given channel
func WithCfsslChannel(channel string) Option {
	return func(lb *LogBridge) error {
		lb.cfsslChannel = channel
		return nil
	}
}

// WithBridgeOptions passes options to the underlying bridge factory. They
// are applied after the options derived from configuration.
func WithBridgeOptions(opts ...bridge.Option) Option {
	return func(lb *LogBridge) error {
		lb.bridgeOpts = append(lb.bridgeOpts, opts...)
		return nil
	}
}

// New initializes the LogBridge based on the set of options provided.
// Without configuration the modlog backend at INFO is used.
func New(options ...Option) (*LogBridge, error) {
	lb := &LogBridge{}

	for _, option := range options {
		if err := option(lb); err != nil {
			return nil, errors.WithMessage(err, "Error in option passed to New")
		}
	}

	if err := lb.loadConfig(); err != nil {
		return nil, err
	}

	resolver, err := newResolver(lb.loggingConfig, lb.output)
	if err != nil {
		return nil, err
	}
	lb.resolver = resolver

	if err := lb.loggingConfig.Apply(resolver); err != nil {
		return nil, errors.WithMessage(err, "unable to apply logging levels")
	}

	if err := lb.newFactory(); err != nil {
		return nil, err
	}

	if lb.cfsslChannel != "" {
		if _, err := cfsslbridge.Install(lb.factory, lb.cfsslChannel); err != nil {
			return nil, errors.WithMessage(err, "unable to route cfssl logs")
		}
	}

	lb.announce()
	return lb, nil
}

func (lb *LogBridge) loadConfig() error {
	if lb.loggingConfig != nil {
		return lb.loggingConfig.Validate()
	}
	if lb.configProvider == nil {
		lb.loggingConfig = config.DefaultLoggingConfig()
		return nil
	}
	cfg, err := config.LoggingConfigFromProvider(lb.configProvider)
	if err != nil {
		return err
	}
	lb.loggingConfig = cfg
	return nil
}

func (lb *LogBridge) newFactory() error {
	var opts []bridge.Option

	reg := lb.registerer
	if reg == nil && lb.loggingConfig.Metrics {
		reg = prometheus.DefaultRegisterer
	}
	if reg != nil {
		write, err := metrics.CountWrites(bridge.WriteToSink, reg)
		if err != nil {
			return errors.WithMessage(err, "unable to create write metrics")
		}
		opts = append(opts, bridge.WithWriteFunc(write))
	}

	factory, err := bridge.New(lb.resolver, append(opts, lb.bridgeOpts...)...)
	if err != nil {
		return errors.WithMessage(err, "unable to create logger factory")
	}
	lb.factory = factory
	return nil
}

func (lb *LogBridge) announce() {
	logger, err := lb.factory.Create(loggerModule)
	if err != nil {
		return
	}
	if enabled, err := logger.IsEnabled(api.VERBOSE); err == nil && enabled {
		_ = logger.Write(api.VERBOSE, "logger factory created for backend "+lb.loggingConfig.Backend, nil) //nolint
	}
}

func newResolver(cfg *config.LoggingConfig, output io.Writer) (levelResolver, error) {
	if output == nil {
		output = os.Stdout
	}

	switch cfg.Backend {
	case config.BackendModlog:
		return newModlogRegistry(cfg, output), nil
	case config.BackendHclog:
		return hclogsink.New(&hclog.LoggerOptions{
			Output:     output,
			JSONFormat: cfg.Format == config.FormatJSON,
		}), nil
	case config.BackendLogrus:
		return logrussink.New(newLogrusLogger(cfg, output)), nil
	case config.BackendGoKit:
		if cfg.Format == config.FormatJSON {
			return gokitsink.New(gokitsink.NewJSONLogger(output)), nil
		}
		return gokitsink.New(gokitsink.NewLogfmtLogger(output)), nil
	}
	return nil, errors.Errorf("unsupported logging backend [%s]", cfg.Backend)
}

// newModlogRegistry returns a registry of its own, the process wide default
// registry stays with the logging package
func newModlogRegistry(cfg *config.LoggingConfig, output io.Writer) *modlog.Registry {
	registry := modlog.NewRegistry(output)
	if !cfg.CallerInfo {
		for level := sink.FATAL; level <= sink.TRACE; level++ {
			registry.HideCallerInfo("", level)
		}
	}
	return registry
}

func newLogrusLogger(cfg *config.LoggingConfig, output io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	if cfg.Format == config.FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	logger.SetLevel(logrus.TraceLevel)
	return logger
}

// Create returns the logger of the named channel
func (lb *LogBridge) Create(name string) (api.Logger, error) {
	return lb.factory.Create(name)
}

// Factory returns the underlying bridge factory
func (lb *LogBridge) Factory() *bridge.Factory {
	return lb.factory
}

// Resolver returns the sink resolver of the configured backend
func (lb *LogBridge) Resolver() sink.Resolver {
	return lb.resolver
}

// Config returns the logging configuration in use
func (lb *LogBridge) Config() *config.LoggingConfig {
	return lb.loggingConfig
}

// SetLevel sets the sink level of a channel, "" for the default level
func (lb *LogBridge) SetLevel(channel string, level sink.Level) {
	lb.resolver.SetLevel(channel, level)
}

// GetLevel returns the sink level of a channel
func (lb *LogBridge) GetLevel(channel string) sink.Level {
	return lb.resolver.GetLevel(channel)
}

// Install makes the LogBridge the logger factory of the logging package,
// whose SetLevel and GetLevel then act on this LogBridge.
// It has no effect once that package has logged.
func (lb *LogBridge) Install() {
	logging.Initialize(lb)
}
