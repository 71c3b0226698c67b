/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fabriclogbridge lets a host that logs by severity and channel write to an
// independent logging library.
//
// Packages for end developer usage
//
// pkg/logbridge: Assembles a logger factory from configuration. This is the
// usual entry point.
//
// pkg/core/logging/bridge: The logger factory itself. It translates host
// severities to sink levels and delegates enablement checks and writes to a
// sink. Its three strategies (sink constructor, enablement check, write) can
// be replaced independently.
//
// pkg/common/logging: The host facade: channel loggers with Critical, Error,
// Warning, Info, Verbose, Start and Stop.
//
// Sink backends
//
// pkg/core/logging/modlog: module level logger on top of the standard log package (default).
//
// pkg/core/logging/sinks/hclogsink: hashicorp go-hclog.
//
// pkg/core/logging/sinks/logrussink: sirupsen logrus.
//
// pkg/core/logging/sinks/gokitsink: go-kit log.
//
// Basic workflow
//
//      1) Create a logbridge instance from a configuration.
//      2) Install it as the facade's logger factory, or use it directly.
//      3) Create a logger per channel and trace events.
//
package fabriclogbridge
