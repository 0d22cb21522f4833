// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for postcode.
//
// This package implements the Cobra command hierarchy: validate, format and
// decompose for postcodes, config for the configuration file, and issue for
// the troubleshooting catalog. Handlers receive an App and write through its
// writers, so tests can run the full command tree against buffers.
package cmd
