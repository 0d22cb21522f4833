// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/postcode/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/postcode/config.cue on macOS, %APPDATA%\postcode\config.cue
// on Windows), falling back to ./config.cue. POSTCODE_* environment variables override
// file values, for example POSTCODE_OUTPUT_FORMAT=json or POSTCODE_UI_VERBOSE=true.
//
// Files are validated against an embedded CUE schema (config_schema.cue) before they are
// merged, so typos and out-of-range values are reported with their path.
package config
