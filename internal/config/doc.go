// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/converter/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/converter/config.cue on macOS,
// %APPDATA%\converter\config.cue on Windows), falling back to ./config.cue. Every key can
// be overridden through CONVERTER_-prefixed environment variables
// (CONVERTER_UI_CLEAR_MODE=none). Files are validated against an embedded CUE schema.
package config
