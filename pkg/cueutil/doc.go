// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and
// formats CUE errors with field paths, so callers can report
// "config.cue: ui.clear_mode: ..." instead of raw CUE diagnostics.
package cueutil
