// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for converter.
//
// Running converter without a subcommand starts the interactive shell.
// The convert and chart subcommands produce the same reports without a
// session, and config inspects or creates the configuration file.
package cmd
