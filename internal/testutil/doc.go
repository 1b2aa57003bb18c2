// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by tests across packages:
// isolating the home and config directories, and capturing output written
// from another goroutine.
package testutil
