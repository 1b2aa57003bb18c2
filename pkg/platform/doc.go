// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems the converter treats
// differently, so runtime.GOOS comparisons do not scatter string literals.
package platform
