// SPDX-License-Identifier: MPL-2.0

// Package converter turns a single character into its ASCII code point and
// the binary, hexadecimal and octal spellings of that value.
//
// Conversion is pure: Convert and ConvertRune build a Result value that the
// caller renders with Format (a single report) or FormatChart (a range of
// code points). Rendering uses lipgloss tables; colors are dropped
// automatically when the output is not a terminal.
package converter
