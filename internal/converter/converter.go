// SPDX-License-Identifier: MPL-2.0

package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// KindUppercase is an upper case letter.
	KindUppercase Kind = "uppercase letter"
	// KindLowercase is a letter that is not upper case.
	KindLowercase Kind = "lowercase letter"
	// KindDigit is a decimal digit or a digit form such as a superscript.
	KindDigit Kind = "digit"
	// KindWhitespace is a space, tab, newline or other white space.
	KindWhitespace Kind = "whitespace character"
	// KindSpecial is anything else: punctuation, symbols, control characters.
	KindSpecial Kind = "special character"

	// DefaultBinaryWidth is the width binary values are zero-padded to in reports.
	DefaultBinaryWidth = 8
)

// ErrInvalidLength is the sentinel error wrapped by InvalidLengthError.
var ErrInvalidLength = errors.New("input must be exactly one character")

type (
	// Kind classifies a character for display.
	Kind string

	// Result holds every representation of a single character.
	// Binary, Hexadecimal and Octal carry no base prefix and no padding.
	Result struct {
		Character   rune
		ASCII       int
		Binary      string
		Hexadecimal string
		Octal       string
	}

	// InvalidLengthError is returned by Convert when the input is not exactly
	// one character long. It wraps ErrInvalidLength for errors.Is().
	InvalidLengthError struct {
		Length int
	}
)

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s (got %d)", ErrInvalidLength, e.Length)
}

// Unwrap returns ErrInvalidLength.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// Convert converts s, which must hold exactly one character.
// Length is counted in runes, so a multi-byte character such as 'é' is accepted.
func Convert(s string) (Result, error) {
	if n := utf8.RuneCountInString(s); n != 1 {
		return Result{}, &InvalidLengthError{Length: n}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return ConvertRune(r), nil
}

// ConvertRune converts a single rune. It never fails.
func ConvertRune(r rune) Result {
	v := int64(r)
	return Result{
		Character:   r,
		ASCII:       int(r),
		Binary:      strconv.FormatInt(v, 2),
		Hexadecimal: strings.ToUpper(strconv.FormatInt(v, 16)),
		Octal:       strconv.FormatInt(v, 8),
	}
}

// Kind returns the classification of the converted character.
func (r Result) Kind() Kind {
	return Classify(r.Character)
}

// PaddedBinary returns the binary value left-padded with zeros to at least
// width digits. Values already wider than width are returned unchanged.
func (r Result) PaddedBinary(width int) string {
	if pad := width - len(r.Binary); pad > 0 {
		return strings.Repeat("0", pad) + r.Binary
	}
	return r.Binary
}

// Classify reports whether r is a letter (and its case), a digit,
// white space, or something else.
func Classify(r rune) Kind {
	switch {
	case unicode.IsLetter(r):
		if unicode.IsUpper(r) {
			return KindUppercase
		}
		return KindLowercase
	case IsDigit(r):
		return KindDigit
	case IsSpace(r):
		return KindWhitespace
	default:
		return KindSpecial
	}
}

// digitForms lists runes outside the decimal digit category that still
// carry a single digit value: superscripts, subscripts, circled and
// parenthesized digits and similar forms.
var digitForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// IsDigit reports whether r is a digit: a decimal digit such as '5', or a
// digit form such as '²' or '①'.
func IsDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitForms, r)
}

// IsSpace reports whether r is white space. In addition to unicode.IsSpace
// it accepts the information separators U+001C through U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// TrimSpace returns s without leading and trailing runes for which IsSpace
// is true.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// String returns the kind as shown to the user.
func (k Kind) String() string { return string(k) }
