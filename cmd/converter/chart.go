// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/biggaero/converter/internal/converter"
	"github.com/biggaero/converter/internal/issue"
	"github.com/biggaero/converter/pkg/types"

	"github.com/spf13/cobra"
)

const (
	// defaultChartFrom and defaultChartTo span the printable ASCII range.
	defaultChartFrom = 32
	defaultChartTo   = 126
)

// errInvalidChartRange is wrapped by the ExitError returned for a bad range.
var errInvalidChartRange = errors.New("invalid chart range")

func newChartCommand() *cobra.Command {
	var from, to int

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Print a table of code points and their representations",
		Long: `Chart prints one row per code point with its character, decimal,
hexadecimal, octal and padded binary values. The default range covers the
printable ASCII characters.`,
		Example: `  converter chart
  converter chart --from 48 --to 57`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateChartRange(from, to); err != nil {
				renderIssue(cmd.ErrOrStderr(), issue.InvalidChartRangeId)
				return &ExitError{Code: types.ExitUsage, Err: err}
			}

			opts := formatOptions()
			rows := converter.Chart(rune(from), rune(to))
			logger.Debug("rendering chart", "from", from, "to", to, "rows", len(rows))
			fmt.Fprintln(cmd.OutOrStdout(), converter.FormatChart(rows, opts))
			return nil
		},
	}

	chartCmd.Flags().IntVar(&from, "from", defaultChartFrom, "first code point")
	chartCmd.Flags().IntVar(&to, "to", defaultChartTo, "last code point")

	return chartCmd
}

// validateChartRange checks that from..to is a non-empty range of code points.
func validateChartRange(from, to int) error {
	switch {
	case from < 0 || to < 0:
		return fmt.Errorf("%w: code points must not be negative", errInvalidChartRange)
	case from > unicode.MaxRune || to > unicode.MaxRune:
		return fmt.Errorf("%w: code points must not exceed %d", errInvalidChartRange, unicode.MaxRune)
	case from > to:
		return fmt.Errorf("%w: --from %d is greater than --to %d", errInvalidChartRange, from, to)
	}
	return nil
}

