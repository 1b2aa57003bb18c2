// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"

	"github.com/biggaero/converter/internal/shell"
	"github.com/biggaero/converter/pkg/types"

	"github.com/spf13/cobra"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <text>...",
		Short: "Convert characters without starting a session",
		Long: `Convert prints the same report the interactive session prints.
Arguments are joined with single spaces; text longer than one character is
converted character by character.`,
		Example: `  converter convert A
  converter convert "a b"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return &ExitError{Code: types.ExitUsage, Err: errors.New("nothing to convert")}
	}

	sh := shell.New(shell.Options{
		In:         strings.NewReader(""),
		Out:        cmd.OutOrStdout(),
		Logger:     logger,
		Format:     formatOptions(),
		Styles:     shellStyles(),
		HideBanner: true,
	})
	sh.Convert(text)
	return nil
}
