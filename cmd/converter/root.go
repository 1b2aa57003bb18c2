// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/biggaero/converter/internal/config"
	"github.com/biggaero/converter/internal/converter"
	"github.com/biggaero/converter/internal/issue"
	"github.com/biggaero/converter/internal/shell"
	"github.com/biggaero/converter/internal/terminal"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// noBanner skips the banner when the shell starts
	noBanner bool

	// cfg is the effective configuration, defaults until initRootConfig runs.
	cfg = config.DefaultConfig()

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: config.AppName,
		Level:  log.WarnLevel,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "converter",
		Short: "Convert characters to binary, hexadecimal, octal and ASCII",
		Long: TitleStyle.Render("converter") + SubtitleStyle.Render(" - A character/digit converter") + `

Without a subcommand converter starts an interactive session: type a
character (or several) and get its ASCII code, binary, hexadecimal and
octal representations along with its kind.

` + SubtitleStyle.Render("Session commands:") + `
  quit, q, exit    Leave the session
  clear, c, cls    Clear the screen and show the banner
  help, h          Show the banner

` + SubtitleStyle.Render("Examples:") + `
  converter                    Start the interactive session
  converter convert A          Convert a single character
  converter convert hello      Convert each character of a word
  converter chart --from 48 --to 57
  converter config show        Show current configuration`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runShell,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/converter/config.cue)")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, "do not show the banner when the session starts")

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newChartCommand())
	rootCmd.AddCommand(newConfigCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// An interrupt cancels the command context; the session treats that as quit.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads the config file and environment overrides, then
// applies them to logging and styling. A broken config is reported and the
// defaults are used.
func initRootConfig() {
	loaded, err := config.NewProvider().Load(context.Background(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		if verbose {
			renderIssue(os.Stderr, issue.ConfigLoadFailedId)
		}
	} else {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}

	logger.Debug("configuration loaded",
		"color_scheme", cfg.UI.ColorScheme,
		"clear_mode", cfg.UI.ClearMode,
		"binary_width", cfg.Converter.BinaryWidth)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue writes the markdown help for id to w.
func renderIssue(w io.Writer, id issue.Id) {
	rendered, err := issue.Get(id).Render(issueStyle(w))
	if err != nil {
		logger.Debug("failed to render issue", "id", id, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}

// issueStyle picks the glamour style matching the output and color scheme.
func issueStyle(w io.Writer) string {
	if !terminal.IsTerminal(w) {
		return "notty"
	}
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// formatOptions returns the report settings for the effective config.
func formatOptions() converter.FormatOptions {
	return converter.FormatOptions{
		BinaryWidth: cfg.Converter.BinaryWidth,
		Styles:      reportStyles(),
	}
}

// newClearer builds the screen clearer for the configured mode. When the
// clear command is missing the user is told once and ANSI escapes are used.
func newClearer(out io.Writer) terminal.Clearer {
	mode := cfg.UI.ClearMode
	if mode == terminal.ModeCommand && !terminal.CommandAvailable(runtime.GOOS) {
		renderIssue(os.Stderr, issue.ClearCommandNotFoundId)
		logger.Warn("clear command not found, using ANSI escapes")
		mode = terminal.ModeANSI
	}
	return terminal.New(mode, out)
}

func runShell(cmd *cobra.Command, _ []string) error {
	sh := shell.New(shell.Options{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Clearer:    newClearer(cmd.OutOrStdout()),
		Logger:     logger,
		Format:     formatOptions(),
		Styles:     shellStyles(),
		HideBanner: noBanner || !cfg.UI.Banner,
	})

	logger.Debug("starting interactive session")
	return sh.Run(cmd.Context())
}
