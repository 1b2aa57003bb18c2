// SPDX-License-Identifier: MPL-2.0

// Package terminal abstracts the terminal operations the interactive shell
// needs and that differ across platforms, such as clearing the screen.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/biggaero/converter/pkg/platform"

	"golang.org/x/term"
)

const (
	// ModeAuto writes ANSI escapes when the output is a terminal and does nothing otherwise.
	ModeAuto Mode = "auto"
	// ModeANSI always writes the ANSI clear-screen sequence.
	ModeANSI Mode = "ansi"
	// ModeCommand runs the platform clear command (clear, or cls on Windows).
	ModeCommand Mode = "command"
	// ModeNone never clears.
	ModeNone Mode = "none"

	// ansiClear moves the cursor home and erases the whole display.
	ansiClear = "\x1b[H\x1b[2J"
)

// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
var ErrInvalidMode = errors.New("invalid clear mode")

type (
	// Mode selects how the screen is cleared.
	Mode string

	// InvalidModeError is returned when a Mode value is not recognized.
	// It wraps ErrInvalidMode for errors.Is() compatibility.
	InvalidModeError struct {
		Value Mode
	}

	// Clearer clears the display.
	Clearer interface {
		Clear(ctx context.Context) error
	}

	ansiClearer struct {
		out io.Writer
	}

	commandClearer struct {
		out  io.Writer
		goos string
	}

	noopClearer struct{}
)

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid clear mode %q (valid: auto, ansi, command, none)", e.Value)
}

// Unwrap returns ErrInvalidMode.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// Validate returns an error if the Mode is not one of the known modes.
// The zero value is treated as ModeAuto and is valid.
func (m Mode) Validate() error {
	switch m {
	case "", ModeAuto, ModeANSI, ModeCommand, ModeNone:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}

// New returns the Clearer for mode writing to out.
// Unknown modes fall back to ModeAuto; call Validate first to reject them.
func New(mode Mode, out io.Writer) Clearer {
	switch mode {
	case ModeANSI:
		return &ansiClearer{out: out}
	case ModeCommand:
		return &commandClearer{out: out, goos: runtime.GOOS}
	case ModeNone:
		return noopClearer{}
	default:
		if IsTerminal(out) {
			return &ansiClearer{out: out}
		}
		return noopClearer{}
	}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *ansiClearer) Clear(context.Context) error {
	if _, err := io.WriteString(c.out, ansiClear); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}
	return nil
}

func (c *commandClearer) Clear(ctx context.Context) error {
	name, args := clearCommand(c.goos)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = c.out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

func (noopClearer) Clear(context.Context) error { return nil }

// clearCommand returns the executable and arguments that clear the screen on goos.
func clearCommand(goos string) (string, []string) {
	if goos == platform.Windows {
		return "cmd", []string{"/c", "cls"}
	}
	return "clear", nil
}

// CommandAvailable reports whether the clear command for goos is on PATH.
func CommandAvailable(goos string) bool {
	name, _ := clearCommand(goos)
	_, err := exec.LookPath(name)
	return err == nil
}
