// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/biggaero/converter/pkg/platform"
)

func TestNew_SelectsClearer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeANSI, "*terminal.ansiClearer"},
		{ModeCommand, "*terminal.commandClearer"},
		{ModeNone, "terminal.noopClearer"},
		// A bytes.Buffer is never a terminal.
		{ModeAuto, "terminal.noopClearer"},
		{"", "terminal.noopClearer"},
	}

	for _, tt := range tests {
		got := typeName(New(tt.mode, &buf))
		if got != tt.want {
			t.Errorf("New(%q) = %s, want %s", tt.mode, got, tt.want)
		}
	}
}

func TestANSIClearer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(ModeANSI, &buf).Clear(context.Background()); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if buf.String() != "\x1b[H\x1b[2J" {
		t.Errorf("unexpected clear sequence %q", buf.String())
	}
}

func TestNoopClearer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(ModeNone, &buf).Clear(context.Background()); err != nil {
		t.Fatalf("Clear() returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestClearCommand(t *testing.T) {
	t.Parallel()

	name, args := clearCommand(platform.Windows)
	if name != "cmd" || len(args) != 2 || args[1] != "cls" {
		t.Errorf("windows: got %s %v", name, args)
	}

	name, args = clearCommand(platform.Linux)
	if name != "clear" || len(args) != 0 {
		t.Errorf("linux: got %s %v", name, args)
	}
}

func TestMode_Validate(t *testing.T) {
	t.Parallel()

	for _, m := range []Mode{"", ModeAuto, ModeANSI, ModeCommand, ModeNone} {
		if err := m.Validate(); err != nil {
			t.Errorf("Mode(%q).Validate() = %v, want nil", m, err)
		}
	}

	err := Mode("tput").Validate()
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	var modeErr *InvalidModeError
	if !errors.As(err, &modeErr) || modeErr.Value != "tput" {
		t.Errorf("expected InvalidModeError for tput, got %v", err)
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()

	if IsTerminal(&bytes.Buffer{}) {
		t.Error("bytes.Buffer must not be reported as a terminal")
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *ansiClearer:
		return "*terminal.ansiClearer"
	case *commandClearer:
		return "*terminal.commandClearer"
	case noopClearer:
		return "terminal.noopClearer"
	default:
		return "unknown"
	}
}

func TestCommandAvailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if CommandAvailable(platform.Linux) {
		t.Error("clear should not be found on an empty PATH")
	}
}
