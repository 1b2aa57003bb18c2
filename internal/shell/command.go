// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"strings"

	"github.com/biggaero/converter/internal/converter"
)

const (
	// CommandEmpty is a blank line.
	CommandEmpty Command = iota
	// CommandQuit ends the session.
	CommandQuit
	// CommandClear clears the screen and reprints the banner.
	CommandClear
	// CommandHelp reprints the banner.
	CommandHelp
	// CommandConvert converts every character of the line.
	CommandConvert
)

// Command is what a line of input asks the shell to do.
type Command int

// keywords maps lower-cased input to shell commands.
var keywords = map[string]Command{
	"quit":  CommandQuit,
	"q":     CommandQuit,
	"exit":  CommandQuit,
	"clear": CommandClear,
	"c":     CommandClear,
	"cls":   CommandClear,
	"help":  CommandHelp,
	"h":     CommandHelp,
}

// ParseCommand classifies a line of input. Keywords match case-insensitively
// after surrounding white space is trimmed; anything else is a conversion.
// Note that single letters such as "q", "c" and "h" are therefore commands,
// not characters to convert.
func ParseCommand(line string) Command {
	trimmed := converter.TrimSpace(line)
	if trimmed == "" {
		return CommandEmpty
	}
	if cmd, ok := keywords[strings.ToLower(trimmed)]; ok {
		return cmd
	}
	return CommandConvert
}

// String returns the command name for logging.
func (c Command) String() string {
	switch c {
	case CommandEmpty:
		return "empty"
	case CommandQuit:
		return "quit"
	case CommandClear:
		return "clear"
	case CommandHelp:
		return "help"
	case CommandConvert:
		return "convert"
	default:
		return "unknown"
	}
}
