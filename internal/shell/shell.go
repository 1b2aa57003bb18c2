// SPDX-License-Identifier: MPL-2.0

// Package shell implements the interactive read-convert-print loop.
//
// The loop reads one line at a time, dispatches keywords (quit, clear, help)
// and converts everything else character by character. An interrupt
// (context cancellation) or end of input ends the session the same way quit
// does. Failures inside a single iteration, including panics, are reported
// and the loop carries on.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biggaero/converter/internal/converter"
	"github.com/biggaero/converter/internal/terminal"

	"github.com/charmbracelet/log"
)

const (
	// Prompt is printed before each line is read.
	Prompt = "Enter a character/digit (or command): "
	// DefaultMaxLineLength is the longest input line, in bytes, that is converted.
	DefaultMaxLineLength = 1 << 20

	emptyInputMsg = "Please enter a character, digit, or command."
	farewellMsg   = "Thank you for using Character/Digit Converter!"
	invalidMsg    = "Error: Unable to process input."
)

// ErrLineTooLong is the sentinel error wrapped by LineTooLongError.
var ErrLineTooLong = errors.New("input line too long")

type (
	// LineTooLongError reports an input line longer than the configured
	// maximum. The line is skipped and reading resumes with the next one.
	LineTooLongError struct {
		Limit int
	}

	// Options configures a Shell. In and Out are required; everything else
	// has a usable default.
	Options struct {
		In  io.Reader
		Out io.Writer
		// Clearer clears the screen on startup and on the clear command.
		// Defaults to terminal.New(terminal.ModeAuto, Out).
		Clearer terminal.Clearer
		// Logger receives diagnostics. Defaults to a logger that discards output.
		Logger *log.Logger
		// Format controls how conversion reports are rendered.
		Format converter.FormatOptions
		// Styles colors banner and status messages.
		Styles Styles
		// HideBanner skips the banner at startup. clear and help still print it.
		HideBanner bool
		// MaxLineLength bounds the bytes of one input line. Defaults to
		// DefaultMaxLineLength.
		MaxLineLength int
	}

	// Shell is an interactive conversion session.
	Shell struct {
		in         io.Reader
		out        io.Writer
		clearer    terminal.Clearer
		logger     *log.Logger
		format     converter.FormatOptions
		styles     Styles
		hideBanner bool
		maxLine    int
	}

	// inputLine is one line of input, or the reason it could not be read.
	inputLine struct {
		text string
		err  error
	}
)

// New creates a Shell from opts.
func New(opts Options) *Shell {
	s := &Shell{
		in:         opts.In,
		out:        opts.Out,
		clearer:    opts.Clearer,
		logger:     opts.Logger,
		format:     opts.Format,
		styles:     opts.Styles,
		hideBanner: opts.HideBanner,
		maxLine:    opts.MaxLineLength,
	}
	if s.clearer == nil {
		s.clearer = terminal.New(terminal.ModeAuto, s.out)
	}
	if s.maxLine <= 0 {
		s.maxLine = DefaultMaxLineLength
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Run clears the screen, prints the banner and processes input until the
// user quits, input ends, or ctx is cancelled. All three end the session
// normally and Run returns nil; iteration failures never end the session.
func (s *Shell) Run(ctx context.Context) error {
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines := readLines(readCtx, s.in, s.maxLine, s.logger)

	if !s.hideBanner {
		if err := s.clearer.Clear(ctx); err != nil {
			s.logger.Debug("initial clear failed", "err", err)
		}
		s.print(Banner(s.styles) + "\n")
	}

	for {
		s.print(Prompt)

		var line string
		select {
		case <-ctx.Done():
			s.logger.Debug("session interrupted", "cause", context.Cause(ctx))
			s.farewell()
			return nil
		case in, ok := <-lines:
			if !ok {
				s.logger.Debug("end of input")
				s.farewell()
				return nil
			}
			if in.err != nil {
				s.fail("", in.err)
				continue
			}
			line = in.text
		}

		quit, err := s.Eval(ctx, line)
		if err != nil {
			s.fail(line, err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// Eval processes one line of input and reports whether the session should end.
// A panic raised while handling the line is recovered and returned as an error.
func (s *Shell) Eval(ctx context.Context, line string) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			quit = false
			err = fmt.Errorf("%v", r)
		}
	}()

	input := converter.TrimSpace(line)
	cmd := ParseCommand(input)
	s.logger.Debug("dispatch", "command", cmd, "input", input)

	switch cmd {
	case CommandEmpty:
		s.print(emptyInputMsg + "\n\n")
	case CommandQuit:
		s.farewell()
		return true, nil
	case CommandClear:
		if err := s.clearer.Clear(ctx); err != nil {
			return false, err
		}
		s.print(Banner(s.styles) + "\n")
	case CommandHelp:
		s.print(Banner(s.styles) + "\n")
	case CommandConvert:
		s.Convert(input)
	}
	return false, nil
}

// Convert prints the conversion report for text. A single character gets one
// report; longer text gets one report per character, labeled by its 1-based
// position. Empty text is reported as unprocessable.
func (s *Shell) Convert(text string) {
	if runes := []rune(text); len(runes) > 1 {
		s.print(fmt.Sprintf("\nProcessing multiple characters: '%s'\n", text))
		s.print(s.styles.Muted.Render(strings.Repeat("=", 50)) + "\n")
		for i, r := range runes {
			s.print(fmt.Sprintf("\nPosition %d:\n", i+1))
			s.printReport(converter.ConvertRune(r))
		}
		return
	}

	res, err := converter.Convert(text)
	if err != nil {
		s.logger.Debug("conversion rejected", "input", text, "err", err)
		s.print(s.styles.Error.Render(invalidMsg) + "\n\n")
		return
	}
	s.printReport(res)
}

func (s *Shell) printReport(res converter.Result) {
	s.print("\n" + converter.Format(res, s.format) + "\n\n")
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.out, text) // Terminal output; nothing useful to do on failure
}

func (s *Shell) farewell() {
	s.print("\n" + s.styles.Success.Render(farewellMsg) + "\n")
}

// fail reports an iteration failure; the session carries on.
func (s *Shell) fail(line string, err error) {
	s.logger.Error("iteration failed", "input", line, "err", err)
	s.print("\n" + s.styles.Error.Render("Error: "+err.Error()) + "\nPlease try again.\n\n")
}

// Error implements the error interface.
func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("input line exceeds %d bytes", e.Limit)
}

// Unwrap returns ErrLineTooLong.
func (e *LineTooLongError) Unwrap() error { return ErrLineTooLong }

// readLines reads r on its own goroutine so that Run can wait for either the
// next line or cancellation. A line longer than maxLen is consumed and
// delivered as a *LineTooLongError. The channel is closed at end of input or
// on a read error. When ctx is cancelled while a read is blocked, the
// goroutine stays parked in Read until the process exits.
func readLines(ctx context.Context, r io.Reader, maxLen int, logger *log.Logger) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			text, err := readLine(br, maxLen)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil && !errors.Is(err, ErrLineTooLong) {
				logger.Warn("failed to read input", "err", err)
				return
			}
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// readLine returns the next line without its line ending ("\n" or "\r\n").
// The final line may lack a newline. io.EOF is returned only when no bytes
// remain. Bytes past maxLen are discarded up to the newline and the line is
// reported as a *LineTooLongError.
func readLine(br *bufio.Reader, maxLen int) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(trimEOL(buf)) > maxLen {
				tooLong = true
				buf = nil
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == nil:
		case errors.Is(err, io.EOF):
			if !tooLong && len(buf) == 0 {
				return "", io.EOF
			}
		default:
			return "", err
		}

		if tooLong {
			return "", &LineTooLongError{Limit: maxLen}
		}
		return string(trimEOL(buf)), nil
	}
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	return bytes.TrimSuffix(b, []byte("\r"))
}
