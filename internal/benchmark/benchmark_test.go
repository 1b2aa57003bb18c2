// SPDX-License-Identifier: MPL-2.0

package benchmark

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biggaero/converter/internal/config"
	"github.com/biggaero/converter/internal/converter"
	"github.com/biggaero/converter/internal/shell"
	"github.com/biggaero/converter/internal/terminal"
)

const (
	// sampleConfig is a complete config file exercising every schema field.
	sampleConfig = `
ui: {
	color_scheme: "dark"
	verbose:      false
	banner:       true
	clear_mode:   "none"
}
converter: {
	binary_width: 16
}
`

	// sampleSession mixes single characters, words and commands.
	sampleSession = "A\nz\n5\n \n@\nhello\n\nhelp\nclear\nq\n"
)

func BenchmarkConvert(b *testing.B) {
	inputs := []string{"A", "z", "5", " ", "@", "é"}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		for _, in := range inputs {
			if _, err := converter.Convert(in); err != nil {
				b.Fatalf("Convert(%q) failed: %v", in, err)
			}
		}
	}
}

func BenchmarkConvertRuneASCII(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		for r := rune(0); r < 128; r++ {
			_ = converter.ConvertRune(r).Kind()
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	res := converter.ConvertRune('A')
	opts := converter.FormatOptions{BinaryWidth: 8}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if out := converter.Format(res, opts); out == "" {
			b.Fatal("Format returned empty output")
		}
	}
}

func BenchmarkFormatChart(b *testing.B) {
	opts := converter.FormatOptions{}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		rows := converter.Chart(32, 126)
		if out := converter.FormatChart(rows, opts); out == "" {
			b.Fatal("FormatChart returned empty output")
		}
	}
}

func BenchmarkConfigLoad(b *testing.B) {
	path := filepath.Join(b.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		b.Fatalf("failed to write config: %v", err)
	}
	provider := config.NewProvider()
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		cfg, err := provider.Load(ctx, config.LoadOptions{ConfigFilePath: path})
		if err != nil {
			b.Fatalf("Load failed: %v", err)
		}
		if cfg.Converter.BinaryWidth != 16 {
			b.Fatalf("unexpected binary width %d", cfg.Converter.BinaryWidth)
		}
	}
}

func BenchmarkSession(b *testing.B) {
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s := shell.New(shell.Options{
			In:      strings.NewReader(sampleSession),
			Out:     io.Discard,
			Clearer: terminal.New(terminal.ModeNone, io.Discard),
		})
		if err := s.Run(ctx); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
