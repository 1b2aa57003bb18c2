// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Doc: {
	name?:  string
	count?: int & >=1
	tags?: [...string]
}
`

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "test.cue"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := FormatError(errors.New("some error"), "test.cue")
	if err == nil || !strings.Contains(err.Error(), "test.cue") || !strings.Contains(err.Error(), "some error") {
		t.Errorf("non-CUE error should be wrapped with the file path, got: %v", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     []string
		expected string
	}{
		{nil, ""},
		{[]string{"ui"}, "ui"},
		{[]string{"ui", "clear_mode"}, "ui.clear_mode"},
		{[]string{"tags", "0"}, "tags[0]"},
		{[]string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.expected {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "ok.cue"); err != nil {
		t.Errorf("size at limit should pass, got %v", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "big.cue"); err == nil {
		t.Error("size above limit should fail")
	}
}

func TestDecodeMap(t *testing.T) {
	t.Parallel()

	m, err := DecodeMap(testSchema, "#Doc", []byte(`name: "x"
count: 3`), "doc.cue")
	if err != nil {
		t.Fatalf("DecodeMap() error: %v", err)
	}
	if m["name"] != "x" {
		t.Errorf("name = %v", m["name"])
	}
	if _, ok := m["tags"]; ok {
		t.Error("absent optional field should not be decoded")
	}
}

func TestDecodeMap_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax error", `name: `, "doc.cue"},
		{"constraint violation", `count: 0`, "count"},
		{"unknown field", `colour: "red"`, "colour"},
		{"wrong type", `name: 5`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeMap(testSchema, "#Doc", []byte(tt.data), "doc.cue")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}
