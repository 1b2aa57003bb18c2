// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"github.com/biggaero/converter/pkg/platform"
)

// SetHomeDir points the platform's home directory variable at dir for the
// rest of the test and clears the variables that would otherwise take
// precedence when locating the config directory.
//
// Platform handling:
//   - Windows: sets USERPROFILE, clears APPDATA
//   - Linux/macOS: sets HOME, clears XDG_CONFIG_HOME
//
// The environment is restored by t.Setenv when the test ends, so tests using
// it must not call t.Parallel.
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case platform.Windows:
		t.Setenv("USERPROFILE", dir)
		t.Setenv("APPDATA", "")
	default:
		t.Setenv("HOME", dir)
		t.Setenv("XDG_CONFIG_HOME", "")
	}
}
