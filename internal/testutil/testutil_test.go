// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/biggaero/converter/pkg/platform"
)

func TestSetHomeDir(t *testing.T) {
	tmpDir := t.TempDir()

	SetHomeDir(t, tmpDir)

	key, cleared := "HOME", "XDG_CONFIG_HOME"
	if runtime.GOOS == platform.Windows {
		key, cleared = "USERPROFILE", "APPDATA"
	}
	if got := os.Getenv(key); got != tmpDir {
		t.Errorf("%s = %q, want %q", key, got, tmpDir)
	}
	if got := os.Getenv(cleared); got != "" {
		t.Errorf("%s = %q, want empty", cleared, got)
	}
}

func TestSafeBuffer_ConcurrentWrites(t *testing.T) {
	t.Parallel()

	var buf SafeBuffer
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fmt.Fprintf(&buf, "line %d\n", i)
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 10 {
		t.Errorf("expected 10 lines, got %d", got)
	}
	if buf.Len() != len(buf.String()) {
		t.Error("Len() disagrees with String()")
	}
}
