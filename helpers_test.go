package bigfile_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gluster/bigfile"
)

// requireLinux skips tests that rely on the system C library being installed as libc.so.6.
func requireLinux(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skipf("libc lookup by name is not available on %s", runtime.GOOS)
	}
}

// libFile returns the platform file name for a library called name.
func libFile(name string) string {
	switch runtime.GOOS {
	case "windows":
		return name + ".dll"
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// writeLib creates a file named for the library name in dir.
func writeLib(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, libFile(name))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// newLoader returns a loader searching dirs first, with diagnostics captured in the returned buffer.
func newLoader(dirs ...string) (*bigfile.Loader, *bytes.Buffer) {
	var diag bytes.Buffer
	return &bigfile.Loader{
		Config:      bigfile.Config{Path: strings.Join(dirs, string(os.PathListSeparator))},
		Diagnostics: &diag,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, &diag
}
