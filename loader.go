package bigfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Loader resolves and opens shared libraries. The zero value searches only the platform locations,
// logs to slog.Default and writes diagnostics to os.Stderr.
//
// A Loader keeps no state between calls: every successful Load opens a new handle.
type Loader struct {
	Config Config
	// Diagnostics receives the install hint printed when a library cannot be found.
	Diagnostics io.Writer
	Logger      *slog.Logger
}

// NewLoader returns a Loader configured from the environment.
func NewLoader() (*Loader, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return &Loader{Config: cfg}, nil
}

// Load finds and opens a library by logical name using the configuration in the environment.
//
// Example:
//
//	lib, err := bigfile.Load("z")
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
func Load(name string) (*Library, error) {
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load(name)
}

// Load finds and opens a library by logical name. It returns an error wrapping ErrLibraryNotFound when
// no file matches, after printing an install hint to the diagnostics writer, and an error wrapping
// ErrLibraryLoadFailed when the file was found but could not be opened. A returned error is never
// accompanied by a Library.
func (l *Loader) Load(name string) (*Library, error) {
	path, err := l.Find(name)
	if err != nil {
		if errors.Is(err, ErrLibraryNotFound) {
			l.printMissing(name)
		}
		return nil, err
	}

	// A relative name without a separator would send the dynamic loader back to its own search.
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	handle, err := dlopen(path, l.Config.Lazy, l.Config.Local)
	if err != nil {
		l.logger().Warn("failed to open library", "name", name, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryLoadFailed, path, err)
	}
	l.logger().Debug("library opened", "name", name, "path", path)

	return &Library{name: name, path: path, handle: handle}, nil
}

// printMissing writes the install hint for name. Names given as a file path only get the path reported,
// since there is no package to suggest for them.
func (l *Loader) printMissing(name string) {
	w := l.Diagnostics
	if w == nil {
		w = os.Stderr
	}
	if isPath(name) {
		fmt.Fprintf(w, "failed to find %s\n", name)
		return
	}
	fmt.Fprintf(w, "failed to find lib%s. Please install lib%s\n", name, name)
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}
