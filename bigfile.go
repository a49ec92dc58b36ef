// Package bigfile locates and opens shared libraries by their logical name so
// that their symbols can be called from Go.
package bigfile

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrLibraryNotFound is returned when no shared library matches the requested name.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrLibraryLoadFailed is returned when a library file was found but the dynamic loader refused it.
	ErrLibraryLoadFailed = errors.New("library load failed")
	// ErrSymbolNotFound is returned when a symbol is not exported by an opened library.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrInvalidName is returned for empty names or names containing glob metacharacters.
	ErrInvalidName = errors.New("invalid library name")
	// ErrClosed is returned when a closed library is used.
	ErrClosed = errors.New("library closed")
)

// Library is a handle to an opened shared library. Each Library owns its handle; libraries opened
// twice by name are independent and must each be closed.
type Library struct {
	name string
	path string

	mu     sync.RWMutex
	handle uintptr
}

// Name returns the logical name the library was loaded by.
func (l *Library) Name() string {
	return l.name
}

// Path returns the file the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Handle returns the platform handle, or 0 once the library is closed.
func (l *Library) Handle() uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handle
}

// Symbol returns the address of the named symbol.
func (l *Library) Symbol(name string) (uintptr, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == 0 {
		return 0, ErrClosed
	}

	addr, err := dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %w", ErrSymbolNotFound, name, l.path, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, name, l.path)
	}
	return addr, nil
}

// Register binds fptr, a pointer to a Go function variable, to the named C symbol.
//
// Example:
//
//	var zlibVersion func() string
//	err := lib.Register(&zlibVersion, "zlibVersion")
func (l *Library) Register(fptr any, symbol string) error {
	addr, err := l.Symbol(symbol)
	if err != nil {
		return err
	}
	return registerFunc(fptr, addr)
}

// Require checks that every named symbol is exported by the library. All missing symbols are reported.
func (l *Library) Require(symbols ...string) error {
	var errs []error
	for _, symbol := range symbols {
		if _, err := l.Symbol(symbol); err != nil {
			if errors.Is(err, ErrClosed) {
				return err
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases the handle. Closing an already closed library is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return nil
	}

	handle := l.handle
	l.handle = 0
	if err := dlclose(handle); err != nil {
		return fmt.Errorf("close %s: %w", l.path, err)
	}
	return nil
}
