//go:build !(darwin || freebsd || linux || netbsd || windows)

package bigfile

import (
	"errors"
	"fmt"
	"runtime"
)

var errNoDynamicLoader = fmt.Errorf("dynamic loading on %s: %w", runtime.GOOS, errors.ErrUnsupported)

func dlopen(string, bool, bool) (uintptr, error) {
	return 0, errNoDynamicLoader
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, errNoDynamicLoader
}

func dlclose(uintptr) error {
	return errNoDynamicLoader
}

func registerFunc(any, uintptr) error {
	return errNoDynamicLoader
}
