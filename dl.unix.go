//go:build darwin || freebsd || linux || netbsd

package bigfile

import (
	"errors"

	"github.com/ebitengine/purego"
)

// dlopen opens the library at path, by default with RTLD_NOW|RTLD_GLOBAL.
func dlopen(path string, lazy, local bool) (uintptr, error) {
	mode := purego.RTLD_NOW
	if lazy {
		mode = purego.RTLD_LAZY
	}
	if local {
		mode |= purego.RTLD_LOCAL
	} else {
		mode |= purego.RTLD_GLOBAL
	}

	handle, err := purego.Dlopen(path, mode)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, errors.New("dlopen returned a nil handle")
	}
	return handle, nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}
