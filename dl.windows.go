//go:build windows

package bigfile

import (
	"errors"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// dlopen loads the DLL at path, which must be absolute. Dependent DLLs are searched for in the DLL's own
// directory first. Windows has no equivalent of the lazy and local modes.
func dlopen(path string, _, _ bool) (uintptr, error) {
	if !filepath.IsAbs(path) {
		return 0, errors.New("LoadLibraryEx with an altered search path needs an absolute path: " + path)
	}
	handle, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, errors.New("LoadLibraryEx returned a nil handle")
	}
	return uintptr(handle), nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlclose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
