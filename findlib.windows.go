//go:build windows

package bigfile

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// libraryPatterns returns the file name patterns a library called name may have.
func libraryPatterns(name string) []string {
	if strings.EqualFold(filepath.Ext(name), ".dll") {
		return []string{name}
	}
	return []string{name + ".dll", "lib" + name + ".dll", "lib" + name + "-*.dll"}
}

// searchPaths returns the directories searched for DLLs: the executable's directory, the system
// directory, the Windows directory and PATH.
func searchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(exe))
	}
	if dir, err := windows.GetSystemDirectory(); err == nil {
		paths = append(paths, dir)
	}
	if dir, err := windows.GetWindowsDirectory(); err == nil {
		paths = append(paths, dir)
	}
	return append(paths, envDirs("PATH")...)
}

// findLib attempts to find a DLL on Windows systems.
func findLib(name string) (string, error) {
	if path, ok := searchDirs(searchPaths(), name); ok {
		return path, nil
	}
	return "", ErrLibraryNotFound
}
