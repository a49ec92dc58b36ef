//go:build darwin

package bigfile

import (
	"os"
	"path/filepath"
)

// libraryPatterns returns the file name patterns a library called name may have.
func libraryPatterns(name string) []string {
	return []string{
		"lib" + name + ".dylib",
		"lib" + name + ".*.dylib",
		name + ".dylib",
		name + ".framework/" + name,
	}
}

// fallbackPaths returns DYLD_FALLBACK_LIBRARY_PATH or dyld's default fallback directories.
func fallbackPaths() []string {
	if paths := envDirs("DYLD_FALLBACK_LIBRARY_PATH"); len(paths) > 0 {
		return paths
	}
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "lib"))
	}
	return append(paths, "/usr/local/lib", "/usr/lib")
}

// searchPaths returns the list of paths to search for shared libraries on macOS.
func searchPaths() []string {
	return []string{
		"/opt/homebrew/lib",
		"/opt/local/lib",
		"/Library/Frameworks",
		"/System/Library/Frameworks",
	}
}

// findLib attempts to find a shared library on macOS systems. It searches the dyld environment, then
// pkg-config, then common paths. System libraries that exist only in the dyld shared cache are found
// by opening them.
func findLib(name string) (string, error) {
	if path, ok := searchDirs(envDirs("DYLD_LIBRARY_PATH"), name); ok {
		return path, nil
	}
	if path, ok := searchDirs(pkgConfigLibDirs(name), name); ok {
		return path, nil
	}
	if path, ok := searchDirs(fallbackPaths(), name); ok {
		return path, nil
	}
	if path, ok := searchDirs(searchPaths(), name); ok {
		return path, nil
	}

	path := "/usr/lib/lib" + name + ".dylib"
	if handle, err := dlopen(path, true, true); err == nil {
		_ = dlclose(handle)
		return path, nil
	}
	return "", ErrLibraryNotFound
}
