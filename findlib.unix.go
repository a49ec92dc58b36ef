//go:build unix && !(darwin || linux)

package bigfile

// libraryPatterns returns the file name patterns a library called name may have.
func libraryPatterns(name string) []string {
	return []string{"lib" + name + ".so", "lib" + name + ".so.*"}
}

// searchPaths returns the list of paths to search for shared libraries on Unix systems.
func searchPaths() []string {
	return []string{
		"/usr/local/lib",
		"/usr/lib",
		"/lib",
	}
}

// findLib attempts to find a shared library on Unix systems. It searches LD_LIBRARY_PATH, then the
// directories reported by pkg-config, then falls back to common paths.
func findLib(name string) (string, error) {
	if path, ok := searchDirs(envDirs("LD_LIBRARY_PATH"), name); ok {
		return path, nil
	}
	if path, ok := searchDirs(pkgConfigLibDirs(name), name); ok {
		return path, nil
	}
	if path, ok := searchDirs(searchPaths(), name); ok {
		return path, nil
	}
	return "", ErrLibraryNotFound
}
