//go:build !(unix || windows)

package bigfile

// libraryPatterns returns the file name patterns a library called name may have.
func libraryPatterns(name string) []string {
	return []string{name}
}

// findLib returns ErrLibraryNotFound on systems which do not support the library search.
func findLib(string) (string, error) {
	return "", ErrLibraryNotFound
}
