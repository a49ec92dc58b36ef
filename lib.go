package bigfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Find resolves a logical library name such as "z" or "ssl" to the path of a shared library file using
// the configuration in the environment. If the LIB<NAME>_PATH environment variable is set (LIBZ_PATH for
// "z"), its value is used in place of the search and must name an existing file. If no library is found,
// ErrLibraryNotFound is returned.
func Find(name string) (string, error) {
	loader, err := NewLoader()
	if err != nil {
		return "", err
	}
	return loader.Find(name)
}

// Find resolves name to a library path. Resolution checks the LIB<NAME>_PATH override, then the
// configured directories, then the platform's search path and library catalog.
func (l *Loader) Find(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if isPath(name) {
		if fileExists(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
	}
	if strings.ContainsAny(name, `*?[\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	log := l.logger().With("name", name)
	if key := envVarName(name); os.Getenv(key) != "" {
		path := os.Getenv(key)
		if !fileExists(path) {
			return "", fmt.Errorf("%w: %s=%s", ErrLibraryNotFound, key, path)
		}
		log.Debug("library path from environment", "env", key, "path", path)
		return path, nil
	}
	if path, ok := searchDirs(l.Config.Dirs(), name); ok {
		log.Debug("library found in configured path", "path", path)
		return path, nil
	}

	path, err := findLib(name)
	if err != nil {
		log.Debug("library not found", "error", err)
		return "", fmt.Errorf("%w: %s", err, name)
	}
	log.Debug("library found", "path", path)
	return path, nil
}

// envVarName returns the override variable for name, e.g. LIBSTDC___PATH for "stdc++".
func envVarName(name string) string {
	var b strings.Builder
	b.WriteString("LIB")
	for _, r := range name {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteString("_PATH")
	return b.String()
}

// isPath reports whether name refers to a file rather than a logical library name.
func isPath(name string) bool {
	return strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator)
}
