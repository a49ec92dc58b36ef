package bigfile

import (
	"bufio"
	"bytes"
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sys/execabs"
)

// searchDirs looks for a library matching name in each directory in turn and returns the preferred
// match from the first directory containing one. Directory names are taken literally, not as patterns.
func searchDirs(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		var matches []string
		for _, entry := range entries {
			for _, pattern := range libraryPatterns(name) {
				// Only the first element is a pattern, e.g. "z.framework" in "z.framework/z".
				base, rest, _ := strings.Cut(pattern, "/")
				if ok, err := filepath.Match(base, entry.Name()); err != nil || !ok {
					continue
				}
				path := filepath.Join(dir, entry.Name(), rest)
				if fileExists(path) && !slices.Contains(matches, path) {
					matches = append(matches, path)
				}
			}
		}
		if len(matches) > 0 {
			return preferredVersion(matches), true
		}
	}
	return "", false
}

// envDirs returns the directories listed in the environment variable key.
func envDirs(key string) []string {
	return filepath.SplitList(os.Getenv(key))
}

// preferredVersion returns the path with the highest version number in its file name. A versioned
// soname is preferred over an unversioned development link.
func preferredVersion(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	sorted := slices.Clone(paths)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if c := compareVersions(fileVersion(b), fileVersion(a)); c != 0 {
			return c
		}
		return strings.Compare(b, a)
	})
	return sorted[0]
}

// fileVersion returns the numeric components found in the base name of path, so that
// "libz.so.1.2.13" yields [1 2 13].
func fileVersion(path string) []int {
	var version []int
	for _, field := range strings.FieldsFunc(filepath.Base(path), func(r rune) bool { return r < '0' || r > '9' }) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		version = append(version, n)
	}
	return version
}

// compareVersions compares two versions component-wise. A version that extends another is greater.
func compareVersions(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// pkgConfigLibDirs returns the library directories pkg-config reports for the package named name or
// lib<name>.
func pkgConfigLibDirs(name string) []string {
	var dirs []string
	for _, pkg := range []string{name, "lib" + name} {
		if dir, ok := pkgConfigGetLibDir(pkg); ok && !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// pkgConfigGetLibDir runs pkg-config --libs and extracts the -L path.
func pkgConfigGetLibDir(pkg string) (string, bool) {
	cmd := execabs.Command("pkg-config", "--libs", pkg)
	output, err := cmd.Output()
	if err != nil {
		return "", false
	}

	parts := strings.Fields(string(output))
	for _, part := range parts {
		if strings.HasPrefix(part, "-L") {
			return strings.TrimPrefix(part, "-L"), true
		}
	}

	cmd = execabs.Command("pkg-config", "--variable=libdir", pkg)
	output, err = cmd.Output()
	if err != nil {
		return "", false
	}

	libDir := strings.TrimSpace(string(output))
	if libDir != "" {
		return libDir, true
	}

	return "", false
}

// ldconfigEntry is a single library in the output of ldconfig -p.
type ldconfigEntry struct {
	Soname string
	Flags  []string
	Path   string
}

// parseLDConfig parses the output of ldconfig -p. Lines look like:
//
//	libz.so.1 (libc6,x86-64) => /lib/x86_64-linux-gnu/libz.so.1
func parseLDConfig(output []byte) []ldconfigEntry {
	var entries []ldconfigEntry
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		lib, path, ok := strings.Cut(strings.TrimSpace(scanner.Text()), " => ")
		if !ok {
			continue
		}
		soname, flags, ok := strings.Cut(lib, " (")
		if !ok {
			continue
		}

		entry := ldconfigEntry{Soname: soname, Path: strings.TrimSpace(path)}
		for _, flag := range strings.Split(strings.TrimSuffix(flags, ")"), ",") {
			entry.Flags = append(entry.Flags, strings.TrimSpace(flag))
		}
		entries = append(entries, entry)
	}
	return entries
}

// wideABIs are the ldconfig flags marking 64-bit libraries on multilib systems.
var wideABIs = []string{"x86-64", "AArch64", "64bit", "IA-64"}

// matchLDConfig returns the path of the first entry providing lib<name>.so for the given ABI flag. An
// empty abi matches only entries without a 64-bit flag.
func matchLDConfig(entries []ldconfigEntry, name, abi string) (string, bool) {
	soname := "lib" + name + ".so"
	for _, entry := range entries {
		if entry.Soname != soname && !strings.HasPrefix(entry.Soname, soname+".") {
			continue
		}
		if abi != "" && !slices.Contains(entry.Flags, abi) {
			continue
		}
		if abi == "" && slices.ContainsFunc(entry.Flags, func(flag string) bool { return slices.Contains(wideABIs, flag) }) {
			continue
		}
		return entry.Path, true
	}
	return "", false
}

// fileExists returns true if the given path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
