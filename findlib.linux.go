//go:build linux

package bigfile

import (
	"runtime"

	"golang.org/x/sys/execabs"
)

// libraryPatterns returns the file name patterns a library called name may have.
func libraryPatterns(name string) []string {
	return []string{"lib" + name + ".so", "lib" + name + ".so.*"}
}

// findLib attempts to find a shared library on Linux systems. It searches LD_LIBRARY_PATH, then the
// dynamic linker cache, then the standard library directories.
func findLib(name string) (string, error) {
	if path, ok := searchDirs(envDirs("LD_LIBRARY_PATH"), name); ok {
		return path, nil
	}
	if output, ok := ldconfigCache(); ok {
		if path, ok := matchLDConfig(parseLDConfig(output), name, ldconfigABI()); ok && fileExists(path) {
			return path, nil
		}
	}
	if path, ok := searchDirs(searchPaths(), name); ok {
		return path, nil
	}
	return "", ErrLibraryNotFound
}

// ldconfigCache returns the output of ldconfig -p. ldconfig is usually outside a regular user's PATH.
func ldconfigCache() ([]byte, bool) {
	for _, bin := range []string{"/sbin/ldconfig", "/usr/sbin/ldconfig", "ldconfig"} {
		output, err := execabs.Command(bin, "-p").Output()
		if err == nil {
			return output, true
		}
	}
	return nil, false
}

// ldconfigABI returns the ldconfig flag identifying libraries for the running architecture.
func ldconfigABI() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86-64"
	case "arm64":
		return "AArch64"
	case "ppc64", "ppc64le", "s390x", "mips64", "mips64le":
		return "64bit"
	default:
		return ""
	}
}

// searchPaths returns the standard library directories, starting with the multiarch ones.
func searchPaths() []string {
	var paths []string
	if triplet := multiarchTriplet(); triplet != "" {
		paths = append(paths,
			"/lib/"+triplet,
			"/usr/lib/"+triplet,
			"/usr/local/lib/"+triplet,
		)
	}
	if ldconfigABI() != "" {
		paths = append(paths, "/lib64", "/usr/lib64")
	}
	return append(paths, "/usr/local/lib", "/lib", "/usr/lib")
}

// multiarchTriplet returns the Debian multiarch directory name for the running architecture.
func multiarchTriplet() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64-linux-gnu"
	case "arm64":
		return "aarch64-linux-gnu"
	case "386":
		return "i386-linux-gnu"
	case "arm":
		return "arm-linux-gnueabihf"
	case "ppc64le":
		return "powerpc64le-linux-gnu"
	case "s390x":
		return "s390x-linux-gnu"
	case "riscv64":
		return "riscv64-linux-gnu"
	case "mips64le":
		return "mips64el-linux-gnuabi64"
	case "loong64":
		return "loongarch64-linux-gnu"
	default:
		return ""
	}
}
