package bigfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const ldconfigOutput = `1021 libs found in cache ` + "`/etc/ld.so.cache'" + `
	libzstd.so.1 (libc6,x86-64) => /lib/x86_64-linux-gnu/libzstd.so.1
	libz.so.1 (libc6,x86-64) => /lib/x86_64-linux-gnu/libz.so.1
	libz.so.1 (libc6) => /lib/i386-linux-gnu/libz.so.1
	libz.so (libc6,x86-64) => /lib/x86_64-linux-gnu/libz.so
	libc.so.6 (libc6,x86-64, OS ABI: Linux 3.2.0) => /lib/x86_64-linux-gnu/libc.so.6
	libcrypto.so.3 (libc6,AArch64) => /lib/aarch64-linux-gnu/libcrypto.so.3
`

func TestParseLDConfig(t *testing.T) {
	got := parseLDConfig([]byte(ldconfigOutput))
	want := []ldconfigEntry{
		{Soname: "libzstd.so.1", Flags: []string{"libc6", "x86-64"}, Path: "/lib/x86_64-linux-gnu/libzstd.so.1"},
		{Soname: "libz.so.1", Flags: []string{"libc6", "x86-64"}, Path: "/lib/x86_64-linux-gnu/libz.so.1"},
		{Soname: "libz.so.1", Flags: []string{"libc6"}, Path: "/lib/i386-linux-gnu/libz.so.1"},
		{Soname: "libz.so", Flags: []string{"libc6", "x86-64"}, Path: "/lib/x86_64-linux-gnu/libz.so"},
		{Soname: "libc.so.6", Flags: []string{"libc6", "x86-64", "OS ABI: Linux 3.2.0"}, Path: "/lib/x86_64-linux-gnu/libc.so.6"},
		{Soname: "libcrypto.so.3", Flags: []string{"libc6", "AArch64"}, Path: "/lib/aarch64-linux-gnu/libcrypto.so.3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestMatchLDConfig(t *testing.T) {
	entries := parseLDConfig([]byte(ldconfigOutput))
	cases := []struct {
		name string
		lib  string
		abi  string
		exp  string
		ok   bool
	}{
		{"Versioned", "z", "x86-64", "/lib/x86_64-linux-gnu/libz.so.1", true},
		{"NarrowABI", "z", "", "/lib/i386-linux-gnu/libz.so.1", true},
		{"ExtraFlags", "c", "x86-64", "/lib/x86_64-linux-gnu/libc.so.6", true},
		{"PrefixOnly", "zs", "x86-64", "", false},
		{"WrongABI", "crypto", "x86-64", "", false},
		{"OtherABI", "crypto", "AArch64", "/lib/aarch64-linux-gnu/libcrypto.so.3", true},
		{"Missing", "nonexistent_xyz", "x86-64", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := matchLDConfig(entries, tc.lib, tc.abi)
			if ok != tc.ok {
				t.Fatalf("expected ok %v; got: %v", tc.ok, ok)
			}
			if path != tc.exp {
				t.Errorf("unexpected path: %q; got: %q", tc.exp, path)
			}
		})
	}
}

func TestPreferredVersion(t *testing.T) {
	cases := []struct {
		name  string
		paths []string
		exp   string
	}{
		{"Single", []string{"/usr/lib/libz.so"}, "/usr/lib/libz.so"},
		{"SonameOverDevLink", []string{"/usr/lib/libc.so", "/usr/lib/libc.so.6"}, "/usr/lib/libc.so.6"},
		{"Numeric", []string{"/usr/lib/libssl.so.1.1", "/usr/lib/libssl.so.3", "/usr/lib/libssl.so.10"}, "/usr/lib/libssl.so.10"},
		{"Longer", []string{"/usr/lib/libz.so.1", "/usr/lib/libz.so.1.2.13"}, "/usr/lib/libz.so.1.2.13"},
		{"Dylib", []string{"/opt/lib/libpython3.9.dylib", "/opt/lib/libpython3.12.dylib"}, "/opt/lib/libpython3.12.dylib"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := preferredVersion(tc.paths); got != tc.exp {
				t.Errorf("unexpected path: %q; got: %q", tc.exp, got)
			}
		})
	}
}

func TestFileVersion(t *testing.T) {
	got := fileVersion("/lib/x86_64-linux-gnu/libz.so.1.2.13")
	if diff := cmp.Diff([]int{1, 2, 13}, got); diff != "" {
		t.Errorf("unexpected version (-want +got):\n%s", diff)
	}
	if got := fileVersion("/usr/lib/libz.so"); len(got) != 0 {
		t.Errorf("expected no version; got: %v", got)
	}
}

func TestEnvVarName(t *testing.T) {
	cases := map[string]string{
		"z":       "LIBZ_PATH",
		"ssl":     "LIBSSL_PATH",
		"gfapi":   "LIBGFAPI_PATH",
		"stdc++":  "LIBSTDC___PATH",
		"x264-go": "LIBX264_GO_PATH",
	}
	for name, exp := range cases {
		if got := envVarName(name); got != exp {
			t.Errorf("envVarName(%q): expected %q; got: %q", name, exp, got)
		}
	}
}

func TestSearchDirs(t *testing.T) {
	empty, dir := t.TempDir(), t.TempDir()
	file := filepath.Join(dir, libraryPatterns("searchxyz")[0])
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(empty, libraryPatterns("searchxyz")[0]), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok := searchDirs([]string{"", empty, dir}, "searchxyz")
	if !ok {
		t.Fatal("expected library to be found")
	}
	if path != file {
		t.Errorf("unexpected path: %q; got: %q", file, path)
	}

	if _, ok := searchDirs([]string{empty}, "searchxyz"); ok {
		t.Error("expected directory not to match")
	}
}

func TestSearchDirs_MetacharactersInDir(t *testing.T) {
	for _, sub := range []string{"app[1]", "app*", "app?"} {
		t.Run(sub, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), sub)
			if err := os.Mkdir(dir, 0o755); err != nil {
				t.Skipf("mkdir %q: %v", sub, err)
			}
			file := filepath.Join(dir, libraryPatterns("globdirxyz")[0])
			if err := os.WriteFile(file, nil, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			path, ok := searchDirs([]string{dir}, "globdirxyz")
			if !ok {
				t.Fatal("expected library to be found")
			}
			if path != file {
				t.Errorf("unexpected path: %q; got: %q", file, path)
			}
		})
	}
}

func TestSearchDirs_VersionedSibling(t *testing.T) {
	if len(libraryPatterns("versionxyz")) < 2 || !strings.HasSuffix(libraryPatterns("versionxyz")[0], ".so") {
		t.Skip("versioned sonames are not used on this platform")
	}
	dir := t.TempDir()
	for _, name := range []string{"libversionxyz.so", "libversionxyz.so.2", "libversionxyz.so.10"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	path, ok := searchDirs([]string{dir}, "versionxyz")
	if !ok {
		t.Fatal("expected library to be found")
	}
	if exp := filepath.Join(dir, "libversionxyz.so.10"); path != exp {
		t.Errorf("unexpected path: %q; got: %q", exp, path)
	}
}
