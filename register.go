//go:build darwin || freebsd || linux || netbsd || windows

package bigfile

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// registerFunc binds fptr to the C function at addr. purego panics on unsupported function types,
// which is reported as an error instead.
func registerFunc(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register: %v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
