//go:build darwin || freebsd || linux || netbsd

package dl

import "github.com/ebitengine/purego"

func (o *OpenOptions) flags() int {
	mode := purego.RTLD_NOW
	if o.Lazy {
		mode = purego.RTLD_LAZY
	}
	if o.Global {
		return mode | purego.RTLD_GLOBAL
	}
	return mode | purego.RTLD_LOCAL
}

func open(path string, flags int) (uintptr, error) { return purego.Dlopen(path, flags) }

func sym(handle uintptr, name string) (uintptr, error) { return purego.Dlsym(handle, name) }

func closeLib(handle uintptr) error { return purego.Dlclose(handle) }
