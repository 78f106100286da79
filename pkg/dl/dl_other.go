//go:build !(darwin || freebsd || linux || netbsd)

package dl

func (o *OpenOptions) flags() int { return 0 }

func open(string, int) (uintptr, error) { return 0, ErrUnsupportedPlatform }

func sym(uintptr, string) (uintptr, error) { return 0, ErrUnsupportedPlatform }

func closeLib(uintptr) error { return ErrUnsupportedPlatform }
