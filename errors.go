package wcap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupported   = errors.New("entry point not supported by the bound resolver")
	ErrTableNotFound = errors.New("table not found")
)

// UnsupportedError is the panic value raised by a stub when an entry point
// that the resolver did not provide is called.
type UnsupportedError struct {
	Table string
	Name  string
}

func (e *UnsupportedError) Error() string {
	var b strings.Builder
	b.WriteString("wcap: ")
	if e.Table != "" {
		b.WriteString(e.Table)
		b.WriteString(": ")
	}
	if e.Name == "" {
		b.WriteString("entry point was never bound")
		return b.String()
	}
	fmt.Fprintf(&b, "%s is not supported by the bound resolver", e.Name)
	return b.String()
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
