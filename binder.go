package wcap

import "github.com/ebitengine/purego"

// Binder turns a raw address into a callable Go function by storing it into
// fptr, a pointer to a func variable. Nothing can prove that addr implements
// the signature of *fptr; that rests on the resolver's contract for the name
// the address was resolved from.
type Binder interface {
	Bind(fptr any, addr uintptr)
}

type BinderFunc func(fptr any, addr uintptr)

func (f BinderFunc) Bind(fptr any, addr uintptr) { f(fptr, addr) }

// CBinder binds C ABI addresses with purego.
var CBinder Binder = BinderFunc(purego.RegisterFunc)
