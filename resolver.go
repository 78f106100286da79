package wcap

// Resolver maps an entry point name to its address. A zero address is the
// absent marker. Implementations are owned by the host runtime (a dynamic
// loader, a driver's GetProcAddr, a symbol table); tables only consume them.
type Resolver interface {
	Lookup(name string) uintptr
}

// ResolverFunc adapts a plain function, typically a closure over a loader
// handle, to Resolver.
type ResolverFunc func(name string) uintptr

func (f ResolverFunc) Lookup(name string) uintptr { return f(name) }

type EmptyResolver struct{}

var _ Resolver = (*EmptyResolver)(nil)

func (*EmptyResolver) Lookup(string) uintptr { return 0 }

// StaticResolver answers from a fixed name to address map.
type StaticResolver map[string]uintptr

func (s StaticResolver) Lookup(name string) uintptr { return s[name] }

type chain []Resolver

// Chain returns a resolver that asks each resolver in order and returns the
// first non-zero address. Nil resolvers are skipped.
func Chain(resolvers ...Resolver) Resolver {
	var c chain
	for _, r := range resolvers {
		if r != nil {
			c = append(c, r)
		}
	}
	return c
}

func (c chain) Lookup(name string) uintptr {
	for _, r := range c {
		if addr := r.Lookup(name); addr != 0 {
			return addr
		}
	}
	return 0
}
