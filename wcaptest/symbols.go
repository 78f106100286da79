// Package wcaptest provides a fake symbol space for exercising capability
// tables without a native library. Go functions are registered under a name
// and handed out as fake addresses; binding an address installs the
// registered function as is.
package wcaptest

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/pkg/utils"
)

const baseAddr uintptr = 0x7f0000001000

type Symbols struct {
	mu      sync.Mutex
	next    uintptr
	addrs   map[string]uintptr
	funcs   map[uintptr]any
	lookups map[string]int
}

var (
	_ wcap.Resolver = (*Symbols)(nil)
	_ wcap.Binder   = (*Symbols)(nil)
)

func New() *Symbols {
	return &Symbols{
		next:    baseAddr,
		addrs:   make(map[string]uintptr),
		funcs:   make(map[uintptr]any),
		lookups: make(map[string]int),
	}
}

// Register makes fn resolvable as name and returns its fake address.
// Registering a name again replaces the function and keeps the address.
func (s *Symbols) Register(name string, fn any) uintptr {
	if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		panic(fmt.Sprintf("wcaptest: register %s: %T is not a func", name, fn))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	addr, ok := s.addrs[name]
	if !ok {
		addr = s.next
		s.next += 0x10
		s.addrs[name] = addr
	}
	s.funcs[addr] = fn
	return addr
}

func (s *Symbols) Lookup(name string) uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups[name]++
	return s.addrs[name]
}

// Lookups returns how many times name was asked for.
func (s *Symbols) Lookups(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups[name]
}

// Bind stores the function registered at addr into fptr. It panics when addr
// is unknown or the registered function does not have the type of *fptr.
func (s *Symbols) Bind(fptr any, addr uintptr) {
	s.mu.Lock()
	fn, ok := s.funcs[addr]
	s.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("wcaptest: no function at %#x", addr))
	}
	if !utils.IsFuncPtr(fptr) {
		panic(fmt.Sprintf("wcaptest: bind target %T is not a pointer to a func", fptr))
	}
	dst := reflect.ValueOf(fptr)
	src := reflect.ValueOf(fn)
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		panic(fmt.Sprintf("wcaptest: function at %#x is %s, want %s", addr, src.Type(), dst.Elem().Type()))
	}
	dst.Elem().Set(src)
}

// Options returns load options that bind through s.
func (s *Symbols) Options(opts ...wcap.LoadOption) []wcap.LoadOption {
	return append([]wcap.LoadOption{wcap.WithBinder(s)}, opts...)
}
