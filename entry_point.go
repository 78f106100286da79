package wcap

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

// Entry is a snapshot of one slot of a table. Addr is 0 when the resolver
// did not provide the entry point and a stub is installed instead.
type Entry struct {
	Name string  `json:"name" yaml:"name"`
	Addr uintptr `json:"addr" yaml:"addr"`
}

func (e Entry) Supported() bool { return e.Addr != 0 }

func (e Entry) String() string {
	if e.Addr == 0 {
		return e.Name + " (unsupported)"
	}
	return fmt.Sprintf("%s @ %#x", e.Name, e.Addr)
}

// EntryPoint is a single slot of a capability table. F must be a func type.
// The zero value behaves as an unsupported entry point with no name.
type EntryPoint[F any] struct {
	table string
	name  string
	addr  uintptr
	fn    F
	set   bool
}

func (ep *EntryPoint[F]) Name() string { return ep.name }

func (ep *EntryPoint[F]) Addr() uintptr { return ep.addr }

func (ep *EntryPoint[F]) Supported() bool { return ep.addr != 0 }

func (ep *EntryPoint[F]) Entry() Entry { return Entry{Name: ep.name, Addr: ep.addr} }

// Func returns the callable for this slot: the bound function when the entry
// point was resolved, otherwise a stub that panics when called.
func (ep *EntryPoint[F]) Func() F {
	if !ep.set {
		return newStub[F](ep.table, ep.name, log)
	}
	return ep.fn
}

// TryFunc is like Func but reports an unsupported entry point as an error
// instead of handing out a stub.
func (ep *EntryPoint[F]) TryFunc() (F, error) {
	if ep.addr == 0 {
		var zero F
		return zero, &UnsupportedError{Table: ep.table, Name: ep.name}
	}
	return ep.fn, nil
}

func funcType[F any]() reflect.Type {
	typ := reflect.TypeOf((*F)(nil)).Elem()
	if typ.Kind() != reflect.Func {
		panic(fmt.Sprintf("wcap: entry point type %s is not a func", typ))
	}
	return typ
}

func newStub[F any](table, name string, l logrus.FieldLogger) F {
	stub := reflect.MakeFunc(funcType[F](), func([]reflect.Value) []reflect.Value {
		err := &UnsupportedError{Table: table, Name: name}
		l.WithFields(logrus.Fields{
			logfields.Table:      table,
			logfields.EntryPoint: name,
		}).Error("Called an unsupported entry point")
		panic(err)
	})
	return stub.Interface().(F)
}
