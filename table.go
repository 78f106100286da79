package wcap

import "fmt"

type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopeInstance Scope = "instance"
	ScopeDevice   Scope = "device"
)

func ParseScope(s string) (Scope, error) {
	switch sc := Scope(s); sc {
	case ScopeGlobal, ScopeInstance, ScopeDevice:
		return sc, nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// Table is implemented by every capability table.
type Table interface {
	Name() string
	Scope() Scope
	Entries() []Entry
}

// Missing returns the names of the entry points of t that are stubs.
func Missing(t Table) []string {
	var names []string
	for _, e := range t.Entries() {
		if !e.Supported() {
			names = append(names, e.Name)
		}
	}
	return names
}

func Supports(t Table, name string) bool {
	for _, e := range t.Entries() {
		if e.Name == name {
			return e.Supported()
		}
	}
	return false
}

// Equivalent reports whether a and b declare the same entry points in the
// same order with the same resolved or stub status for each.
func Equivalent(a, b Table) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Name() != b.Name() || a.Scope() != b.Scope() {
		return false
	}
	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i].Name != eb[i].Name || ea[i].Supported() != eb[i].Supported() {
			return false
		}
	}
	return true
}
