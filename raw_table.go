package wcap

// RawTable is a table without typed functions, built from a list of names.
// It records only which entry points resolved and where.
type RawTable struct {
	name    string
	scope   Scope
	entries []Entry
}

var _ Table = (*RawTable)(nil)

// LoadRaw resolves each name once, in order. Duplicate names are kept once.
func LoadRaw(name string, scope Scope, names []string, r Resolver, opts ...LoadOption) *RawTable {
	s := NewSession(name, r, opts...)
	defer s.Done()

	t := &RawTable{name: name, scope: scope}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		t.entries = append(t.entries, Entry{Name: n, Addr: s.Lookup(n)})
	}
	return t
}

func (t *RawTable) Name() string { return t.name }

func (t *RawTable) Scope() Scope { return t.scope }

func (t *RawTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
