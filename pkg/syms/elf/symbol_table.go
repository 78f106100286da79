package elf

import (
	"debug/elf"
	"errors"
	"fmt"

	"github.com/ianlancetaylor/demangle"
)

type SymbolOptions struct {
	DemangleOpts []demangle.Option
}

// SymbolTable indexes the defined function symbols of an ELF file by name.
// Values are link-time virtual addresses; callers add the load base.
type SymbolTable struct {
	addrs map[string]uint64
	size  int
}

func (f *File) NewSymbolTable(opts *SymbolOptions) (*SymbolTable, error) {
	if opts == nil {
		opts = &SymbolOptions{}
	}
	var all []elf.Symbol
	// .dynsym first: those are the names a dynamic loader would hand out.
	dyn, dynErr := f.DynamicSymbols()
	all = append(all, dyn...)
	sym, symErr := f.Symbols()
	all = append(all, sym...)
	if len(all) == 0 {
		return nil, fmt.Errorf("no symbols in %s: %w", f.fpath, errors.Join(dynErr, symErr))
	}
	return newSymbolTable(all, opts), nil
}

func newSymbolTable(symbols []elf.Symbol, opts *SymbolOptions) *SymbolTable {
	t := &SymbolTable{addrs: make(map[string]uint64, len(symbols))}
	for _, s := range symbols {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Section == elf.SHN_UNDEF || s.Value == 0 || s.Name == "" {
			continue
		}
		if _, ok := t.addrs[s.Name]; ok {
			continue
		}
		t.addrs[s.Name] = s.Value
		t.size++
		if len(opts.DemangleOpts) == 0 {
			continue
		}
		if d, err := demangle.ToString(s.Name, opts.DemangleOpts...); err == nil && d != s.Name {
			if _, ok := t.addrs[d]; !ok {
				t.addrs[d] = s.Value
			}
		}
	}
	return t
}

func (t *SymbolTable) Lookup(name string) (uint64, bool) {
	if t == nil {
		return 0, false
	}
	addr, ok := t.addrs[name]
	return addr, ok
}

// Size is the number of distinct symbols, not counting demangled aliases.
func (t *SymbolTable) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}
