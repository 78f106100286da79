package elf

import (
	"debug/elf"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlancetaylor/demangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/wcap/pkg/dl"
	"github.com/vietanhduong/wcap/pkg/proc"
)

func funcSym(name string, value uint64) elf.Symbol {
	return elf.Symbol{
		Name:    name,
		Info:    elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC),
		Section: elf.SectionIndex(14),
		Value:   value,
	}
}

func Test_newSymbolTable(t *testing.T) {
	symbols := []elf.Symbol{
		funcSym("vkCreateInstance", 0x1100),
		funcSym("vkCreateInstance", 0x2200),
		funcSym("_ZN3foo3barEv", 0x1200),
		{Name: "vkUndefined", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC), Section: elf.SHN_UNDEF},
		{Name: "global_object", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_OBJECT), Section: 20, Value: 0x4000},
		funcSym("", 0x1300),
		{Name: "strlen", Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_GNU_IFUNC), Section: 14, Value: 0x1400},
	}

	testcases := []struct {
		name  string
		opts  *SymbolOptions
		found map[string]uint64
		miss  []string
	}{
		{
			name: "TEST SUCCESS: raw names",
			opts: &SymbolOptions{},
			found: map[string]uint64{
				"vkCreateInstance": 0x1100,
				"_ZN3foo3barEv":    0x1200,
			},
			miss: []string{"foo::bar()", "vkUndefined", "global_object", "", "strlen"},
		},
		{
			name: "TEST SUCCESS: demangled aliases",
			opts: &SymbolOptions{DemangleOpts: []demangle.Option{demangle.NoClones}},
			found: map[string]uint64{
				"_ZN3foo3barEv": 0x1200,
				"foo::bar()":    0x1200,
			},
		},
		{
			name: "TEST SUCCESS: simplified demangling",
			opts: &SymbolOptions{DemangleOpts: []demangle.Option{demangle.NoParams}},
			found: map[string]uint64{
				"foo::bar": 0x1200,
			},
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newSymbolTable(symbols, tt.opts)
			assert.Equal(t, 2, tbl.Size())
			for name, want := range tt.found {
				got, ok := tbl.Lookup(name)
				require.True(t, ok, "symbol %s not found", name)
				assert.Equal(t, want, got)
			}
			for _, name := range tt.miss {
				_, ok := tbl.Lookup(name)
				assert.False(t, ok, "unexpected symbol %s", name)
			}
		})
	}
}

// mappedLibc loads libc into the test process and returns the path of the
// mapped file.
func mappedLibc(t *testing.T) string {
	t.Helper()
	lib, err := dl.Open("libc.so.6")
	if err != nil {
		t.Skipf("libc not available: %v", err)
	}
	t.Cleanup(func() { lib.Close() })

	maps, err := proc.ParseProcMaps(os.Getpid())
	require.NoError(t, err)
	for _, m := range maps {
		base := filepath.Base(m.Pathname)
		if strings.HasPrefix(base, "libc.so") || strings.HasPrefix(base, "libc-") {
			return m.Pathname
		}
	}
	t.Skip("libc is not mapped from a file")
	return ""
}

func TestFile_SharedObject(t *testing.T) {
	path := mappedLibc(t)
	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, path, f.FilePath())

	tbl, err := f.NewSymbolTable(nil)
	require.NoError(t, err)
	assert.NotZero(t, tbl.Size())
	for _, name := range []string{"abs", "labs", "getpid"} {
		addr, ok := tbl.Lookup(name)
		assert.True(t, ok, "symbol %s not found", name)
		assert.NotZero(t, addr, name)
	}
	_, ok := tbl.Lookup("wcap_no_such_symbol")
	assert.False(t, ok)

	if id, err := f.BuildId(); err == nil {
		assert.False(t, id.Empty())
	}
}

func TestFile_Executable(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	f, err := Open(exe)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, exe, f.FilePath())

	data, err := f.SectionData(".no_such_section")
	assert.NoError(t, err)
	assert.Nil(t, data)

	text, err := f.SectionData(".text")
	assert.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestOpen_NotElf(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "notelf")
	require.NoError(t, err)
	_, err = tmp.WriteString("not an elf file")
	require.NoError(t, err)
	tmp.Close()

	_, err = Open(tmp.Name())
	assert.Error(t, err)

	_, err = Open("/nonexistent/file")
	assert.Error(t, err)
}

func Test_parseGNUBuildIdNote(t *testing.T) {
	note := []byte{
		4, 0, 0, 0, // namesz
		20, 0, 0, 0, // descsz
		3, 0, 0, 0, // NT_GNU_BUILD_ID
		'G', 'N', 'U', 0,
	}
	desc := make([]byte, 20)
	for i := range desc {
		desc[i] = byte(i)
	}
	id, err := parseGNUBuildIdNote(append(note, desc...), "x")
	require.NoError(t, err)
	assert.True(t, id.GNU())
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f10111213", id.Id)

	_, err = parseGNUBuildIdNote(note[:10], "x")
	assert.Error(t, err)
	_, err = parseGNUBuildIdNote(append(note, 1, 2, 3), "x")
	assert.Error(t, err)
}
