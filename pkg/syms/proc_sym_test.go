package syms

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/pkg/dl"
)

var _ wcap.Resolver = (*ProcSymbol)(nil)

func openLibc(t *testing.T) *dl.Library {
	t.Helper()
	lib, err := dl.Open("libc.so.6")
	if err != nil {
		t.Skipf("libc not available: %v", err)
	}
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestProcSymbol_MatchesDlsym(t *testing.T) {
	lib := openLibc(t)

	resolver, err := NewProcSymbol(os.Getpid(), &SymbolOptions{Modules: []string{"libc"}})
	require.NoError(t, err, "Failed to new proc symbol resolver")
	defer resolver.Cleanup()

	for _, name := range []string{"abs", "labs", "atoi"} {
		want := lib.Lookup(name)
		require.NotZero(t, want, "dlsym %s", name)
		sym, ok := resolver.LookupSymbol(name)
		require.True(t, ok, "symbol %s not found", name)
		assert.Equal(t, uint64(want), sym.Addr, name)
		if !strings.Contains(sym.Module, "/libc.so") && !strings.Contains(sym.Module, "/libc-") {
			t.Errorf("expected libc, got %v", sym.Module)
		}
	}
	assert.Zero(t, resolver.Lookup("wcap_no_such_symbol"))

	for _, m := range resolver.Modules() {
		assert.Contains(t, m, "libc")
	}
}

func TestProcSymbol_Self(t *testing.T) {
	lib := openLibc(t)

	resolver, err := NewProcSymbol(os.Getpid(), nil)
	require.NoError(t, err)
	defer resolver.Cleanup()

	require.NotEmpty(t, resolver.Modules())
	want := lib.Lookup("getpid")
	require.NotZero(t, want)
	assert.Equal(t, want, resolver.Lookup("getpid"))

	resolver.Refresh()
	assert.Equal(t, want, resolver.Lookup("getpid"))
}

func TestProcSymbol_ProcessExit(t *testing.T) {
	cmd := exec.Command("sleep", "30")
	if err := cmd.Start(); err != nil {
		t.Skipf("cannot start sleep: %v", err)
	}
	t.Cleanup(func() { cmd.Process.Kill() })

	resolver, err := NewProcSymbol(cmd.Process.Pid, nil)
	require.NoError(t, err)
	defer resolver.Cleanup()

	modules := resolver.Modules()
	before := resolver.Lookup("getpid")

	require.NoError(t, cmd.Process.Kill())
	_ = cmd.Wait()

	for range 3 {
		assert.Equal(t, before, resolver.Lookup("getpid"))
	}
	assert.True(t, resolver.stats.Gone())
	assert.Equal(t, modules, resolver.Modules())
}

func TestProcSymbol_VDSO(t *testing.T) {
	if _, err := vdsoImage(); err != nil {
		t.Skipf("vDSO not available: %v", err)
	}
	resolver, err := NewProcSymbol(os.Getpid(), &SymbolOptions{Modules: []string{"[vdso]"}})
	require.NoError(t, err)
	defer resolver.Cleanup()

	sym, ok := resolver.LookupSymbol("__vdso_clock_gettime")
	if !ok {
		t.Skip("vDSO does not export __vdso_clock_gettime on this platform")
	}
	assert.Equal(t, "[vdso]", sym.Module)
	assert.NotZero(t, sym.Addr)
}

func TestNewProcSymbol_UnknownPid(t *testing.T) {
	_, err := NewProcSymbol(1<<30, nil)
	assert.Error(t, err)
}

func TestParseDemangleType(t *testing.T) {
	testcases := []struct {
		in   string
		want DemangleType
		err  bool
	}{
		{"full", DemangleFull, false},
		{"SIMPLIFIED", DemangleSimplified, false},
		{"", DemangleNone, false},
		{"pretty", "", true},
	}
	for _, tt := range testcases {
		got, err := ParseDemangleType(tt.in)
		if tt.err {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want == DemangleNone, got.ToOptions() == nil)
	}
}

func Test_alignDown(t *testing.T) {
	ps := pageSize()
	require.NotZero(t, ps)
	assert.Equal(t, uint64(0), alignDown(ps-1))
	assert.Equal(t, ps, alignDown(ps+1))
	assert.Equal(t, 3*ps, alignDown(3*ps))
}
