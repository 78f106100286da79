package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/pkg/registry"
)

const testRegistry = `
package: libc
prefix: ""
groups:
  - name: string
    type: StringCommands
    scope: global
    commands:
      - name: strlen
        result: uintptr
        params:
          - {name: s, type: string}
      - name: strnotthere
        result: uintptr
  - name: math
    type: MathCommands
    scope: global
    commands:
      - name: abs
        result: int32
        params:
          - {name: n, type: int32}
`

func TestProbe(t *testing.T) {
	reg, err := registry.Parse([]byte(testRegistry))
	require.NoError(t, err)

	r := wcap.StaticResolver{"strlen": 0x1000, "abs": 0x2000}
	tables, err := probe(context.Background(), reg, r)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	t.Run("TEST SUCCESS: full report", func(t *testing.T) {
		want := []tableReport{
			{Name: "string", Scope: "global", Supported: 1, Total: 2, Entries: []entryReport{
				{Name: "strlen", Addr: "0x1000", Supported: true},
				{Name: "strnotthere"},
			}},
			{Name: "math", Scope: "global", Supported: 1, Total: 1, Entries: []entryReport{
				{Name: "abs", Addr: "0x2000", Supported: true},
			}},
		}
		if diff := cmp.Diff(want, buildReports(tables, false, false)); diff != "" {
			t.Errorf("buildReports() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("TEST SUCCESS: only missing", func(t *testing.T) {
		want := []tableReport{
			{Name: "string", Scope: "global", Supported: 1, Total: 2, Entries: []entryReport{
				{Name: "strnotthere"},
			}},
			{Name: "math", Scope: "global", Supported: 1, Total: 1},
		}
		if diff := cmp.Diff(want, buildReports(tables, true, false)); diff != "" {
			t.Errorf("buildReports() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("TEST SUCCESS: global resolver marks scoped tables", func(t *testing.T) {
		scoped := []wcap.Table{
			wcap.LoadRaw("inst", wcap.ScopeInstance, []string{"vkDestroyInstance"}, r),
			wcap.LoadRaw("glob", wcap.ScopeGlobal, []string{"vkCreateInstance"}, r),
		}
		got := buildReports(scoped, false, true)
		require.Len(t, got, 2)
		assert.Equal(t, "instance", got[0].Requires)
		assert.Empty(t, got[1].Requires)

		var buf bytes.Buffer
		require.NoError(t, writeReports(&buf, outputText, got))
		assert.Regexp(t, `vkDestroyInstance\s+needs instance`, buf.String())
		assert.Regexp(t, `vkCreateInstance\s+missing`, buf.String())
	})

	t.Run("TEST FAILURE: context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := probe(ctx, reg, r)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWriteReports(t *testing.T) {
	reports := []tableReport{
		{Name: "string", Scope: "global", Supported: 1, Total: 2, Entries: []entryReport{
			{Name: "strlen", Addr: "0x1000", Supported: true},
			{Name: "strnotthere"},
		}},
	}

	t.Run("TEST SUCCESS: text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReports(&buf, outputText, reports))
		out := buf.String()
		assert.Contains(t, out, "string (global)")
		assert.Contains(t, out, "1/2")
		assert.Regexp(t, `strlen\s+0x1000`, out)
		assert.Regexp(t, `strnotthere\s+missing`, out)
	})

	t.Run("TEST SUCCESS: json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReports(&buf, outputJSON, reports))
		var got []tableReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		if diff := cmp.Diff(reports, got); diff != "" {
			t.Errorf("json report mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCommand(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("libc.so.6 is linux only")
	}
	path := filepath.Join(t.TempDir(), "libc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRegistry), 0o644))

	t.Run("TEST SUCCESS: dlsym source", func(t *testing.T) {
		cmd := newCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--registry", path, "--source", "dlsym", "--library", "libc.so.6", "--output", "json", "--cache-size", "8"})
		if err := cmd.Execute(); err != nil {
			t.Skipf("libc.so.6 is not loadable: %v", err)
		}

		var got []tableReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Supported)
		assert.Equal(t, 1, got[1].Supported)
		assert.Equal(t, "strnotthere", got[0].Entries[1].Name)
		assert.False(t, got[0].Entries[1].Supported)
	})

	t.Run("TEST FAILURE: unknown source", func(t *testing.T) {
		cmd := newCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--registry", path, "--source", "magic"})
		assert.ErrorContains(t, cmd.Execute(), "invalid --source")
	})

	t.Run("TEST FAILURE: missing registry", func(t *testing.T) {
		cmd := newCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--registry", filepath.Join(t.TempDir(), "nope.yaml"), "--source", "dlsym"})
		assert.Error(t, cmd.Execute())
	})
}

func TestRunProbe_Proc(t *testing.T) {
	cfg := &probeConfig{
		Registry: filepath.Join(t.TempDir(), "self.yaml"),
		Source:   sourceProc,
		Pid:      os.Getpid(),
		Output:   outputText,
	}
	require.NoError(t, os.WriteFile(cfg.Registry, []byte(`
package: self
groups:
  - name: runtime
    type: RuntimeCommands
    scope: global
    commands:
      - name: runtime.main
`), 0o644))

	reports, err := runProbe(context.Background(), cfg, logrus.New())
	if err != nil {
		t.Skipf("process symbols unavailable: %v", err)
	}
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Total)
}
