package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/wcap/pkg/registry"
)

func sampleRegistry() *registry.Registry {
	return &registry.Registry{
		Package: "vk",
		Prefix:  "vk",
		Groups: []registry.Group{
			{
				Name:  "VK_KHR_swapchain",
				Type:  "KhrSwapchain",
				Scope: "device",
				Commands: []registry.Command{
					{
						Name:   "vkCreateSwapchainKHR",
						Result: "Result",
						Params: []registry.Param{
							{Name: "device", Type: "Device"},
							{Name: "pCreateInfo", Type: "unsafe.Pointer"},
							{Name: "pSwapchain", Type: "*SwapchainKHR"},
						},
					},
					{
						Name: "vkDestroySwapchainKHR",
						Params: []registry.Param{
							{Name: "device", Type: "Device"},
							{Name: "type", Type: "SwapchainKHR"},
						},
					},
				},
			},
		},
	}
}

var blanks = regexp.MustCompile(`[ \t]+`)

// mustContain ignores differences in runs of blanks, which gofmt uses to
// align fields and comments.
func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(blanks.ReplaceAllString(output, " "), blanks.ReplaceAllString(want, " ")) {
		t.Errorf("output does not contain %q\n%s", want, output)
	}
}

func TestGenerate(t *testing.T) {
	code, err := Generate(sampleRegistry())
	require.NoError(t, err)
	output := string(code)

	mustContain(t, output, "// Code generated by wcap-gen. DO NOT EDIT.")
	mustContain(t, output, `const KhrSwapchainName = "VK_KHR_swapchain"`)
	mustContain(t, output, `"unsafe"`)
	mustContain(t, output, "createSwapchainKHR wcap.EntryPoint[func(device Device, pCreateInfo unsafe.Pointer, pSwapchain *SwapchainKHR) Result]")
	mustContain(t, output, "destroySwapchainKHR wcap.EntryPoint[func(device Device, type_ SwapchainKHR)]")
	mustContain(t, output, `wcap.Bind(s, &t.destroySwapchainKHR, "vkDestroySwapchainKHR")`)
	mustContain(t, output, "func (t *KhrSwapchain) Scope() wcap.Scope { return wcap.ScopeDevice }")
	mustContain(t, output, "return t.createSwapchainKHR.Func()(device, pCreateInfo, pSwapchain)")
	mustContain(t, output, "\tt.destroySwapchainKHR.Func()(device, type_)")

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "tables_gen.go", code, 0)
	require.NoError(t, err, "generated code does not parse")
	assert.Equal(t, "vk", f.Name.Name)

	var funcs []string
	ast.Inspect(f, func(n ast.Node) bool {
		if fd, ok := n.(*ast.FuncDecl); ok {
			funcs = append(funcs, fd.Name.Name)
		}
		return true
	})
	assert.ElementsMatch(t, []string{
		"LoadKhrSwapchain", "Name", "Scope", "Entries",
		"CreateSwapchainKHR", "DestroySwapchainKHR",
	}, funcs)
}

func TestGenerate_Errors(t *testing.T) {
	t.Run("TEST FAILURE: reserved method", func(t *testing.T) {
		reg := sampleRegistry()
		reg.Groups[0].Commands[1].Name = "vkName"
		_, err := Generate(reg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reserved")
	})

	t.Run("TEST FAILURE: invalid registry", func(t *testing.T) {
		reg := sampleRegistry()
		reg.Groups[0].Scope = "queue"
		_, err := Generate(reg)
		assert.ErrorIs(t, err, registry.ErrInvalid)
	})
}

func TestGenerate_VulkanRegistry(t *testing.T) {
	reg, err := registry.Load(filepath.Join("..", "..", "pkg", "vk", "registry.yaml"))
	require.NoError(t, err)
	code, err := Generate(reg)
	require.NoError(t, err)

	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "pkg", "vk", "tables_gen.go"))
	require.NoError(t, err)
	for _, g := range reg.Groups {
		mustContain(t, string(code), "func Load"+g.Type+"(")
		for _, c := range g.Commands {
			bind := "wcap.Bind(s, &t." + registry.FieldName(reg.Prefix, c.Name) + `, "` + c.Name + `")`
			mustContain(t, string(code), bind)
			// tables_gen.go is stale when this fails; run go generate ./pkg/vk
			mustContain(t, string(checkedIn), bind)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	regPath := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(regPath, []byte(`
package: libc
prefix: ""
groups:
  - name: libc
    type: Libc
    scope: global
    commands:
      - name: strlen
        result: uint64
        params:
          - {name: s, type: string}
`), 0o644))

	out := filepath.Join(dir, "libc_gen.go")
	require.NoError(t, run(regPath, out))
	code, err := os.ReadFile(out)
	require.NoError(t, err)
	mustContain(t, string(code), "func (t *Libc) Strlen(s string) uint64 {")

	assert.Error(t, run(filepath.Join(dir, "missing.yaml"), out))
}
