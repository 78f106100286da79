package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietanhduong/wcap"
)

const sampleYAML = `
package: vk
prefix: vk
groups:
  - name: VK_KHR_draw_indirect_count
    type: KhrDrawIndirectCount
    scope: device
    commands:
      - name: vkCmdDrawIndirectCountKHR
        params:
          - {name: commandBuffer, type: CommandBuffer}
          - {name: buffer, type: Buffer}
          - {name: offset, type: DeviceSize}
      - name: vkCmdDrawIndexedIndirectCountKHR
        params:
          - {name: commandBuffer, type: CommandBuffer}
  - name: VK_VERSION_1_0_global
    type: GlobalCommands
    scope: global
    commands:
      - name: vkEnumerateInstanceVersion
        result: Result
        params:
          - {name: pApiVersion, type: "*uint32"}
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "vk", r.Package)
	require.Len(t, r.Groups, 2)

	g, ok := r.Group("VK_KHR_draw_indirect_count")
	require.True(t, ok)
	assert.Equal(t, wcap.ScopeDevice, g.TableScope())
	want := []string{"vkCmdDrawIndirectCountKHR", "vkCmdDrawIndexedIndirectCountKHR"}
	if diff := cmp.Diff(want, g.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Param{Name: "offset", Type: "DeviceSize"}, g.Commands[0].Params[2])

	global, ok := r.Group("VK_VERSION_1_0_global")
	require.True(t, ok)
	assert.Equal(t, "Result", global.Commands[0].Result)

	_, ok = r.Group("VK_KHR_missing")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cmd := Command{Name: "vkFoo"}
	testcases := []struct {
		name string
		reg  Registry
		msg  string
	}{
		{
			name: "TEST FAILURE: no package",
			reg:  Registry{Prefix: "vk", Groups: []Group{{Name: "A", Type: "A", Scope: "device", Commands: []Command{cmd}}}},
			msg:  "package is required",
		},
		{
			name: "TEST FAILURE: no groups",
			reg:  Registry{Package: "vk", Prefix: "vk"},
			msg:  "no groups",
		},
		{
			name: "TEST FAILURE: unknown scope",
			reg:  Registry{Package: "vk", Prefix: "vk", Groups: []Group{{Name: "A", Type: "A", Scope: "queue", Commands: []Command{cmd}}}},
			msg:  `unknown scope "queue"`,
		},
		{
			name: "TEST FAILURE: duplicate group",
			reg: Registry{Package: "vk", Prefix: "vk", Groups: []Group{
				{Name: "A", Type: "A", Scope: "device", Commands: []Command{cmd}},
				{Name: "A", Type: "B", Scope: "device", Commands: []Command{cmd}},
			}},
			msg: "duplicate group name",
		},
		{
			name: "TEST FAILURE: duplicate command",
			reg:  Registry{Package: "vk", Prefix: "vk", Groups: []Group{{Name: "A", Type: "A", Scope: "device", Commands: []Command{cmd, cmd}}}},
			msg:  "duplicate command vkFoo",
		},
		{
			name: "TEST FAILURE: prefix mismatch",
			reg:  Registry{Package: "vk", Prefix: "vk", Groups: []Group{{Name: "A", Type: "A", Scope: "device", Commands: []Command{{Name: "glFoo"}}}}},
			msg:  `does not start with prefix "vk"`,
		},
		{
			name: "TEST FAILURE: unnamed param",
			reg: Registry{Package: "vk", Prefix: "vk", Groups: []Group{{Name: "A", Type: "A", Scope: "device", Commands: []Command{
				{Name: "vkFoo", Params: []Param{{Type: "Device"}}},
			}}}},
			msg: "params[0]: name and type are required",
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	r, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, r.Groups, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("groups: ["))
	assert.Error(t, err)
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "CreateInstance", MethodName("vk", "vkCreateInstance"))
	assert.Equal(t, "createInstance", FieldName("vk", "vkCreateInstance"))
	assert.Equal(t, "CmdDrawIndirectCountKHR", MethodName("vk", "vkCmdDrawIndirectCountKHR"))
	assert.Equal(t, "strlen", FieldName("", "strlen"))
	assert.Equal(t, "Strlen", MethodName("", "strlen"))
	assert.Equal(t, "type_", ParamName("type"))
	assert.Equal(t, "pCreateInfo", ParamName("pCreateInfo"))
	assert.Equal(t, "", FieldName("vk", ""))
}
