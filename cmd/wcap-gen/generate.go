package main

import (
	"fmt"
	"strings"

	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/pkg/registry"
	"golang.org/x/tools/imports"
)

type fileData struct {
	Package string
	Groups  []groupData
}

type groupData struct {
	Name     string
	Type     string
	Scope    string
	Commands []commandData
}

type commandData struct {
	Name       string
	Method     string
	Field      string
	Params     string
	Args       string
	Result     string
	ResultDecl string
}

// methods every table already has
var reserved = map[string]struct{}{"Name": {}, "Scope": {}, "Entries": {}}

var scopeConsts = map[wcap.Scope]string{
	wcap.ScopeGlobal:   "ScopeGlobal",
	wcap.ScopeInstance: "ScopeInstance",
	wcap.ScopeDevice:   "ScopeDevice",
}

// Generate renders reg into a formatted Go source file.
func Generate(reg *registry.Registry) ([]byte, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	data := fileData{Package: reg.Package}
	for _, g := range reg.Groups {
		gd, err := buildGroup(reg.Prefix, g)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Name, err)
		}
		data.Groups = append(data.Groups, gd)
	}

	var b strings.Builder
	if err := renderTemplate(&b, "file", data); err != nil {
		return nil, err
	}
	out, err := imports.Process("tables_gen.go", []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

func buildGroup(prefix string, g registry.Group) (groupData, error) {
	gd := groupData{Name: g.Name, Type: g.Type, Scope: scopeConsts[g.TableScope()]}
	methods := make(map[string]string)
	for _, c := range g.Commands {
		cd := commandData{
			Name:   c.Name,
			Method: registry.MethodName(prefix, c.Name),
			Field:  registry.FieldName(prefix, c.Name),
			Result: c.Result,
		}
		if _, ok := reserved[cd.Method]; ok {
			return gd, fmt.Errorf("command %s: method name %s is reserved", c.Name, cd.Method)
		}
		if other, ok := methods[cd.Method]; ok {
			return gd, fmt.Errorf("commands %s and %s map to the same method %s", other, c.Name, cd.Method)
		}
		methods[cd.Method] = c.Name
		if c.Result != "" {
			cd.ResultDecl = " " + c.Result
		}
		params := make([]string, 0, len(c.Params))
		args := make([]string, 0, len(c.Params))
		for _, p := range c.Params {
			name := registry.ParamName(p.Name)
			params = append(params, name+" "+p.Type)
			args = append(args, name)
		}
		cd.Params = strings.Join(params, ", ")
		cd.Args = strings.Join(args, ", ")
		gd.Commands = append(gd.Commands, cd)
	}
	return gd, nil
}
