package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(fileTmpl + groupTmpl))

func renderTemplate(b *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

const fileTmpl = `{{define "file"}}// Code generated by wcap-gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/vietanhduong/wcap"
)
{{range .Groups}}{{template "group" .}}{{end}}{{end}}`

const groupTmpl = `{{define "group"}}
const {{.Type}}Name = {{quote .Name}}

// {{.Type}} is the capability table of {{.Name}}.
type {{.Type}} struct {
{{- range .Commands}}
	{{.Field}} wcap.EntryPoint[func({{.Params}}){{.ResultDecl}}]
{{- end}}
}

var _ wcap.Table = (*{{.Type}})(nil)

// Load{{.Type}} resolves the entry points of {{.Name}} through r.
// Entry points r does not provide panic when called.
func Load{{.Type}}(r wcap.Resolver, opts ...wcap.LoadOption) *{{.Type}} {
	s := wcap.NewSession({{.Type}}Name, r, opts...)
	defer s.Done()
	t := &{{.Type}}{}
{{- range .Commands}}
	wcap.Bind(s, &t.{{.Field}}, {{quote .Name}})
{{- end}}
	return t
}

func (t *{{.Type}}) Name() string { return {{.Type}}Name }

func (t *{{.Type}}) Scope() wcap.Scope { return wcap.{{.Scope}} }

func (t *{{.Type}}) Entries() []wcap.Entry {
	return []wcap.Entry{
{{- range .Commands}}
		t.{{.Field}}.Entry(),
{{- end}}
	}
}
{{range .Commands}}
func (t *{{$.Type}}) {{.Method}}({{.Params}}){{.ResultDecl}} {
	{{if .Result}}return {{end}}t.{{.Field}}.Func()({{.Args}})
}
{{end}}{{end}}`
