// Package registry describes capability tables in YAML: groups of entry
// points, each group becoming one table. The same description drives the
// table generator and the probe tool.
package registry

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vietanhduong/wcap"
	"gopkg.in/yaml.v3"
)

type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Command is one entry point. Result is the Go result type, empty for none.
type Command struct {
	Name   string  `yaml:"name"`
	Result string  `yaml:"result,omitempty"`
	Params []Param `yaml:"params,omitempty"`
}

// Group becomes one table. Name is the extension or version name; Type is
// the Go type name of the generated table.
type Group struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Scope    string    `yaml:"scope"`
	Commands []Command `yaml:"commands"`
}

type Registry struct {
	Package string  `yaml:"package"`
	Prefix  string  `yaml:"prefix"`
	Groups  []Group `yaml:"groups"`
}

var ErrInvalid = errors.New("invalid registry")

// Parse parses and validates a registry from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

func (r *Registry) Validate() error {
	var errs []error
	if r.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}
	if len(r.Groups) == 0 {
		errs = append(errs, errors.New("no groups"))
	}
	names := make(map[string]struct{})
	types := make(map[string]struct{})
	for i, g := range r.Groups {
		where := fmt.Sprintf("groups[%d]", i)
		if g.Name != "" {
			where = g.Name
		}
		if g.Name == "" || g.Type == "" {
			errs = append(errs, fmt.Errorf("%s: name and type are required", where))
		}
		if _, dup := names[g.Name]; dup && g.Name != "" {
			errs = append(errs, fmt.Errorf("%s: duplicate group name", where))
		}
		names[g.Name] = struct{}{}
		if _, dup := types[g.Type]; dup && g.Type != "" {
			errs = append(errs, fmt.Errorf("%s: duplicate type %s", where, g.Type))
		}
		types[g.Type] = struct{}{}
		if _, err := wcap.ParseScope(g.Scope); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
		if len(g.Commands) == 0 {
			errs = append(errs, fmt.Errorf("%s: no commands", where))
		}
		cmds := make(map[string]struct{})
		for _, c := range g.Commands {
			if err := r.validateCommand(c); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
			if _, dup := cmds[c.Name]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate command %s", where, c.Name))
			}
			cmds[c.Name] = struct{}{}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (r *Registry) validateCommand(c Command) error {
	if c.Name == "" {
		return errors.New("command name is required")
	}
	if !strings.HasPrefix(c.Name, r.Prefix) || c.Name == r.Prefix {
		return fmt.Errorf("command %s does not start with prefix %q", c.Name, r.Prefix)
	}
	for i, p := range c.Params {
		if p.Name == "" || p.Type == "" {
			return fmt.Errorf("command %s: params[%d]: name and type are required", c.Name, i)
		}
	}
	return nil
}

func (r *Registry) Group(name string) (*Group, bool) {
	for i := range r.Groups {
		if r.Groups[i].Name == name {
			return &r.Groups[i], true
		}
	}
	return nil, false
}

// Names returns the entry point names of g in declaration order.
func (g *Group) Names() []string {
	names := make([]string, 0, len(g.Commands))
	for _, c := range g.Commands {
		names = append(names, c.Name)
	}
	return names
}

func (g *Group) TableScope() wcap.Scope {
	s, _ := wcap.ParseScope(g.Scope)
	return s
}
