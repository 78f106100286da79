package syms

import (
	"fmt"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

type SymbolTable interface {
	Lookup(name string) (uint64, bool)
	Size() int
}

type SymbolOptions struct {
	DemangleType DemangleType
	UseDebugFile bool
	// Modules restricts lookups to objects whose path contains one of
	// these strings. Empty means every mapped object.
	Modules []string
}

type DemangleType string

const (
	DemangleNone       DemangleType = "NONE"
	DemangleSimplified DemangleType = "SIMPLIFIED"
	DemangleTemplates  DemangleType = "TEMPLATES"
	DemangleFull       DemangleType = "FULL"
)

var defaultSymbolOpts = &SymbolOptions{
	DemangleType: DemangleNone,
	UseDebugFile: false,
}

func ParseDemangleType(s string) (DemangleType, error) {
	switch dt := DemangleType(strings.ToUpper(s)); dt {
	case DemangleNone, DemangleSimplified, DemangleTemplates, DemangleFull:
		return dt, nil
	case "":
		return DemangleNone, nil
	}
	return "", fmt.Errorf("unknown demangle type %q", s)
}

func (dt DemangleType) ToOptions() []demangle.Option {
	switch dt {
	case DemangleNone, "":
		return nil
	case DemangleSimplified:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	case DemangleTemplates:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	default:
		return []demangle.Option{demangle.NoClones}
	}
}

type ProcModuleType string

const (
	UNKNOWN ProcModuleType = "UNKNOWN"
	EXEC    ProcModuleType = "EXEC"
	SO      ProcModuleType = "SO"
	VDSO    ProcModuleType = "VDSO"
)

// Symbol is a resolved entry point: its runtime address in the process and
// the object that exports it.
type Symbol struct {
	Name   string `json:"name,omitempty"`
	Addr   uint64 `json:"addr,omitempty"`
	Module string `json:"module,omitempty"`
}
