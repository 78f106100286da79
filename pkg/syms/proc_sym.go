package syms

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
	"github.com/vietanhduong/wcap/pkg/proc"
	"golang.org/x/exp/maps"
	"golang.org/x/sys/unix"
)

// ProcSymbol resolves names against the objects mapped into a process, in
// the order the kernel lists the mappings. The first object that defines a
// name wins, which matches a global dlsym for the common case.
//
// Only STT_FUNC symbols are indexed. GNU indirect functions (STT_GNU_IFUNC,
// such as strlen or memcpy in glibc) are selected by the dynamic loader at
// run time, so they are never found here even when dlsym returns them.
type ProcSymbol struct {
	pid    int
	opts   *SymbolOptions
	stats  *proc.Stat
	rootfd int

	mu      sync.Mutex
	modules map[proc.File]*ProcModule
	order   []*ProcModule
}

func NewProcSymbol(pid int, opts *SymbolOptions) (*ProcSymbol, error) {
	if opts == nil {
		opts = defaultSymbolOpts
	}
	this := &ProcSymbol{
		pid:     pid,
		opts:    opts,
		rootfd:  -1,
		modules: make(map[proc.File]*ProcModule),
	}
	var err error
	if this.stats, err = proc.ProcStat(pid); err != nil {
		return nil, fmt.Errorf("proc stats: %w", err)
	}
	root := proc.HostProcRoot(pid)
	if this.rootfd, err = unix.Open(root, unix.O_PATH|unix.O_CLOEXEC, 0); err != nil {
		log.WithFields(logrus.Fields{logfields.File: root, logfields.PID: pid}).Tracef("Failed to open: %v", err)
		this.rootfd = -1
	}
	if err = this.load(); err != nil {
		this.Cleanup()
		return nil, fmt.Errorf("load: %w", err)
	}
	return this, nil
}

func (s *ProcSymbol) Pid() int { return s.pid }

// Lookup implements the resolver contract: 0 when no mapped object
// defines name.
func (s *ProcSymbol) Lookup(name string) uintptr {
	sym, ok := s.LookupSymbol(name)
	if !ok {
		return 0
	}
	return uintptr(sym.Addr)
}

func (s *ProcSymbol) LookupSymbol(name string) (Symbol, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats.IsStale() {
		s.refreshLocked()
	}
	for _, m := range s.order {
		if addr, ok := m.Lookup(name); ok {
			return Symbol{Name: name, Addr: addr, Module: m.Name()}, true
		}
	}
	return Symbol{}, false
}

// Modules returns the paths of the objects that lookups consider.
func (s *ProcSymbol) Modules() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.order))
	for _, m := range s.order {
		names = append(names, m.Name())
	}
	return names
}

func (s *ProcSymbol) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
}

func (s *ProcSymbol) refreshLocked() {
	s.stats.Reset()
	if s.stats.Gone() {
		log.WithField(logfields.PID, s.pid).Warn("Process exited, keeping the last loaded modules")
		return
	}
	if err := s.load(); err != nil {
		log.WithField(logfields.PID, s.pid).Errorf("Failed to refresh symbol: %v", err)
	}
}

func (s *ProcSymbol) load() error {
	procmaps, err := proc.ParseProcMaps(s.pid)
	if err != nil {
		return fmt.Errorf("parse proc map: %w", err)
	}
	keeps := make(map[proc.File]struct{})
	s.order = s.order[:0]
	for _, pm := range procmaps {
		if !s.wanted(pm.Pathname) {
			continue
		}
		f := pm.File()
		if _, seen := keeps[f]; seen {
			continue
		}
		keeps[f] = struct{}{}
		m, ok := s.modules[f]
		if !ok {
			m = s.createModule(pm)
			s.modules[f] = m
		}
		s.order = append(s.order, m)
	}

	for _, f := range maps.Keys(s.modules) {
		if _, keep := keeps[f]; !keep {
			s.modules[f].Cleanup()
			delete(s.modules, f)
		}
	}
	return nil
}

func (s *ProcSymbol) wanted(path string) bool {
	if len(s.opts.Modules) == 0 {
		return true
	}
	for _, want := range s.opts.Modules {
		if strings.Contains(path, want) {
			return true
		}
	}
	return false
}

func (s *ProcSymbol) createModule(m *proc.Map) *ProcModule {
	path := newProcPath(m.Pathname, s.pid, s.rootfd, m.InMem)
	return NewProcModule(m.Pathname, m, path, s.opts)
}

func (s *ProcSymbol) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.modules {
		m.Cleanup()
	}
	clear(s.modules)
	s.order = nil
	if s.rootfd >= 0 {
		unix.Close(s.rootfd)
		s.rootfd = -1
	}
}
