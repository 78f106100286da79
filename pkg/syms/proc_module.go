package syms

import (
	delf "debug/elf"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tklauser/go-sysconf"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
	"github.com/vietanhduong/wcap/pkg/proc"
	"github.com/vietanhduong/wcap/pkg/syms/elf"
	"github.com/vietanhduong/wcap/pkg/utils"
)

var pageSize = sync.OnceValue(func() uint64 {
	sz, err := sysconf.Sysconf(sysconf.SC_PAGESIZE)
	if err != nil || sz <= 0 {
		log.WithError(err).Debug("Failed to read page size, assume 4KiB")
		return 4096
	}
	return uint64(sz)
})

func alignDown(v uint64) uint64 { return v &^ (pageSize() - 1) }

// ProcModule is one object mapped into a process. Its symbol table is read
// on first lookup.
type ProcModule struct {
	name    string
	typ     ProcModuleType
	path    *procPath
	opts    *SymbolOptions
	procmap *proc.Map
	log     logrus.FieldLogger

	once  sync.Once
	table SymbolTable
	base  uint64
}

func NewProcModule(name string, procmap *proc.Map, path *procPath, opts *SymbolOptions) *ProcModule {
	if opts == nil {
		opts = defaultSymbolOpts
	}
	this := &ProcModule{
		name:    name,
		path:    path,
		opts:    opts,
		procmap: procmap,
		typ:     getElfType(name, path),
		table:   &emptyTable{},
	}
	this.log = log.WithFields(logrus.Fields{
		logfields.ProcModule:     name,
		logfields.ProcModuleType: this.typ,
	})
	return this
}

func (m *ProcModule) Name() string { return m.name }

func (m *ProcModule) Type() ProcModuleType { return m.typ }

func (m *ProcModule) Cleanup() {
	m.path.Close()
}

// Lookup returns the runtime address of name inside this module.
func (m *ProcModule) Lookup(name string) (uint64, bool) {
	m.once.Do(m.load)
	off, ok := m.table.Lookup(name)
	if !ok {
		return 0, false
	}
	return m.base + off, true
}

func (m *ProcModule) findbase(mf *elf.File) bool {
	if mf.FileHeader.Type == delf.ET_EXEC {
		m.base = 0
		return true
	}
	for _, prog := range mf.Progs {
		if prog.Type == delf.PT_LOAD && (prog.Flags&delf.PF_X != 0) {
			if m.procmap.FileOffset == alignDown(prog.Off) {
				m.base = m.procmap.StartAddr - alignDown(prog.Vaddr)
				return true
			}
		}
	}
	return false
}

func (m *ProcModule) load() {
	defer func() {
		if utils.IsNil(m.table) {
			m.table = &emptyTable{}
		}
		if m.typ != UNKNOWN {
			m.log.WithFields(logrus.Fields{
				logfields.ProcModulePath:      m.path.GetPath(),
				logfields.ProcModuleTableSize: m.table.Size(),
			}).Debugf("Loaded symbol table!")
		}
	}()

	mf, err := m.openElf()
	if err != nil {
		m.log.Errorf("Failed to open elf file: %v", err)
		return
	}
	if mf == nil {
		return
	}
	defer mf.Close()

	if !m.findbase(mf) {
		m.log.Warnf("Unable to determine base of elf path %s", mf.FilePath())
		return
	}

	opts := &elf.SymbolOptions{DemangleOpts: m.opts.DemangleType.ToOptions()}
	if m.opts.UseDebugFile && m.typ != VDSO {
		if debugfile := m.findDebugFile(mf); debugfile != "" {
			debugmf, err := elf.Open(filepath.Join(m.path.GetRootPath(), debugfile))
			if err == nil {
				defer debugmf.Close()
				if tbl := createSymbolTable(debugmf, opts); tbl.Size() > 0 {
					m.table = tbl
					return
				}
			} else {
				m.log.Debugf("Failed to open debug file %s: %v", debugfile, err)
			}
		}
	}
	m.table = createSymbolTable(mf, opts)
}

func (m *ProcModule) openElf() (*elf.File, error) {
	switch m.typ {
	case SO, EXEC:
		return elf.Open(m.path.GetPath())
	case VDSO:
		image, err := vdsoImage()
		if err != nil {
			return nil, fmt.Errorf("vdso image: %w", err)
		}
		return elf.NewFile(m.name, image)
	}
	return nil, nil
}

func (m *ProcModule) findDebugFile(mf *elf.File) string {
	id, _ := mf.BuildId()
	if debugfile := m.findDebugFileViaBuildId(id); debugfile != "" {
		return debugfile
	}
	return m.findDebugFileViaLink(mf)
}

func (m *ProcModule) findDebugFileViaBuildId(id elf.BuildId) string {
	if len(id.Id) < 3 || !id.GNU() {
		return ""
	}
	debugfile := fmt.Sprintf("/usr/lib/debug/.build-id/%s/%s.debug", id.Id[:2], id.Id[2:])
	if _, err := os.Stat(filepath.Join(m.path.GetRootPath(), debugfile)); err == nil {
		return debugfile
	}
	return ""
}

func (m *ProcModule) findDebugFileViaLink(mf *elf.File) string {
	data, err := mf.SectionData(".gnu_debuglink")
	if err != nil || len(data) < 6 {
		return ""
	}
	debuglink := cstring(data)

	dir := filepath.Dir(m.name)
	paths := []string{
		// /usr/bin/ls.debug
		filepath.Join(dir, debuglink),
		// /usr/bin/.debug/ls.debug
		filepath.Join(dir, ".debug", debuglink),
		// /usr/lib/debug/usr/bin/ls.debug
		filepath.Join("/usr/lib/debug", dir, debuglink),
	}
	for _, p := range paths {
		if _, err = os.Stat(filepath.Join(m.path.GetRootPath(), p)); err == nil {
			return p
		}
	}
	return ""
}

func createSymbolTable(mf *elf.File, opts *elf.SymbolOptions) SymbolTable {
	symtbl, err := mf.NewSymbolTable(opts)
	if err != nil {
		log.WithError(err).Debugf("Failed to create Symbol Table (ELF: %s)", mf.FilePath())
		return &emptyTable{}
	}
	return symtbl
}

func getElfType(name string, path *procPath) ProcModuleType {
	if proc.IsVDSO(name) {
		return VDSO
	}
	mf, _ := elf.Open(path.GetPath())
	if mf != nil {
		defer mf.Close()
		switch mf.Type {
		case delf.ET_EXEC:
			return EXEC
		case delf.ET_DYN:
			return SO
		}
	}
	return UNKNOWN
}

func cstring(b []byte) string {
	var i int
	for ; i < len(b); i++ {
		if b[i] == 0 {
			break
		}
	}
	return string(b[:i])
}
