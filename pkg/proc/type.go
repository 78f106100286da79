package proc

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"
)

// Map is one executable mapping of a process.
type Map struct {
	Pathname   string
	StartAddr  uint64
	EndAddr    uint64
	FileOffset uint64
	DevMajor   uint32
	DevMinor   uint32
	Inode      uint64
	InMem      bool
}

func (m *Map) String() string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s 0x%016x-0x%016x 0x%016x %x:%x %d %t",
		m.Pathname,
		m.StartAddr,
		m.EndAddr,
		m.FileOffset,
		m.DevMajor,
		m.DevMinor,
		m.Inode,
		m.InMem)
}

func (m *Map) Contains(addr uint64) bool { return addr >= m.StartAddr && addr < m.EndAddr }

// File identifies the object backing a mapping. Two mappings of the same
// library share a File.
type File struct {
	Dev   uint64
	Inode uint64
	Path  string
}

func (m *Map) File() File {
	return File{
		Inode: m.Inode,
		Path:  m.Pathname,
		Dev:   unix.Mkdev(m.DevMajor, m.DevMinor),
	}
}

type Pid int

func (p Pid) String() string { return strconv.FormatInt(int64(p), 10) }

// Self is the pid of the calling process.
func Self() Pid { return Pid(unix.Getpid()) }
