package proc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Stat tracks the executable of a process so that callers can tell when
// the pid was reused or the process called exec.
type Stat struct {
	pid   int
	exe   string
	inode uint64
	gone  bool
}

func ProcStat(pid int) (*Stat, error) {
	s := &Stat{pid: pid, exe: HostProcPath(fmt.Sprintf("%d/exe", pid))}
	var err error
	if s.inode, err = getinode(s.exe); err != nil {
		return nil, fmt.Errorf("get inode: %w", err)
	}
	return s, nil
}

func (s *Stat) Pid() int { return s.pid }

// Exe returns the path of the executable as seen by the process.
func (s *Stat) Exe() (string, error) {
	p, err := os.Readlink(s.exe)
	if err != nil {
		return "", fmt.Errorf("read link %s: %w", s.exe, err)
	}
	return p, nil
}

// IsStale reports whether the executable changed since the last Reset. The
// exit of the process is reported once; a gone process is never stale again.
func (s *Stat) IsStale() bool {
	if s.gone {
		return false
	}
	inode, err := getinode(s.exe)
	if err != nil {
		s.gone = true
		return true
	}
	return inode != s.inode
}

// Gone reports whether the process was found to have exited.
func (s *Stat) Gone() bool { return s.gone }

func (s *Stat) Reset() {
	inode, err := getinode(s.exe)
	if err != nil {
		s.gone = true
		return
	}
	s.inode = inode
}

func getinode(path string) (uint64, error) {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return 0, fmt.Errorf("unix stat %s: %w", path, err)
	}
	return stat.Ino, nil
}
