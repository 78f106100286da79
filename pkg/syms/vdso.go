package syms

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vietanhduong/wcap/pkg/proc"
	"golang.org/x/sys/unix"
)

// The vDSO is the same image in every process, so it is read once from our
// own memory and reused for any pid.
var vdsoImage = sync.OnceValues(func() ([]byte, error) {
	return readVDSO(unix.Getpid())
})

func readVDSO(pid int) ([]byte, error) {
	maps, err := proc.ParseProcMaps(pid)
	if err != nil {
		return nil, fmt.Errorf("parse proc map pid %d: %w", pid, err)
	}
	for _, m := range maps {
		if !proc.IsVDSO(m.Pathname) {
			continue
		}
		image, err := readMem(pid, m)
		if err != nil {
			return nil, fmt.Errorf("read vDSO: %w", err)
		}
		log.Tracef("Loaded vDSO image (pid=%d, size=%d)", pid, len(image))
		return image, nil
	}
	return nil, fmt.Errorf("vDSO not mapped in pid %d", pid)
}

func readMem(pid int, m *proc.Map) ([]byte, error) {
	procmem := proc.HostProcPath(fmt.Sprintf("%d/mem", pid))
	mem, err := os.Open(procmem)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", procmem, err)
	}
	defer mem.Close()

	buf := make([]byte, m.EndAddr-m.StartAddr)
	if _, err = mem.ReadAt(buf, int64(m.StartAddr)); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read %s at %#x: %w", procmem, m.StartAddr, err)
	}
	return buf, nil
}
