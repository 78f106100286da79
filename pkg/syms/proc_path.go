package syms

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/vietanhduong/wcap/pkg/proc"
	"golang.org/x/sys/unix"
)

// procPath locates an object as the target process sees it. When the
// process root can be opened the object is reached through a descriptor,
// so objects in other mount namespaces stay readable.
type procPath struct {
	path         string
	procRootPath string
	fd           int
}

func newProcPath(path string, pid, rootfd int, inMem bool) *procPath {
	this := &procPath{fd: -1}
	if inMem || rootfd < 0 {
		this.path = path
		this.procRootPath = path
		if !inMem {
			this.procRootPath = proc.HostProcPath(fmt.Sprintf("%d/root", pid), path)
			this.path = this.procRootPath
		}
		return this
	}

	this.procRootPath = proc.HostProcPath(fmt.Sprintf("%d/root", pid), path)
	trimmedPath := strings.TrimPrefix(filepath.Join(path), "/")
	var err error
	this.fd, err = unix.Openat(rootfd, trimmedPath, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err == nil {
		this.path = proc.HostProcPath(fmt.Sprintf("self/fd/%d", this.fd))
		runtime.SetFinalizer(this, func(obj *procPath) { obj.Close() })
	} else {
		this.fd = -1
		this.path = this.procRootPath
	}
	return this
}

func (p *procPath) GetPath() string {
	if p.path == p.procRootPath || unix.Access(p.procRootPath, unix.F_OK) != nil {
		return p.path
	}
	return p.GetRootPath()
}

func (p *procPath) GetRootPath() string { return p.procRootPath }

func (p *procPath) Close() {
	if p.fd >= 0 {
		syscall.Close(p.fd)
		p.fd = -1
	}
}
