// Package dl resolves entry points from shared libraries opened with the
// platform dynamic loader.
package dl

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

var log = logging.DefaultLogger.WithFields(logrus.Fields{logfields.LogSubsys: "dl"})

var (
	ErrUnsupportedPlatform = errors.New("dynamic loading is not supported on this platform")
	ErrNoLibrary           = errors.New("no library could be opened")
	ErrClosed              = errors.New("library is closed")
)

// Library is an open shared library. Lookup is safe for concurrent use.
// Addresses handed out stay valid until Close.
type Library struct {
	path string

	mu     sync.RWMutex
	handle uintptr
}

func (l *Library) Path() string { return l.path }

// Open returns the first of paths the loader can open. Paths are tried in
// order so that a versioned soname can be preferred over a dev symlink.
func Open(paths ...string) (*Library, error) {
	return OpenWithOptions(paths, defaultOpenOpts())
}

func OpenWithOptions(paths []string, opts *OpenOptions) (*Library, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: empty search list", ErrNoLibrary)
	}
	if opts == nil {
		opts = defaultOpenOpts()
	}
	var errs []string
	for _, p := range paths {
		h, err := open(p, opts.flags())
		if err != nil {
			log.WithField(logfields.Library, p).WithError(err).Debug("Failed to open library")
			errs = append(errs, err.Error())
			continue
		}
		log.WithField(logfields.Library, p).Debug("Library opened")
		return &Library{path: p, handle: h}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoLibrary, strings.Join(errs, "; "))
}

// Lookup returns the address of the exported symbol name, or 0.
func (l *Library) Lookup(name string) uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == 0 {
		return 0
	}
	addr, err := sym(l.handle, name)
	if err != nil {
		log.WithFields(logrus.Fields{
			logfields.Library:    l.path,
			logfields.EntryPoint: name,
		}).Trace("Symbol not found")
		return 0
	}
	return addr
}

func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return ErrClosed
	}
	err := closeLib(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("close %s: %w", l.path, err)
	}
	return nil
}

type OpenOptions struct {
	// Lazy defers resolution of the library's own undefined symbols until
	// first use.
	Lazy bool
	// Global makes the library's symbols available to libraries opened
	// later.
	Global bool
}

func defaultOpenOpts() *OpenOptions {
	return &OpenOptions{}
}
