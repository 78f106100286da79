package wcap

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
)

type sessionState int

const (
	sessionOpen sessionState = iota
	sessionFinished
)

// Session is one construction pass of a table against a resolver. Each name
// is looked up at most once; later lookups of the same name return the
// memoized address, so a table never sees two answers for one name.
type Session struct {
	id    uuid.UUID
	table string
	r     Resolver
	opts  *loadOptions
	log   logrus.FieldLogger

	mu       sync.Mutex
	state    sessionState
	memo     map[string]uintptr
	resolved int
	missing  int
}

func NewSession(table string, r Resolver, opts ...LoadOption) *Session {
	o := defaultLoadOpts()
	for _, opt := range opts {
		opt(o)
	}
	if r == nil {
		r = &EmptyResolver{}
	}
	id := uuid.New()
	return &Session{
		id:    id,
		table: table,
		r:     r,
		opts:  o,
		log:   o.log.WithFields(logrus.Fields{logfields.Table: table, logfields.Session: id.String()}),
		memo:  make(map[string]uintptr),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Table() string { return s.table }

// Lookup returns the address of name, asking the resolver only the first
// time name is seen in this session.
func (s *Session) Lookup(name string) uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(name)
}

func (s *Session) lookupLocked(name string) uintptr {
	if addr, ok := s.memo[name]; ok {
		return addr
	}
	addr := s.r.Lookup(name)
	s.memo[name] = addr
	if addr == 0 {
		s.log.WithField(logfields.EntryPoint, name).Trace("Entry point not found")
	} else {
		s.log.WithFields(logrus.Fields{
			logfields.EntryPoint: name,
			logfields.Addr:       fmt.Sprintf("%#x", addr),
		}).Trace("Entry point resolved")
	}
	return addr
}

// Bind resolves name and fills ep with either the bound function or a stub.
// It panics when F is not a func type or when the session is already done.
func Bind[F any](s *Session, ep *EntryPoint[F], name string) {
	funcType[F]()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == sessionFinished {
		panic(fmt.Sprintf("wcap: bind %s: session for %s is finished", name, s.table))
	}

	addr := s.lookupLocked(name)
	if addr == 0 {
		bindStub(s, ep, name)
		return
	}

	var fn F
	bound := false
	defer func() {
		// a panicking binder leaves ep as a stub, never half bound
		if !bound {
			bindStub(s, ep, name)
		}
	}()
	s.opts.binder.Bind(&fn, addr)
	bound = true
	*ep = EntryPoint[F]{table: s.table, name: name, addr: addr, fn: fn, set: true}
	s.resolved++
}

func bindStub[F any](s *Session, ep *EntryPoint[F], name string) {
	*ep = EntryPoint[F]{table: s.table, name: name, fn: newStub[F](s.table, name, s.opts.log), set: true}
	s.missing++
}

// Done finishes the session. Further calls to Bind panic.
func (s *Session) Done() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == sessionFinished {
		return
	}
	s.state = sessionFinished
	s.log.WithFields(logrus.Fields{
		"resolved": s.resolved,
		"missing":  s.missing,
	}).Debug("Table loaded")
}
