package workspace

import (
	"sync"
	"time"
)

type slot struct {
	ws       *Workspace
	lastSeen time.Time
}

// Registry keeps one Workspace per session id. Workspaces idle for longer
// than the ttl are dropped the next time the registry is touched.
type Registry struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	spaces map[string]*slot
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:    ttl,
		now:    time.Now,
		spaces: make(map[string]*slot),
	}
}

// Open returns the workspace for id, creating an empty one if needed.
func (r *Registry) Open(id string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictLocked(now)

	s, ok := r.spaces[id]
	if !ok {
		s = &slot{ws: New()}
		r.spaces[id] = s
	}
	s.lastSeen = now
	return s.ws
}

func (r *Registry) Lookup(id string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictLocked(now)

	s, ok := r.spaces[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = now
	return s.ws, true
}

func (r *Registry) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.spaces, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.spaces)
}

func (r *Registry) evictLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.spaces {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.spaces, id)
		}
	}
}
