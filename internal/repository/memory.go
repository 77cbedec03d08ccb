package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/service"
)

// Option настройка MemorySessions
type Option func(*MemorySessions)

// WithIdleTTL closes sessions not used for longer than ttl on the next Sweep.
// Zero disables expiry.
func WithIdleTTL(ttl time.Duration) Option {
	return func(m *MemorySessions) { m.idleTTL = ttl }
}

// WithMaxSessions caps open sessions. Create evicts the least recently used
// session when the cap is reached. Zero means no cap.
func WithMaxSessions(n int) Option {
	return func(m *MemorySessions) { m.maxSessions = n }
}

func WithClock(now func() time.Time) Option {
	return func(m *MemorySessions) { m.now = now }
}

type sessionEntry struct {
	sf       *service.Storefront
	lastSeen time.Time
}

// MemorySessions in-memory хранилище сессий; всё теряется при выходе процесса
type MemorySessions struct {
	mu       sync.Mutex
	newSess  Factory
	sessions map[string]*sessionEntry

	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time
}

func NewMemorySessions(newSess Factory, opts ...Option) *MemorySessions {
	m := &MemorySessions{
		newSess:  newSess,
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Ensure interfaces
var _ SessionRepository = (*MemorySessions)(nil)

func (m *MemorySessions) Create(ctx context.Context) (string, *service.Storefront, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	sf := m.newSess()
	id := uuid.NewString()

	var evicted []*service.Storefront
	m.mu.Lock()
	now := m.now()
	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		evicted = m.expireLocked(now)
		for len(m.sessions) >= m.maxSessions {
			evicted = append(evicted, m.evictOldestLocked())
		}
	}
	m.sessions[id] = &sessionEntry{sf: sf, lastSeen: now}
	m.mu.Unlock()

	closeAll(evicted)
	return id, sf, nil
}

// Get marks the session as used.
func (m *MemorySessions) Get(_ context.Context, id string) (*service.Storefront, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen = m.now()
	return e.sf, nil
}

// Delete closes the session's subscriptions before forgetting it.
func (m *MemorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	e.sf.Close()
	return nil
}

func (m *MemorySessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep closes expired sessions and reports how many were dropped.
func (m *MemorySessions) Sweep() int {
	m.mu.Lock()
	expired := m.expireLocked(m.now())
	m.mu.Unlock()
	closeAll(expired)
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (m *MemorySessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

// CloseAll drops every session; used on shutdown.
func (m *MemorySessions) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*sessionEntry)
	m.mu.Unlock()
	for _, e := range sessions {
		e.sf.Close()
	}
}

func (m *MemorySessions) expireLocked(now time.Time) []*service.Storefront {
	if m.idleTTL <= 0 {
		return nil
	}
	var out []*service.Storefront
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.idleTTL {
			delete(m.sessions, id)
			out = append(out, e.sf)
		}
	}
	return out
}

func (m *MemorySessions) evictOldestLocked() *service.Storefront {
	var (
		oldestID string
		oldest   *sessionEntry
	)
	for id, e := range m.sessions {
		if oldest == nil || e.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, e
		}
	}
	delete(m.sessions, oldestID)
	return oldest.sf
}

// Close runs outside the lock: it cancels subscriptions, which may log.
func closeAll(sessions []*service.Storefront) {
	for _, sf := range sessions {
		sf.Close()
	}
}
