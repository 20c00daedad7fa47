package listing

import (
	"sync"
	"time"
)

// Store keeps listing sessions alive for the lifetime of a category page
// visit, so filter changes reuse the session's full-category buffer instead
// of re-fetching it. Entries expire after the TTL; nothing is persisted.
type Store struct {
	ttl      time.Duration
	sessions sync.Map // map[string]*storeEntry
}

type storeEntry struct {
	session *Session
	created time.Time
}

// NewStore creates a session store with the given entry lifetime
func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl}
}

// Get returns the live session for a category, building a fresh one when
// none exists or the previous visit expired.
func (s *Store) Get(categoryID string, build func() *Session) *Session {
	if v, ok := s.sessions.Load(categoryID); ok {
		entry := v.(*storeEntry)
		if time.Since(entry.created) < s.ttl {
			return entry.session
		}
		s.sessions.Delete(categoryID)
	}

	session := build()
	s.sessions.Store(categoryID, &storeEntry{session: session, created: time.Now()})
	return session
}
