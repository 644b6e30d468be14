package service

import "sync"

// sequencer numbers the fetches of each cache key and only lets a result be
// stored when no newer fetch for that key has already stored one. A key's
// entry lives only while it has fetches in flight.
type sequencer struct {
	mu   sync.Mutex
	keys map[string]*keySeq
}

type keySeq struct {
	issued   uint64 // guarded by sequencer.mu
	inflight int    // guarded by sequencer.mu

	// store serializa los writes de esta key; committed lo protege.
	store     sync.Mutex
	committed uint64
}

func newSequencer() *sequencer {
	return &sequencer{keys: map[string]*keySeq{}}
}

func (s *sequencer) begin(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.keys[key]
	if !ok {
		k = &keySeq{}
		s.keys[key] = k
	}
	k.issued++
	k.inflight++
	return k.issued
}

// commit runs store under the key's own lock, so accepting a token and
// writing its value happen together without blocking other keys. Reports
// whether store ran. Every begin must be followed by commit or abandon.
func (s *sequencer) commit(key string, token uint64, store func()) bool {
	s.mu.Lock()
	k := s.keys[key]
	s.mu.Unlock()
	if k == nil {
		return false
	}

	k.store.Lock()
	ok := token > k.committed
	if ok {
		k.committed = token
		store()
	}
	k.store.Unlock()

	s.done(key)
	return ok
}

// abandon releases a token whose fetch produced nothing to store.
func (s *sequencer) abandon(key string) { s.done(key) }

func (s *sequencer) done(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.keys[key]
	if !ok {
		return
	}
	if k.inflight--; k.inflight <= 0 {
		delete(s.keys, key)
	}
}

// tracked counts keys with fetches in flight.
func (s *sequencer) tracked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}
