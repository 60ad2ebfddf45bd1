package idempotency

import (
	"context"
	"sync"
	"time"

	clockport "github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/clock"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/idempotency"
)

// DefaultTTL bounds how long a key can be replayed.
const DefaultTTL = 24 * time.Hour

// Store is an in-memory implementation of idempotency.Store.
// Records older than the TTL are treated as absent and dropped on access.
// It is safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	m   map[idempotency.Fingerprint]idempotency.Record
	clk clockport.Clock
	ttl time.Duration
}

// NewStore returns a store expiring records after ttl; ttl <= 0 selects DefaultTTL.
func NewStore(clk clockport.Clock, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		m:   make(map[idempotency.Fingerprint]idempotency.Record),
		clk: clk,
		ttl: ttl,
	}
}

func (s *Store) Get(ctx context.Context, fp idempotency.Fingerprint) (idempotency.Record, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.m[fp]
	if !ok {
		return idempotency.Record{}, false, nil
	}
	if s.expired(rec) {
		delete(s.m, fp)
		return idempotency.Record{}, false, nil
	}
	return cloneRecord(rec), true, nil
}

func (s *Store) Put(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) error {
	_ = ctx
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.clk.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[fp] = cloneRecord(rec)
	return nil
}

func (s *Store) expired(rec idempotency.Record) bool {
	return s.clk.Now().Sub(rec.CreatedAt) > s.ttl
}

func cloneRecord(rec idempotency.Record) idempotency.Record {
	out := rec
	out.Body = append([]byte(nil), rec.Body...)
	return out
}
