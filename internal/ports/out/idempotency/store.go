package idempotency

import (
	"context"
	"time"
)

// Key is the caller-provided idempotency key (Idempotency-Key header).
type Key string

// Fingerprint identifies a request for idempotency purposes: key + method + path + body hash.
// An empty BodyHash addresses the key's metadata record, which holds the hash of the
// first payload seen for that key.
type Fingerprint struct {
	Key      Key
	Method   string
	Route    string
	BodyHash string
}

// Meta returns the fingerprint of the key's metadata record.
func (fp Fingerprint) Meta() Fingerprint {
	fp.BodyHash = ""
	return fp
}

// Record is the stored response we can replay for a duplicate request.
type Record struct {
	StatusCode  int
	ContentType string
	Body        []byte
	CreatedAt   time.Time
}

// Store persists idempotency records for replaying responses on retries.
type Store interface {
	Get(ctx context.Context, fp Fingerprint) (Record, bool, error)
	Put(ctx context.Context, fp Fingerprint, rec Record) error
}
