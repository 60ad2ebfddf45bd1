package idempotency

import (
	"context"
	"testing"
	"time"

	memclock "github.com/Overland-East-Bay/intergalactic-planner/internal/adapters/memory/clock"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/idempotency"
)

func TestStore_PutThenGet(t *testing.T) {
	t.Parallel()

	s := NewStore(memclock.NewManualClock(time.Unix(100, 0).UTC()), time.Hour)
	fp := idempotency.Fingerprint{
		Key:      "k1",
		Method:   "POST",
		Route:    "/travelers",
		BodyHash: "abc123",
	}
	rec := idempotency.Record{
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"fullName":"Ann Lee"}`),
	}

	if err := s.Put(context.Background(), fp, rec); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	got, ok, err := s.Get(context.Background(), fp)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if !ok {
		t.Fatalf("Get() ok=false, want true")
	}
	if got.StatusCode != rec.StatusCode || got.ContentType != rec.ContentType || string(got.Body) != string(rec.Body) {
		t.Fatalf("Get()=%+v, want %+v", got, rec)
	}
	if !got.CreatedAt.Equal(time.Unix(100, 0).UTC()) {
		t.Fatalf("CreatedAt=%v, want stamped from clock", got.CreatedAt)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s := NewStore(memclock.NewManualClock(time.Unix(100, 0).UTC()), 0)
	_, ok, err := s.Get(context.Background(), idempotency.Fingerprint{Key: "nope"})
	if err != nil || ok {
		t.Fatalf("Get(missing) ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(100, 0).UTC())
	s := NewStore(clk, time.Minute)
	fp := idempotency.Fingerprint{Key: "k1", Method: "POST", Route: "/destinations"}
	if err := s.Put(context.Background(), fp, idempotency.Record{StatusCode: 201}); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	clk.Advance(time.Minute)
	if _, ok, _ := s.Get(context.Background(), fp); !ok {
		t.Fatalf("record expired at exactly TTL")
	}
	clk.Advance(time.Second)
	if _, ok, _ := s.Get(context.Background(), fp); ok {
		t.Fatalf("record still present after TTL")
	}
}

func TestStore_ReturnedBodyIsACopy(t *testing.T) {
	t.Parallel()

	s := NewStore(memclock.NewManualClock(time.Unix(100, 0).UTC()), time.Hour)
	fp := idempotency.Fingerprint{Key: "k1"}
	_ = s.Put(context.Background(), fp, idempotency.Record{Body: []byte("abc")})

	got, _, _ := s.Get(context.Background(), fp)
	got.Body[0] = 'z'
	again, _, _ := s.Get(context.Background(), fp)
	if string(again.Body) != "abc" {
		t.Fatalf("Body=%q, want abc", again.Body)
	}
}
