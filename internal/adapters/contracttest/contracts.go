package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
	destinationrepoport "github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/destinationrepo"
	idempotencyport "github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/idempotency"
)

type CleanupFunc = func()

type DestinationRepoFactory func(t *testing.T) (destinationrepoport.Repository, CleanupFunc)
type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idempotencyport.Fingerprint{
		Key:      "k-1",
		Method:   "POST",
		Route:    "/travelers",
		BodyHash: "",
	}
	rec := idempotencyport.Record{
		StatusCode:  0,
		ContentType: "text/plain",
		Body:        []byte("hash-abc"),
		CreatedAt:   time.Unix(123, 0).UTC(),
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(got.Body) != "hash-abc" || got.ContentType != "text/plain" || got.StatusCode != 0 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Records under a different body hash are distinct.
	if _, ok, err := store.Get(ctx, idempotencyport.Fingerprint{Key: "k-1", Method: "POST", Route: "/travelers", BodyHash: "x"}); err != nil || ok {
		t.Fatalf("expected miss for other body hash, got ok=%v err=%v", ok, err)
	}

	// Overwrite semantics.
	rec2 := rec
	rec2.Body = []byte("hash-def")
	if err := store.Put(ctx, fp, rec2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, ok, err = store.Get(ctx, fp)
	if err != nil || !ok || string(got.Body) != "hash-def" {
		t.Fatalf("expected overwritten record, got ok=%v err=%v body=%q", ok, err, string(got.Body))
	}
}

func RunDestinationRepo(t *testing.T, newRepo DestinationRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	empty, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}

	if err := repo.Insert(ctx, domain.Destination{Name: "Mars", Cost: 500}); err != nil {
		t.Fatalf("Insert Mars: %v", err)
	}
	if err := repo.Insert(ctx, domain.Destination{Name: "Moon", Cost: 100}); err != nil {
		t.Fatalf("Insert Moon: %v", err)
	}
	if err := repo.Insert(ctx, domain.Destination{Name: "Europa", Cost: 100}); err != nil {
		t.Fatalf("Insert Europa: %v", err)
	}

	// Name uniqueness; first cost wins.
	if err := repo.Insert(ctx, domain.Destination{Name: "Mars", Cost: 1}); !errors.Is(err, destinationrepoport.ErrAlreadyExists) {
		t.Fatalf("Insert duplicate err=%v, want %v", err, destinationrepoport.ErrAlreadyExists)
	}
	got, err := repo.Get(ctx, "Mars")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Cost != 500 {
		t.Fatalf("Get(Mars).Cost=%v, want 500", got.Cost)
	}

	// Cost ascending, ties by name.
	ds, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ds) != 3 || ds[0].Name != "Europa" || ds[1].Name != "Moon" || ds[2].Name != "Mars" {
		t.Fatalf("unexpected ordering: %#v", ds)
	}

	if err := repo.Delete(ctx, "Moon"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "Moon"); !errors.Is(err, destinationrepoport.ErrNotFound) {
		t.Fatalf("Delete again err=%v, want %v", err, destinationrepoport.ErrNotFound)
	}
	if _, err := repo.Get(ctx, "Moon"); !errors.Is(err, destinationrepoport.ErrNotFound) {
		t.Fatalf("Get deleted err=%v, want %v", err, destinationrepoport.ErrNotFound)
	}
}
