package destinationrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/destinationrepo"
)

// Repo is an in-memory implementation of destinationrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byName map[string]float64
}

func NewRepo() *Repo {
	return &Repo{
		byName: make(map[string]float64),
	}
}

func (r *Repo) Insert(ctx context.Context, d domain.Destination) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[d.Name]; ok {
		return destinationrepo.ErrAlreadyExists
	}
	r.byName[d.Name] = d.Cost
	return nil
}

func (r *Repo) Delete(ctx context.Context, name string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return destinationrepo.ErrNotFound
	}
	delete(r.byName, name)
	return nil
}

func (r *Repo) Get(ctx context.Context, name string) (domain.Destination, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	cost, ok := r.byName[name]
	if !ok {
		return domain.Destination{}, destinationrepo.ErrNotFound
	}
	return domain.Destination{Name: name, Cost: cost}, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Destination, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Destination, 0, len(r.byName))
	for name, cost := range r.byName {
		out = append(out, domain.Destination{Name: name, Cost: cost})
	}
	sortDestinationsByCost(out)
	return out, nil
}

func sortDestinationsByCost(ds []domain.Destination) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Cost == ds[j].Cost {
			return ds[i].Name < ds[j].Name
		}
		return ds[i].Cost < ds[j].Cost
	})
}
