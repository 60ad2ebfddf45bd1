// Package catalog implements the destination catalog: a name-keyed set of
// destinations with strictly positive costs, listed cheapest first.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/platform/log"
	"github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/destinationrepo"
)

type Service struct {
	repo destinationrepo.Repository
}

func NewService(repo destinationrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Add inserts a destination and reports whether it was stored.
// Invalid input and duplicate names leave the catalog unchanged.
func (s *Service) Add(ctx context.Context, name string, cost float64) bool {
	_, err := s.Create(ctx, name, cost)
	return err == nil
}

// Create is Add with the rejection reason surfaced as an *Error.
func (s *Service) Create(ctx context.Context, name string, cost float64) (domain.Destination, error) {
	if !domain.ValidCost(cost) {
		log.Debugf(ctx, "catalog: rejected destination %q cost=%v", name, cost)
		return domain.Destination{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid destination",
			Details: map[string]any{"cost": "must be a finite number greater than zero"},
		}
	}

	d := domain.Destination{Name: name, Cost: cost}
	if err := s.repo.Insert(ctx, d); err != nil {
		if errors.Is(err, destinationrepo.ErrAlreadyExists) {
			log.Debugf(ctx, "catalog: destination %q already exists", name)
			return domain.Destination{}, &Error{
				Status:  409,
				Code:    "DESTINATION_ALREADY_EXISTS",
				Message: "A destination with this name already exists.",
				Details: map[string]any{"name": name},
			}
		}
		return domain.Destination{}, fmt.Errorf("insert destination %q: %w", name, err)
	}
	log.Infof(ctx, "catalog: added destination %q cost=%v", name, cost)
	return d, nil
}

// Remove deletes the named destination and reports whether anything was removed.
func (s *Service) Remove(ctx context.Context, name string) bool {
	return s.Delete(ctx, name) == nil
}

// Delete is Remove with the failure reason surfaced as an error.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, destinationrepo.ErrNotFound) {
			return &Error{
				Status:  404,
				Code:    "DESTINATION_NOT_FOUND",
				Message: "No destination exists with this name.",
				Details: map[string]any{"name": name},
			}
		}
		return fmt.Errorf("delete destination %q: %w", name, err)
	}
	log.Infof(ctx, "catalog: removed destination %q", name)
	return nil
}

// List returns all destinations ordered by ascending cost; tied costs are ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Destination, error) {
	ds, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	if ds == nil {
		ds = []domain.Destination{}
	}
	return ds, nil
}

// ListByCostAscending returns destination names, cheapest first.
// It never fails: an empty or unreadable catalog yields an empty slice.
func (s *Service) ListByCostAscending(ctx context.Context) []string {
	ds, err := s.List(ctx)
	if err != nil {
		log.Errorf(ctx, "catalog: %v", err)
		return []string{}
	}
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name)
	}
	return out
}
