package destinationrepo

import (
	"context"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
)

// Repository stores catalog destinations keyed by name.
//
// Implementations do not validate cost; the catalog service does that before calling Insert.
//
// Result ordering expectations:
// - List returns destinations ordered by Cost ascending, ties broken by Name ascending,
//   so repeated calls over the same contents agree.
type Repository interface {
	Insert(ctx context.Context, d domain.Destination) error
	Delete(ctx context.Context, name string) error

	Get(ctx context.Context, name string) (domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
}
