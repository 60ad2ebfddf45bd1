package destinationrepo

import (
	"testing"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/adapters/contracttest"
	destinationrepoport "github.com/Overland-East-Bay/intergalactic-planner/internal/ports/out/destinationrepo"
)

func TestContract_DestinationRepo(t *testing.T) {
	contracttest.RunDestinationRepo(t, func(t *testing.T) (destinationrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
