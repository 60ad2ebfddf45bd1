package textview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Overland-East-Bay/intergalactic-planner/internal/domain"
)

func TestWriteDestinations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteDestinations(&buf, []domain.Destination{{Name: "Moon", Cost: 100}, {Name: "Mars", Cost: 250.5}}))
	assert.Equal(t, "Moon: 100$\nMars: 250.5$\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteDestinations(&buf, nil))
	assert.Equal(t, NoDestinations+"\n", buf.String())
}

func TestWriteTravelers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTravelers(&buf, []domain.TravelerName{"Ann Lee", "James Stone"}))
	assert.Equal(t, "1. Ann Lee\n2. James Stone (VIP)\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTravelers(&buf, []domain.TravelerName{}))
	assert.Equal(t, NoTravelers+"\n", buf.String())
}
