package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_AppendStopsAtCapacity(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	for i := 0; i < MaxTravelers; i++ {
		require.True(t, r.Append(TravelerName(string(rune('a'+i))+" x")))
	}
	assert.True(t, r.Full())
	assert.False(t, r.Append("late comer"))
	assert.Equal(t, MaxTravelers, r.Len())
}

func TestRoster_ZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var r Roster
	assert.Equal(t, MaxTravelers, r.Cap())
	assert.True(t, r.Append("Ann Lee"))
	assert.Equal(t, []TravelerName{"Ann Lee"}, r.Names())

	for r.Len() < MaxTravelers {
		require.True(t, r.Append("Bob Kim"))
	}
	assert.True(t, r.Full())
	assert.False(t, r.Append("Tom Ford"))
}

func TestRoster_RemoveAtShifts(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	r.Append("a 1")
	r.Append("b 2")
	r.Append("c 3")

	got, ok := r.RemoveAt(1)
	require.True(t, ok)
	assert.Equal(t, TravelerName("b 2"), got)
	assert.Equal(t, []TravelerName{"a 1", "c 3"}, r.Names())

	_, ok = r.RemoveAt(5)
	assert.False(t, ok)
	_, ok = r.RemoveAt(-1)
	assert.False(t, ok)
}

func TestRoster_IndexLookups(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	r.Append("Ann Lee")
	r.Append("Bob Kim")
	r.Append("Ann Lee")

	assert.Equal(t, 0, r.IndexOf("Ann Lee"))
	assert.Equal(t, -1, r.IndexOf("Tom Ford"))
	assert.Equal(t, 2, r.LastIndexFunc(func(n TravelerName) bool { return n == "Ann Lee" }))
	assert.Equal(t, -1, r.LastIndexFunc(func(TravelerName) bool { return false }))
}

func TestRoster_NamesReturnsCopy(t *testing.T) {
	t.Parallel()

	r := NewRoster()
	r.Append("Ann Lee")
	names := r.Names()
	names[0] = "Mallory"
	assert.Equal(t, []TravelerName{"Ann Lee"}, r.Names())
}
