package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitiesAreCopies(t *testing.T) {
	first := Activities()
	require.Len(t, first, 5)

	first[0].Title = "mutated"
	*first[0].Lat = 0

	second := Activities()
	assert.Equal(t, "Weekly Soccer Match", second[0].Title)
	assert.InDelta(t, 37.5665, *second[0].Lat, 1e-9)
}

func TestMapActivities(t *testing.T) {
	acts := MapActivities()
	require.Len(t, acts, 3)
	for i, id := range []string{"1", "2", "3"} {
		assert.Equal(t, id, acts[i].ID)
		assert.True(t, acts[i].HasCoordinates())
		assert.NotEmpty(t, acts[i].Color)
	}
}

func TestIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Activities() {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestSeedMessages(t *testing.T) {
	room1 := SeedMessages(1)
	require.Len(t, room1, 4)
	assert.True(t, room1[1].IsMine)
	assert.Equal(t, "Mike", room1[3].Sender)

	room1[0].Text = "changed"
	assert.Equal(t, "Hey everyone! Ready for soccer today?", SeedMessages(1)[0].Text)

	assert.Nil(t, SeedMessages(2))
}

func TestSettings(t *testing.T) {
	s := Settings()
	assert.Equal(t, "Demo User", s.Profile.Name)
	require.Len(t, s.Menu, 7)
	assert.True(t, s.Menu[4].Toggle)
	assert.Equal(t, Profile(), s.Profile)
}
