package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownIsHome(t *testing.T) {
	for _, id := range []string{"", "nope", "admin", "../team", "Team", " projects", "RESEARCH", "future "} {
		assert.Equal(t, Home, Resolve(id), "%q", id)
	}
	assert.Equal(t, Team, Resolve("team"))
	assert.Equal(t, Future, Resolve("future"))
}

func TestSelect(t *testing.T) {
	c := NewController("bogus")
	require.Equal(t, Home, c.Active())

	s, changed := c.Select("projects")
	assert.Equal(t, Projects, s)
	assert.True(t, changed)

	s, changed = c.Select("projects")
	assert.Equal(t, Projects, s)
	assert.False(t, changed)

	s, changed = c.Select("unknown")
	assert.Equal(t, Home, s)
	assert.True(t, changed)
}

func TestCycle(t *testing.T) {
	c := NewController("home")
	assert.Equal(t, Projects, c.Next())
	assert.Equal(t, Home, c.Prev())
	assert.Equal(t, Discussion, c.Prev())
	assert.Equal(t, Home, c.Next())

	c.Select("feed")
	assert.Equal(t, Home, c.Next())
	c.Select("details")
	assert.Equal(t, Discussion, c.Prev())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Projects", Projects.Label())
	assert.Equal(t, "Forum", Discussion.Label())
	assert.Equal(t, "Future Outlook", Future.Label())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		query string
		want  Section
	}{
		{"team", Team},
		{"TEAM", Team},
		{"proj", Projects},
		{"outlook", Future},
		{"forum", Discussion},
		{"rsrch", Research},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Lookup(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Lookup("zzzz")
	assert.False(t, ok)
	_, ok = Lookup("  ")
	assert.False(t, ok)
}
