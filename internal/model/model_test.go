package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateUnmarshalYAML(t *testing.T) {
	var m Milestone
	err := yaml.Unmarshal([]byte("id: m1\ndue_date: 2025-07-15\ncompleted: true\ncompleted_date: 2025-07-12\n"), &m)
	require.NoError(t, err)

	assert.Equal(t, "2025-07-15", m.DueDate.String())
	require.NotNil(t, m.CompletedDate)
	assert.Equal(t, "2025-07-12", m.CompletedDate.String())
}

func TestDateUnmarshalYAMLRejectsGarbage(t *testing.T) {
	var m Milestone
	err := yaml.Unmarshal([]byte("due_date: next tuesday\n"), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next tuesday")
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Dr. Edore Akpokodje", "EA"},
		{"Terry Tang", "TT"},
		{"Prof. Ada", "A"},
		{"", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TeamMember{Name: tt.name}.Initials())
		})
	}
}

func TestFeedEntryVariants(t *testing.T) {
	base := ProjectUpdate{ID: "u1", Type: UpdateMilestone}
	entries := []FeedEntry{
		BareUpdate{ProjectUpdate: base},
		AttributedUpdate{ProjectUpdate: base, ProjectID: "p", ProjectTitle: "P"},
	}

	var titles []string
	for _, e := range entries {
		assert.Equal(t, "u1", e.Post().ID)
		switch v := e.(type) {
		case AttributedUpdate:
			titles = append(titles, v.ProjectTitle)
		case BareUpdate:
			titles = append(titles, "")
		}
	}
	assert.Equal(t, []string{"", "P"}, titles)
}

func TestCompletedMilestones(t *testing.T) {
	p := Project{Milestones: []Milestone{{Completed: true}, {}, {Completed: true}}}
	assert.Equal(t, 2, p.CompletedMilestones())
}
