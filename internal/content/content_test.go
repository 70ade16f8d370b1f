package content

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/model"
)

func TestLoadBundled(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Len(t, s.Team(), 5)
	require.Len(t, s.Projects(), 1)

	p := s.Projects()[0]
	assert.Equal(t, "deepdetect-2025", p.ID)
	assert.Equal(t, 65, p.Progress)
	assert.Equal(t, 2, p.CompletedMilestones())
	require.NotNil(t, p.EndDate)
	assert.Equal(t, "2025-11-30", p.EndDate.String())

	lead, ok := s.Member("1")
	require.True(t, ok)
	assert.True(t, lead.IsLead)

	assert.Len(t, s.ProjectTeam(p), 5)
	assert.Empty(t, s.Discussions())
	assert.Empty(t, s.Research().Publications)
	assert.Len(t, s.DetailTabs(), 3)
	assert.NotEmpty(t, s.Future())
}

func TestAllUpdatesNewestFirst(t *testing.T) {
	s := MustLoad()

	var ids []string
	for _, u := range s.AllUpdates() {
		ids = append(ids, u.ID)
		assert.Equal(t, "DeepDetect", u.ProjectTitle)
		assert.Equal(t, "deepdetect-2025", u.ProjectID)
	}
	if diff := cmp.Diff([]string{"u1", "u2", "u3"}, ids); diff != "" {
		t.Errorf("AllUpdates order (-want +got):\n%s", diff)
	}
}

func TestAllUpdatesSortsAcrossProjects(t *testing.T) {
	doc := []byte(`
team:
  - id: "1"
    name: A
projects:
  - id: p1
    title: One
    status: active
    category: ai
    priority: low
    start_date: 2025-01-01
    updates:
      - {id: old, date: 2025-01-01, type: progress}
      - {id: newest, date: 2025-03-01, type: progress}
  - id: p2
    title: Two
    status: paused
    category: research
    priority: medium
    start_date: 2025-01-01
    updates:
      - {id: middle, date: 2025-02-01, type: research}
`)
	s, err := Parse(doc)
	require.NoError(t, err)

	var got []string
	for _, u := range s.AllUpdates() {
		got = append(got, u.ProjectID+"/"+u.ID)
	}
	want := []string{"p1/newest", "p2/middle", "p1/old"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllUpdates (-want +got):\n%s", diff)
	}
	for i := 1; i < len(s.AllUpdates()); i++ {
		assert.False(t, s.AllUpdates()[i].Date.After(s.AllUpdates()[i-1].Date.Time))
	}
}

func TestTimelineMergesAnnouncements(t *testing.T) {
	s := MustLoad()

	tl := s.Timeline()
	require.Len(t, tl, 7)

	_, ok := tl[0].(model.BareUpdate)
	assert.True(t, ok, "the June 10 announcement is the newest entry")
	assert.Equal(t, "a4", tl[0].Post().ID)

	last, ok := tl[len(tl)-1].(model.AttributedUpdate)
	require.True(t, ok)
	assert.Equal(t, "u3", last.ID)
}

func TestRoles(t *testing.T) {
	s := MustLoad()
	want := []string{
		"all",
		"principal investigator (pi)",
		"co-investigator",
		"co-investigator, ibers",
		"research fellow",
		"researcher & phd candidate",
	}
	if diff := cmp.Diff(want, s.Roles()); diff != "" {
		t.Errorf("Roles (-want +got):\n%s", diff)
	}
}

func TestStats(t *testing.T) {
	st := MustLoad().Stats()
	assert.Equal(t, 1, st.ActiveProjects)
	assert.Equal(t, 5, st.TeamSize)
	assert.Equal(t, 65, st.MeanProgress)
	assert.InDelta(t, 47786.34, st.TotalBudget, 0.001)

	assert.Equal(t, Stats{}, (&Store{}).Stats())
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate member",
			doc:  "team:\n  - {id: \"1\", name: A}\n  - {id: \"1\", name: B}\n",
			want: "duplicate team member",
		},
		{
			name: "dangling team reference",
			doc: `team:
  - {id: "1", name: A}
projects:
  - {id: p, status: active, category: ai, priority: low, start_date: 2025-01-01, team: ["9"]}
`,
			want: "unknown member \"9\"",
		},
		{
			name: "progress out of range",
			doc: `projects:
  - {id: p, status: active, category: ai, priority: low, start_date: 2025-01-01, progress: 101}
`,
			want: "outside 0..100",
		},
		{
			name: "unknown status",
			doc: `projects:
  - {id: p, status: cancelled, category: ai, priority: low, start_date: 2025-01-01}
`,
			want: "unknown status",
		},
		{
			name: "unknown announcement type",
			doc:  "announcements:\n  - {id: a, date: 2025-01-01, type: rumour}\n",
			want: "unknown type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("team:\n  - {id: \"1\", nickname: x}\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestBudgetNotValidated(t *testing.T) {
	_, err := Parse([]byte(`projects:
  - id: p
    status: planning
    category: biotech
    priority: critical
    start_date: 2025-01-01
    budget: {total: 10, allocated: 20, spent: 30}
`))
	assert.NoError(t, err)
}
