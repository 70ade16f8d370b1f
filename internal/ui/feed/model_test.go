package feed

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
)

func newModel(t *testing.T) Model {
	t.Helper()
	return New(content.MustLoad(), keys.DefaultKeyMap(), 100, 40)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func postIDs(es []model.FeedEntry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Post().ID
	}
	return out
}

func TestTimelineNewestFirst(t *testing.T) {
	m := newModel(t)
	got := postIDs(m.Visible())
	require.Len(t, got, 7)
	assert.Equal(t, "a4", got[0])
	assert.Equal(t, "u3", got[len(got)-1])
}

func TestTypeFilter(t *testing.T) {
	m := newModel(t)

	m, _ = m.Update(runes("f"))
	assert.Equal(t, "milestone", m.Kind())
	assert.Equal(t, []string{"u1"}, postIDs(m.Visible()))

	m, _ = m.Update(runes("F"))
	m, _ = m.Update(runes("F"))
	assert.Equal(t, "announcement", m.Kind())
	if diff := cmp.Diff([]string{"a4", "a3", "a2", "a1"}, postIDs(m.Visible())); diff != "" {
		t.Errorf("announcements (-want +got):\n%s", diff)
	}
	for _, e := range m.Visible() {
		_, bare := e.(model.BareUpdate)
		assert.True(t, bare, e.Post().ID)
	}
}

func TestLikeToggleRestoresCount(t *testing.T) {
	m := newModel(t)
	first := m.Visible()[0]
	base := first.Post().Likes

	m, _ = m.Update(runes("l"))
	assert.Equal(t, base+1, m.Likes(first))
	assert.Contains(t, m.View(), "♥")

	m, _ = m.Update(runes("l"))
	assert.Equal(t, base, m.Likes(first))
	assert.Equal(t, base, first.Post().Likes)
}

func TestLikeAppliesToCursor(t *testing.T) {
	m := newModel(t)
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("l"))

	second := m.Visible()[1]
	assert.Equal(t, second.Post().Likes+1, m.Likes(second))
	first := m.Visible()[0]
	assert.Equal(t, first.Post().Likes, m.Likes(first))
}

func TestAttributedEntriesShowProject(t *testing.T) {
	m := newModel(t)
	m, _ = m.Update(runes("f"))
	assert.Contains(t, m.View(), "Milestone · DeepDetect")
}

func TestClickSelectsEntry(t *testing.T) {
	m := newModel(t)
	y := headerHeight + m.offsets[1]
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(runes("l"))

	second := m.Visible()[1]
	assert.Equal(t, second.Post().Likes+1, m.Likes(second))
}
