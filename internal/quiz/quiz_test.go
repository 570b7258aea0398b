package quiz

import (
	"testing"

	"github.com/bobmcallan/vibex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(scores ...int) []models.LeaderboardEntry {
	names := []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank"}
	out := make([]models.LeaderboardEntry, len(scores))
	for i, s := range scores {
		out[i] = models.LeaderboardEntry{Name: names[i], Score: s}
	}
	return out
}

func ranks(es []models.LeaderboardEntry) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.Rank
	}
	return out
}

func names(es []models.LeaderboardEntry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestStandings_CompetitionRanking(t *testing.T) {
	got := Standings(entries(900, 1500, 1200, 1200, 950))

	assert.Equal(t, []string{"Bob", "Charlie", "Diana", "Eve", "Alice"}, names(got))
	assert.Equal(t, []int{1, 2, 2, 4, 5}, ranks(got))
}

func TestStandings_DoesNotModifyInput(t *testing.T) {
	in := entries(1, 2)
	Standings(in)
	assert.Equal(t, "Alice", in[0].Name)
	assert.Zero(t, in[0].Rank)
}

func TestBuildPage(t *testing.T) {
	quizzes := []models.Quiz{{Title: "The Impossible Quiz"}, {Title: "General Knowledge"}, {Title: "Pop Culture"}}

	p := BuildPage(quizzes, entries(1500, 1350, 1200, 1100, 950))

	require.NotNil(t, p.Featured)
	assert.Equal(t, "The Impossible Quiz", p.Featured.Title)
	assert.Len(t, p.Others, 2)
	assert.Equal(t, []string{"Bob", "Alice", "Charlie"}, names(p.Podium))
	assert.Equal(t, []int{2, 1, 3}, ranks(p.Podium))
	assert.Equal(t, []string{"Diana", "Eve"}, names(p.Rest))
}

func TestBuildPage_SmallInputs(t *testing.T) {
	p := BuildPage(nil, entries(10, 20))
	assert.Nil(t, p.Featured)
	assert.Equal(t, []string{"Alice", "Bob"}, names(p.Podium), "second then first")
	assert.Empty(t, p.Rest)

	p = BuildPage(nil, nil)
	assert.Empty(t, p.Podium)
}
