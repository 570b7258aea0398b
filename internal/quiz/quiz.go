// Package quiz arranges the quiz catalogue and leaderboard for the quiz page.
package quiz

import (
	"sort"

	"github.com/bobmcallan/vibex/internal/models"
)

// Page is what the quiz page renders.
type Page struct {
	Featured *models.Quiz
	Others   []models.Quiz
	// Podium holds the top three in display order: second, first, third.
	Podium []models.LeaderboardEntry
	Rest   []models.LeaderboardEntry
}

// Standings sorts entries by score, highest first, and assigns competition
// ranks: tied scores share a rank and the next rank skips (1, 2, 2, 4).
// Ties keep their input order. The input is not modified.
func Standings(entries []models.LeaderboardEntry) []models.LeaderboardEntry {
	out := append([]models.LeaderboardEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	for i := range out {
		if i > 0 && out[i].Score == out[i-1].Score {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// podiumOrder maps display slots to standing positions.
var podiumOrder = []int{1, 0, 2}

// BuildPage features the first quiz and splits the standings into podium and
// rest.
func BuildPage(quizzes []models.Quiz, entries []models.LeaderboardEntry) Page {
	var p Page
	if len(quizzes) > 0 {
		featured := quizzes[0]
		p.Featured = &featured
		p.Others = append([]models.Quiz(nil), quizzes[1:]...)
	}

	standings := Standings(entries)
	for _, pos := range podiumOrder {
		if pos < len(standings) {
			p.Podium = append(p.Podium, standings[pos])
		}
	}
	if len(standings) > 3 {
		p.Rest = standings[3:]
	}
	return p
}
