package models

import (
	"strings"
	"unicode/utf8"
)

// Quiz is a card on the quiz page.
type Quiz struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
}

// LeaderboardEntry is one player on the quiz leaderboard. Rank is assigned
// when standings are computed.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

// Initials returns the avatar fallback for name: the first letters of its
// first and last words, or the first two letters of a single word, upper-cased.
// An empty name gives "U".
func Initials(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return "U"
	case 1:
		r := []rune(words[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	}
	first, _ := utf8.DecodeRuneInString(words[0])
	last, _ := utf8.DecodeRuneInString(words[len(words)-1])
	return strings.ToUpper(string([]rune{first, last}))
}
