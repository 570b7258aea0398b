// Package seed provides the listing, quiz and leaderboard data the portal
// starts with: built-in mock data, optionally replaced section by section from
// a JSON file.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/vibex/internal/common"
	"github.com/bobmcallan/vibex/internal/models"
)

const seedFileName = "import/seed.json"

// Data is everything the boards and the quiz page are seeded with.
type Data struct {
	TeamRequests []models.TeamRequest      `json:"teamRequests"`
	Events       []models.CommunityEvent   `json:"events"`
	Quizzes      []models.Quiz             `json:"quizzes"`
	Leaderboard  []models.LeaderboardEntry `json:"leaderboard"`
}

// Load returns the seed data. An explicit path must exist and parse. With no
// path, import/seed.json is looked up next to the binary and then in the
// working directory; when absent the built-in data is used. Sections missing
// from the file keep their built-in values.
func Load(path string, loc *time.Location, logger *common.Logger) (Data, error) {
	data := Builtin(loc)

	explicit := path != ""
	if !explicit {
		path = findSeedFile()
	}
	if path == "" {
		logger.Debug().Msg("seed: no seed file found, using built-in data")
		return data, nil
	}

	file, err := loadSeedFile(path)
	if err != nil {
		if !explicit {
			logger.Warn().Str("error", err.Error()).Str("path", path).Msg("seed: ignoring unreadable seed file")
			return data, nil
		}
		return Data{}, fmt.Errorf("seed file %s: %w", path, err)
	}

	if file.TeamRequests != nil {
		data.TeamRequests = file.TeamRequests
	}
	if file.Events != nil {
		data.Events = file.Events
	}
	if file.Quizzes != nil {
		data.Quizzes = file.Quizzes
	}
	if file.Leaderboard != nil {
		data.Leaderboard = file.Leaderboard
	}

	logger.Info().
		Str("path", path).
		Int("team_requests", len(data.TeamRequests)).
		Int("events", len(data.Events)).
		Int("quizzes", len(data.Quizzes)).
		Int("leaderboard", len(data.Leaderboard)).
		Msg("seed: loaded seed file")

	return data, nil
}

// findSeedFile searches for import/seed.json relative to the executable
// directory first, then falls back to the current working directory.
func findSeedFile() string {
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), seedFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if _, err := os.Stat(seedFileName); err == nil {
		return seedFileName
	}

	return ""
}

// loadSeedFile reads and parses a seed file, rejecting events of unknown type.
func loadSeedFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read file: %w", err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("parse JSON: %w", err)
	}

	for _, e := range d.Events {
		if !e.Type.Valid() {
			return Data{}, fmt.Errorf("event %s: invalid type %q", e.ID, e.Type)
		}
	}

	return d, nil
}
