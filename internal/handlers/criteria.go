package handlers

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bobmcallan/vibex/internal/forms"
	"github.com/bobmcallan/vibex/internal/listing"
	"github.com/bobmcallan/vibex/internal/models"
)

// teamRequestCriteria reads q, skill, date and window from a board query.
// A date that does not parse is an error.
func teamRequestCriteria(q url.Values, now time.Time, loc *time.Location) (listing.TeamRequestCriteria, error) {
	c := listing.TeamRequestCriteria{
		Query:    q.Get("q"),
		Skill:    strings.TrimSpace(q.Get("skill")),
		Window:   listing.ParseWindow(q.Get("window")),
		Now:      now,
		Location: loc,
	}
	date, err := queryDate(q, loc)
	if err != nil {
		return c, err
	}
	c.Date = date
	return c, nil
}

// eventCriteria reads q, type and date from a board query.
func eventCriteria(q url.Values, loc *time.Location) (listing.EventCriteria, error) {
	c := listing.EventCriteria{
		Query:    q.Get("q"),
		Type:     strings.TrimSpace(q.Get("type")),
		Location: loc,
	}
	date, err := queryDate(q, loc)
	if err != nil {
		return c, err
	}
	c.Date = date
	return c, nil
}

func queryDate(q url.Values, loc *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(q.Get("date"))
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := forms.ParseDate(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return d, nil
}

// skillOptions lists the distinct skills on the board for the skill selector,
// sorted case-insensitively. The first spelling seen wins.
func skillOptions(reqs []models.TeamRequest) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range reqs {
		for _, s := range r.Skills {
			key := strings.ToLower(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}
