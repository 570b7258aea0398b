// Package listing holds the HackUp and VConnect boards and the pure filter
// functions that derive what a visitor sees from them.
package listing

import (
	"sort"
	"strings"
	"time"

	"github.com/bobmcallan/vibex/internal/models"
	"golang.org/x/text/cases"
)

// Sentinels meaning "no constraint" for the categorical selectors.
const (
	AllTypes = "all"
	AnySkill = "any"
)

// Window narrows team requests by hackathon date relative to now.
type Window string

const (
	WindowAnytime Window = "anytime"
	WindowWeekend Window = "weekend"
	WindowMonth   Window = "month"
)

// ParseWindow maps a query value to a Window. Unknown values mean anytime.
func ParseWindow(s string) Window {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case WindowWeekend, WindowMonth:
		return w
	}
	return WindowAnytime
}

// TeamRequestCriteria selects team requests. Zero values impose no
// constraint, except that Window needs Now.
type TeamRequestCriteria struct {
	Query    string
	Skill    string
	Date     time.Time
	Window   Window
	Now      time.Time
	Location *time.Location
}

// EventCriteria selects community events. Zero values impose no constraint.
type EventCriteria struct {
	Query    string
	Type     string
	Date     time.Time
	Location *time.Location
}

// matcher does case-insensitive substring matching with Unicode case folding.
// The query is used as typed, spaces included; only "" matches everything.
// A cases.Caser is stateful, so each filter call gets its own.
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	m := &matcher{fold: cases.Fold()}
	m.needle = m.fold.String(query)
	return m
}

func (m *matcher) empty() bool { return m.needle == "" }

func (m *matcher) in(haystack string) bool {
	return strings.Contains(m.fold.String(haystack), m.needle)
}

func (m *matcher) inAny(fields ...string) bool {
	for _, f := range fields {
		if m.in(f) {
			return true
		}
	}
	return false
}

// TeamRequestSearchFields lists the text a query is matched against.
func TeamRequestSearchFields(r models.TeamRequest) []string {
	fields := make([]string, 0, 2+len(r.Roles)+len(r.Skills))
	fields = append(fields, r.ProjectName, r.ProjectDescription)
	fields = append(fields, r.Roles...)
	fields = append(fields, r.Skills...)
	return fields
}

// EventSearchFields lists the text a query is matched against.
func EventSearchFields(e models.CommunityEvent) []string {
	return []string{e.Title, e.Description, e.Location}
}

// FilterTeamRequests returns the requests matching every active criterion,
// in collection order. The input is not modified.
func FilterTeamRequests(reqs []models.TeamRequest, c TeamRequestCriteria) []models.TeamRequest {
	loc := locationOrUTC(c.Location)
	query := newMatcher(c.Query)
	skill := strings.TrimSpace(c.Skill)
	if strings.EqualFold(skill, AnySkill) {
		skill = ""
	}
	skillMatch := newMatcher(skill)
	window := ParseWindow(string(c.Window))

	out := make([]models.TeamRequest, 0, len(reqs))
	for _, r := range reqs {
		if !query.empty() && !query.inAny(TeamRequestSearchFields(r)...) {
			continue
		}
		if !skillMatch.empty() && !hasSkill(skillMatch, r.Skills) {
			continue
		}
		if !c.Date.IsZero() && !SameDay(r.HackathonDate, c.Date, loc) {
			continue
		}
		if !InWindow(r.HackathonDate, window, c.Now, loc) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// hasSkill reports whether any skill equals the selector value.
func hasSkill(m *matcher, skills []string) bool {
	want := skillKey(m.needle)
	for _, s := range skills {
		if skillKey(m.fold.String(s)) == want {
			return true
		}
	}
	return false
}

// skillKey drops separators so "Next.js", "next js" and "nextjs" compare equal.
func skillKey(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '.' || r == '-' || r == '_' {
			return -1
		}
		return r
	}, s)
}

// FilterEvents returns the events matching every active criterion, sorted
// ascending by date. Events on the same instant keep collection order.
func FilterEvents(events []models.CommunityEvent, c EventCriteria) []models.CommunityEvent {
	loc := locationOrUTC(c.Location)
	query := newMatcher(c.Query)
	typ := strings.TrimSpace(c.Type)

	out := make([]models.CommunityEvent, 0, len(events))
	for _, e := range events {
		if !query.empty() && !query.inAny(EventSearchFields(e)...) {
			continue
		}
		if typ != "" && typ != AllTypes && string(e.Type) != typ {
			continue
		}
		if !c.Date.IsZero() && !SameDay(e.Date, c.Date, loc) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	loc = locationOrUTC(loc)
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// InWindow reports whether date lies in w relative to now, in loc. Weekend is
// the Saturday and Sunday of the current week, or just Sunday when now is a
// Sunday. Month is the calendar month of now.
func InWindow(date time.Time, w Window, now time.Time, loc *time.Location) bool {
	loc = locationOrUTC(loc)
	switch w {
	case WindowWeekend:
		start := startOfDay(now.In(loc))
		days := 1
		if start.Weekday() != time.Sunday {
			start = start.AddDate(0, 0, int(time.Saturday-start.Weekday()))
			days = 2
		}
		end := start.AddDate(0, 0, days)
		d := date.In(loc)
		return !d.Before(start) && d.Before(end)
	case WindowMonth:
		dy, dm, _ := date.In(loc).Date()
		ny, nm, _ := now.In(loc).Date()
		return dy == ny && dm == nm
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
