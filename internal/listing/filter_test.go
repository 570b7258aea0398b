package listing

import (
	"testing"
	"time"

	"github.com/bobmcallan/vibex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func sampleRequests() []models.TeamRequest {
	return []models.TeamRequest{
		{ID: "1", ProjectName: "AI Personal Finance Advisor", ProjectDescription: "Budgeting with GenAI.",
			Roles: []string{"Backend Developer"}, Skills: []string{"Python", "GenAI"}, HackathonDate: day(2024, 8, 17, 0)},
		{ID: "2", ProjectName: "Gamified Language Learning", ProjectDescription: "Learn languages through play.",
			Roles: []string{"Game Developer"}, Skills: []string{"React", "Node.js"}, HackathonDate: day(2024, 8, 24, 0)},
		{ID: "3", ProjectName: "Sustainable E-commerce Hub", ProjectDescription: "A marketplace for eco products.",
			Roles: []string{"UI/UX Designer"}, Skills: []string{"Next.js", "Figma"}, HackathonDate: day(2024, 9, 7, 0)},
	}
}

func sampleEvents() []models.CommunityEvent {
	return []models.CommunityEvent{
		{ID: "1", Title: "Community Garden Cleanup", Description: "Help tidy up", Type: models.EventVolunteer, Date: day(2024, 8, 15, 9), Location: "Greenwood Park"},
		{ID: "2", Title: "Tech Startup Mixer", Description: "Network with founders", Type: models.EventPartner, Date: day(2024, 8, 22, 18), Location: "Innovation Hub"},
		{ID: "3", Title: "Annual Summer Festival", Description: "Music and food", Type: models.EventAttendee, Date: day(2024, 8, 30, 11), Location: "City Square"},
		{ID: "4", Title: "Open Mic Night", Description: "Share your talent", Type: models.EventAttendee, Date: day(2024, 8, 25, 19), Location: "The Daily Grind Cafe"},
	}
}

func requestIDs(rs []models.TeamRequest) []string {
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

func eventIDs(es []models.CommunityEvent) []string {
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}
	return ids
}

func TestFilterTeamRequests_NoCriteriaKeepsOrder(t *testing.T) {
	got := FilterTeamRequests(sampleRequests(), TeamRequestCriteria{})
	assert.Equal(t, []string{"1", "2", "3"}, requestIDs(got))
}

func TestFilterTeamRequests_SearchFields(t *testing.T) {
	cases := []struct {
		query string
		want  []string
	}{
		{"finance", []string{"1"}},
		{"PLAY", []string{"2"}},
		{"designer", []string{"3"}},
		{"node.JS", []string{"2"}},
		{"", []string{"1", "2", "3"}},
		{" ", []string{"1", "2", "3"}},
		{"  ", []string{}},
		{"react ", []string{}},
		{" react", []string{}},
		{"languages through", []string{"2"}},
		{"blockchain", []string{}},
	}
	for _, tc := range cases {
		got := FilterTeamRequests(sampleRequests(), TeamRequestCriteria{Query: tc.query})
		assert.Equal(t, tc.want, requestIDs(got), tc.query)
	}
}

func TestFilterTeamRequests_Skill(t *testing.T) {
	reqs := sampleRequests()
	assert.Equal(t, []string{"3"}, requestIDs(FilterTeamRequests(reqs, TeamRequestCriteria{Skill: "nextjs"})))
	assert.Equal(t, []string{"2"}, requestIDs(FilterTeamRequests(reqs, TeamRequestCriteria{Skill: "nodejs"})))
	assert.Equal(t, []string{"1"}, requestIDs(FilterTeamRequests(reqs, TeamRequestCriteria{Skill: "python"})))
	assert.Len(t, FilterTeamRequests(reqs, TeamRequestCriteria{Skill: "any"}), 3)
	assert.Empty(t, FilterTeamRequests(reqs, TeamRequestCriteria{Skill: "java"}), "java must not match javascript-like skills")
}

func TestFilterTeamRequests_DateAndWindow(t *testing.T) {
	reqs := sampleRequests()

	got := FilterTeamRequests(reqs, TeamRequestCriteria{Date: day(2024, 8, 24, 23)})
	assert.Equal(t, []string{"2"}, requestIDs(got))

	// Wednesday 2024-08-21: the coming weekend is the 24th and 25th.
	now := day(2024, 8, 21, 10)
	got = FilterTeamRequests(reqs, TeamRequestCriteria{Window: WindowWeekend, Now: now})
	assert.Equal(t, []string{"2"}, requestIDs(got))

	got = FilterTeamRequests(reqs, TeamRequestCriteria{Window: WindowMonth, Now: now})
	assert.Equal(t, []string{"1", "2"}, requestIDs(got))

	got = FilterTeamRequests(reqs, TeamRequestCriteria{Query: "a", Window: WindowMonth, Skill: "react", Now: now})
	assert.Equal(t, []string{"2"}, requestIDs(got), "criteria combine with AND")
}

func TestInWindow_Weekend(t *testing.T) {
	sat, sun, mon := day(2024, 8, 24, 12), day(2024, 8, 25, 12), day(2024, 8, 26, 12)

	assert.True(t, InWindow(sat, WindowWeekend, day(2024, 8, 24, 8), nil), "saturday covers itself")
	assert.True(t, InWindow(sun, WindowWeekend, day(2024, 8, 24, 8), nil), "saturday covers sunday")
	assert.False(t, InWindow(sat, WindowWeekend, day(2024, 8, 25, 8), nil), "sunday does not look back")
	assert.True(t, InWindow(sun, WindowWeekend, day(2024, 8, 25, 8), nil))
	assert.False(t, InWindow(mon, WindowWeekend, day(2024, 8, 21, 8), nil))
	assert.True(t, InWindow(mon, WindowAnytime, time.Time{}, nil))
}

func TestParseWindow(t *testing.T) {
	assert.Equal(t, WindowWeekend, ParseWindow(" Weekend "))
	assert.Equal(t, WindowMonth, ParseWindow("month"))
	assert.Equal(t, WindowAnytime, ParseWindow("someday"))
	assert.Equal(t, WindowAnytime, ParseWindow(""))
}

func TestFilterEvents_SortedAscending(t *testing.T) {
	got := FilterEvents(sampleEvents(), EventCriteria{Type: AllTypes})
	assert.Equal(t, []string{"1", "2", "4", "3"}, eventIDs(got))
}

func TestFilterEvents_Criteria(t *testing.T) {
	events := sampleEvents()

	assert.Equal(t, []string{"4", "3"}, eventIDs(FilterEvents(events, EventCriteria{Type: "Attendee"})))
	assert.Equal(t, []string{"4"}, eventIDs(FilterEvents(events, EventCriteria{Query: "cafe"})))
	assert.Equal(t, []string{"2"}, eventIDs(FilterEvents(events, EventCriteria{Query: "hub"})))
	assert.Empty(t, FilterEvents(events, EventCriteria{Query: "hub  "}), "spaces in the query are matched literally")
	assert.Equal(t, []string{"2"}, eventIDs(FilterEvents(events, EventCriteria{Query: "innovation hub"})))
	assert.Equal(t, []string{"2"}, eventIDs(FilterEvents(events, EventCriteria{Date: day(2024, 8, 22, 0)})))
	assert.Empty(t, FilterEvents(events, EventCriteria{Type: "Partner", Query: "festival"}))
	assert.Empty(t, FilterEvents(events, EventCriteria{Type: "partner"}), "type match is exact")
}

func TestFilterEvents_DoesNotModifyInput(t *testing.T) {
	events := sampleEvents()
	FilterEvents(events, EventCriteria{})
	assert.Equal(t, []string{"1", "2", "3", "4"}, eventIDs(events))
}

func TestSameDay_UsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	late := time.Date(2024, 8, 15, 20, 0, 0, 0, time.UTC) // 16th 05:00 in Tokyo
	assert.True(t, SameDay(late, day(2024, 8, 15, 0), time.UTC))
	assert.False(t, SameDay(late, time.Date(2024, 8, 15, 0, 0, 0, 0, tokyo), tokyo))
	assert.True(t, SameDay(late, time.Date(2024, 8, 16, 0, 0, 0, 0, tokyo), tokyo))
}

func TestFilter_EmptyCollectionGivesEmptySlice(t *testing.T) {
	assert.NotNil(t, FilterTeamRequests(nil, TeamRequestCriteria{}))
	assert.NotNil(t, FilterEvents(nil, EventCriteria{}))
}
