package forms

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/vibex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 8, 10, 15, 30, 0, 0, time.UTC)

func validTeamRequest() TeamRequestForm {
	return TeamRequestForm{
		ProjectName:        "AI Personal Finance Advisor",
		ProjectDescription: "An app that uses generative AI to give budgeting advice.",
		HackathonDate:      "2024-08-24",
		Skills:             "React, Python, ,GenAI",
		Roles:              "Frontend Developer,  ,UI/UX Designer",
	}
}

func TestTeamRequestForm_Valid(t *testing.T) {
	f := validTeamRequest()
	assert.Nil(t, f.Validate(today))
	assert.Equal(t, []string{"React", "Python", "GenAI"}, f.SkillList())
	assert.Equal(t, []string{"Frontend Developer", "UI/UX Designer"}, f.RoleList())

	d, err := f.Date(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 8, 24, 0, 0, 0, 0, time.UTC), d)
}

func TestTeamRequestForm_ShortNameRejected(t *testing.T) {
	f := validTeamRequest()
	f.ProjectName = "AI"

	errs := f.Validate(today)
	require.Len(t, errs, 1)
	assert.Equal(t, "projectName", errs[0].Field)
	assert.Equal(t, "Hackathon name must be at least 3 characters.", errs[0].Message)
}

func TestTeamRequestForm_EveryFieldReported(t *testing.T) {
	errs := TeamRequestForm{Skills: " , ,"}.Validate(today)

	assert.Equal(t, map[string]string{
		"projectName":        "Hackathon name must be at least 3 characters.",
		"projectDescription": "Description must be at least 20 characters.",
		"hackathonDate":      "A date for the hackathon is required.",
		"skills":             "Please specify at least one skill.",
	}, errs.Map())
	assert.Equal(t, "projectName", errs[0].Field, "errors keep form order")
}

func TestTeamRequestForm_Dates(t *testing.T) {
	f := validTeamRequest()

	f.HackathonDate = "2024-08-10"
	assert.Nil(t, f.Validate(today), "today is allowed")

	f.HackathonDate = "2024-08-09"
	errs := f.Validate(today)
	assert.Equal(t, "The hackathon date cannot be in the past.", errs.For("hackathonDate"))

	f.HackathonDate = "24/08/2024"
	assert.Equal(t, "Please pick a valid date.", f.Validate(today).For("hackathonDate"))
}

func TestTeamRequestForm_PastDateKeepsFieldOrder(t *testing.T) {
	f := validTeamRequest()
	f.ProjectName = "AI"
	f.HackathonDate = "2024-01-01"
	f.Skills = ""

	errs := f.Validate(today)
	require.Len(t, errs, 3)
	assert.Equal(t, []string{"projectName", "hackathonDate", "skills"},
		[]string{errs[0].Field, errs[1].Field, errs[2].Field})
}

func TestTeamRequestForm_MinCountsCharactersNotBytes(t *testing.T) {
	f := validTeamRequest()
	f.ProjectName = "日本語"
	assert.False(t, f.Validate(today).Has("projectName"))
}

func TestEventForm(t *testing.T) {
	f := EventForm{
		Title:       "Beach Cleanup",
		Description: "Help us clean the bay this weekend.",
		Type:        "volunteer",
		Date:        "2024-09-01",
		Location:    "Bay Beach",
		Contact:     "bay@example.com",
	}
	assert.Nil(t, f.Validate())
	assert.Equal(t, models.EventVolunteer, f.EventType())

	f.Type = "Sponsor"
	f.Title = "Hi"
	errs := f.Validate()
	assert.Equal(t, "Type must be Partner, Volunteer or Attendee.", errs.For("type"))
	assert.Equal(t, "Title must be at least 3 characters.", errs.For("title"))

	errs = EventForm{}.Validate()
	assert.Len(t, errs, 6)
}

func TestProfileForm(t *testing.T) {
	u := models.User{Name: "Jane Doe", Email: "jane@x.com", Skills: []string{"Go", "React"}}
	f := ProfileFormFrom(u)
	assert.Equal(t, "Go, React", f.Skills)
	assert.Nil(t, f.Validate())

	f.Bio = strings.Repeat("x", 301)
	f.AvatarURL = "not a url"
	errs := f.Validate()
	assert.Equal(t, "Bio must be at most 300 characters.", errs.For("bio"))
	assert.Equal(t, "Avatar must be a valid URL.", errs.For("avatarUrl"))

	f = ProfileForm{Name: "Jane", Skills: " , "}
	got := f.Patch().Apply(u)
	assert.Equal(t, []string{}, got.Skills, "clearing skills empties the list")
	assert.Equal(t, "jane@x.com", got.Email)
}

func TestCredentialForms(t *testing.T) {
	errs := SignupForm{Email: "nope", Password: "short"}.Validate()
	assert.Equal(t, "Please enter a valid email address.", errs.For("email"))
	assert.Equal(t, "Password must be at least 8 characters.", errs.For("password"))

	assert.Nil(t, LoginForm{Email: "jane.doe@x.com", Password: "12345678"}.Validate())
	assert.True(t, LoginForm{}.Validate().Has("email"))
}

func TestBind(t *testing.T) {
	values := url.Values{
		"projectName":   {"  Gamified Language Learning "},
		"skills":        {"Python,Flask"},
		"hackathonDate": {"2024-09-01", "ignored"},
		"unknown":       {"x"},
	}

	var f TeamRequestForm
	Bind(values, &f)
	f.Normalize()

	assert.Equal(t, "Gamified Language Learning", f.ProjectName)
	assert.Equal(t, "Python,Flask", f.Skills)
	assert.Equal(t, "2024-09-01", f.HackathonDate)
	assert.Empty(t, f.Roles)

	Bind(values, f) // non-pointer is ignored
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a ,, b c ,"))
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	assert.Equal(t, "a: bad; b: worse", errs.Error())
	assert.Equal(t, "", errs.For("c"))
}
