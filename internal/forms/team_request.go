package forms

import (
	"strings"
	"time"
)

var teamRequestMessages = map[string]string{
	"projectName.min":        "Hackathon name must be at least 3 characters.",
	"projectDescription.min": "Description must be at least 20 characters.",
	"hackathonDate.required": "A date for the hackathon is required.",
	"hackathonDate.datetime": "Please pick a valid date.",
	"skills.csvlist":         "Please specify at least one skill.",
	"roles.max":              "Roles must be at most 200 characters.",
	"projectName.max":        "Hackathon name must be at most 100 characters.",
	"projectDescription.max": "Description must be at most 1000 characters.",
}

// TeamRequestForm is the HackUp "create request" form.
type TeamRequestForm struct {
	ProjectName        string `form:"projectName" validate:"min=3,max=100"`
	ProjectDescription string `form:"projectDescription" validate:"min=20,max=1000"`
	HackathonDate      string `form:"hackathonDate" validate:"required,datetime=2006-01-02"`
	Skills             string `form:"skills" validate:"csvlist"`
	Roles              string `form:"roles" validate:"max=200"`
}

// Normalize trims surrounding whitespace from every field.
func (f *TeamRequestForm) Normalize() {
	f.ProjectName = strings.TrimSpace(f.ProjectName)
	f.ProjectDescription = strings.TrimSpace(f.ProjectDescription)
	f.HackathonDate = strings.TrimSpace(f.HackathonDate)
	f.Skills = strings.TrimSpace(f.Skills)
	f.Roles = strings.TrimSpace(f.Roles)
}

// Validate checks the form. The hackathon date may not be before the calendar
// day of now, evaluated in now's location.
func (f TeamRequestForm) Validate(now time.Time) FieldErrors {
	errs := check(f, teamRequestMessages)
	if errs.Has("hackathonDate") {
		return errs
	}

	date, err := ParseDate(f.HackathonDate, now.Location())
	if err == nil && date.Before(startOfDay(now)) {
		errs = insertInOrder(errs, FieldError{Field: "hackathonDate", Message: "The hackathon date cannot be in the past."}, teamRequestFieldOrder)
	}
	return errs
}

// Date returns the parsed hackathon date in loc. Call after Validate.
func (f TeamRequestForm) Date(loc *time.Location) (time.Time, error) {
	return ParseDate(f.HackathonDate, loc)
}

// SkillList returns the cleaned skills.
func (f TeamRequestForm) SkillList() []string { return SplitList(f.Skills) }

// RoleList returns the cleaned roles.
func (f TeamRequestForm) RoleList() []string { return SplitList(f.Roles) }

var teamRequestFieldOrder = []string{"projectName", "projectDescription", "hackathonDate", "skills", "roles"}

// insertInOrder adds fe keeping errs in form field order.
func insertInOrder(errs FieldErrors, fe FieldError, order []string) FieldErrors {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	pos := len(errs)
	for i, e := range errs {
		if rank[e.Field] > rank[fe.Field] {
			pos = i
			break
		}
	}
	errs = append(errs, FieldError{})
	copy(errs[pos+1:], errs[pos:])
	errs[pos] = fe
	return errs
}
