package forms

import (
	"strings"

	"github.com/bobmcallan/vibex/internal/models"
)

var profileMessages = map[string]string{
	"name.min":      "Name must be at least 2 characters.",
	"name.max":      "Name must be at most 50 characters.",
	"bio.max":       "Bio must be at most 300 characters.",
	"avatarUrl.url": "Avatar must be a valid URL.",
}

// ProfileForm is the profile edit form.
type ProfileForm struct {
	Name      string `form:"name" validate:"min=2,max=50"`
	Bio       string `form:"bio" validate:"max=300"`
	AvatarURL string `form:"avatarUrl" validate:"omitempty,url"`
	Skills    string `form:"skills"`
}

// ProfileFormFrom seeds the form with u.
func ProfileFormFrom(u models.User) ProfileForm {
	return ProfileForm{
		Name:      u.Name,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		Skills:    strings.Join(u.Skills, ", "),
	}
}

// Normalize trims surrounding whitespace from every field.
func (f *ProfileForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Bio = strings.TrimSpace(f.Bio)
	f.AvatarURL = strings.TrimSpace(f.AvatarURL)
	f.Skills = strings.TrimSpace(f.Skills)
}

// Validate checks the form.
func (f ProfileForm) Validate() FieldErrors {
	return check(f, profileMessages)
}

// Patch converts the form into a session update. Email is not editable.
func (f ProfileForm) Patch() models.UserPatch {
	name, bio, avatar := f.Name, f.Bio, f.AvatarURL
	skills := SplitList(f.Skills)
	if skills == nil {
		skills = []string{}
	}
	return models.UserPatch{
		Name:      &name,
		Bio:       &bio,
		AvatarURL: &avatar,
		Skills:    skills,
	}
}

// Draft returns u with the form values applied, for re-rendering an invalid
// submission.
func (f ProfileForm) Draft(u models.User) models.User {
	return f.Patch().Apply(u)
}
