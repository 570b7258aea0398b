package models

// User is the session principal. Its JSON form is the persisted snapshot.
type User struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// UserPatch carries the fields of a profile update. Nil fields are left as
// they are.
type UserPatch struct {
	Name      *string
	Email     *string
	AvatarURL *string
	Bio       *string
	Skills    []string
}

// Apply returns a copy of u with the non-nil patch fields merged in.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Skills != nil {
		u.Skills = append([]string(nil), p.Skills...)
	}
	return u
}
