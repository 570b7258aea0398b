package forms

import "strings"

var credentialMessages = map[string]string{
	"email.required":    "Please enter a valid email address.",
	"email.email":       "Please enter a valid email address.",
	"password.required": "Password must be at least 8 characters.",
	"password.min":      "Password must be at least 8 characters.",
}

// SignupForm is the signup form. The password is checked for shape only.
type SignupForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// Normalize trims the email. Passwords are taken as typed.
func (f *SignupForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

// Validate checks the form.
func (f SignupForm) Validate() FieldErrors {
	return check(f, credentialMessages)
}

// LoginForm is the login form. Same constraints as signup.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// Normalize trims the email.
func (f *LoginForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

// Validate checks the form.
func (f LoginForm) Validate() FieldErrors {
	return check(f, credentialMessages)
}
