package forms

import (
	"strings"
	"time"

	"github.com/bobmcallan/vibex/internal/models"
)

var eventMessages = map[string]string{
	"title.min":       "Title must be at least 3 characters.",
	"title.max":       "Title must be at most 100 characters.",
	"description.min": "Description must be at least 10 characters.",
	"description.max": "Description must be at most 500 characters.",
	"type.required":   "Please choose a request type.",
	"type.eventtype":  "Type must be Partner, Volunteer or Attendee.",
	"date.required":   "A date is required.",
	"date.datetime":   "Please pick a valid date.",
	"location.min":    "Location must be at least 2 characters.",
	"location.max":    "Location must be at most 120 characters.",
	"contact.min":     "Contact must be at least 5 characters.",
	"contact.max":     "Contact must be at most 120 characters.",
}

// EventForm is the VConnect "post a request" form.
type EventForm struct {
	Title       string `form:"title" validate:"min=3,max=100"`
	Description string `form:"description" validate:"min=10,max=500"`
	Type        string `form:"type" validate:"required,eventtype"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	Location    string `form:"location" validate:"min=2,max=120"`
	Contact     string `form:"contact" validate:"min=5,max=120"`
}

// Normalize trims surrounding whitespace from every field.
func (f *EventForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Type = strings.TrimSpace(f.Type)
	f.Date = strings.TrimSpace(f.Date)
	f.Location = strings.TrimSpace(f.Location)
	f.Contact = strings.TrimSpace(f.Contact)
}

// Validate checks the form.
func (f EventForm) Validate() FieldErrors {
	return check(f, eventMessages)
}

// EventType returns the parsed type. Call after Validate.
func (f EventForm) EventType() models.EventType {
	t, _ := models.ParseEventType(f.Type)
	return t
}

// EventDate returns the parsed date in loc. Call after Validate.
func (f EventForm) EventDate(loc *time.Location) (time.Time, error) {
	return ParseDate(f.Date, loc)
}
