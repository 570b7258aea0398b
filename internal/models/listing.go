package models

import (
	"fmt"
	"strings"
	"time"
)

// Author is the summary of the user who posted a team request.
type Author struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// TeamRequest is a HackUp listing looking for teammates.
type TeamRequest struct {
	ID                 string    `json:"id"`
	ProjectName        string    `json:"projectName"`
	ProjectDescription string    `json:"projectDescription"`
	Roles              []string  `json:"roles"`
	Skills             []string  `json:"skills"`
	Author             Author    `json:"author"`
	CreatedAt          time.Time `json:"createdAt"`
	HackathonDate      time.Time `json:"hackathonDate"`
}

// EventType is the closed set of VConnect categories.
type EventType string

const (
	EventPartner   EventType = "Partner"
	EventVolunteer EventType = "Volunteer"
	EventAttendee  EventType = "Attendee"
)

// EventTypes lists every valid EventType in display order.
var EventTypes = []EventType{EventPartner, EventVolunteer, EventAttendee}

// Valid reports whether t is one of the enumerated types.
func (t EventType) Valid() bool {
	switch t {
	case EventPartner, EventVolunteer, EventAttendee:
		return true
	}
	return false
}

// ParseEventType matches s case-insensitively against the enumerated types.
func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// CommunityEvent is a VConnect listing.
type CommunityEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Contact     string    `json:"contact"`
}
