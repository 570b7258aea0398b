package listing

import (
	"time"

	"github.com/bobmcallan/vibex/internal/forms"
	"github.com/bobmcallan/vibex/internal/models"
	"github.com/google/uuid"
)

// Submit validates form and appends the resulting request authored
// by author. Field errors leave the board untouched and are returned with a
// nil error. now supplies CreatedAt and, with its location, "today".
func (b *TeamRequestBoard) Submit(form forms.TeamRequestForm, author *models.User, now time.Time) (models.TeamRequest, forms.FieldErrors, error) {
	if author == nil {
		return models.TeamRequest{}, nil, ErrNoAuthor
	}

	form.Normalize()
	if errs := form.Validate(now); errs != nil {
		return models.TeamRequest{}, errs, nil
	}

	date, err := form.Date(now.Location())
	if err != nil {
		return models.TeamRequest{}, forms.FieldErrors{{Field: "hackathonDate", Message: "Please pick a valid date."}}, nil
	}

	r := models.TeamRequest{
		ID:                 uuid.New().String(),
		ProjectName:        form.ProjectName,
		ProjectDescription: form.ProjectDescription,
		Roles:              emptyIfNil(form.RoleList()),
		Skills:             form.SkillList(),
		Author: models.Author{
			Name:      author.Name,
			AvatarURL: author.AvatarURL,
		},
		CreatedAt:     now,
		HackathonDate: date,
	}
	if err := b.Append(r); err != nil {
		return models.TeamRequest{}, nil, err
	}
	return r, nil, nil
}

// Submit validates form and prepends the resulting event. The date is
// midnight in loc.
func (b *EventBoard) Submit(form forms.EventForm, loc *time.Location) (models.CommunityEvent, forms.FieldErrors, error) {
	form.Normalize()
	if errs := form.Validate(); errs != nil {
		return models.CommunityEvent{}, errs, nil
	}

	date, err := form.EventDate(locationOrUTC(loc))
	if err != nil {
		return models.CommunityEvent{}, forms.FieldErrors{{Field: "date", Message: "Please pick a valid date."}}, nil
	}

	e := models.CommunityEvent{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Description: form.Description,
		Type:        form.EventType(),
		Date:        date,
		Location:    form.Location,
		Contact:     form.Contact,
	}
	if err := b.Prepend(e); err != nil {
		return models.CommunityEvent{}, nil, err
	}
	return e, nil, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
