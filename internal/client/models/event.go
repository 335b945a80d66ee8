package models

// Event is the backend representation of an event, including the
// denormalized display fields the list/detail endpoints attach.
type Event struct {
	ID                   int64        `json:"id"`
	Name                 string       `json:"name"`
	NombreAlt            string       `json:"evento_nombre,omitempty"`
	Description          string       `json:"description"`
	IDEventCategory      int64        `json:"id_event_category"`
	IDEventLocation      int64        `json:"id_event_location"`
	StartDate            DateTime     `json:"start_date"`
	DurationInMinutes    int          `json:"duration_in_minutes"`
	Price                float64      `json:"price"`
	EnabledForEnrollment FlexBool     `json:"enabled_for_enrollment"`
	MaxAssistance        int          `json:"max_assistance"`
	IDCreatorUser        int64        `json:"id_creator_user"`
	CreatorFirstName     string       `json:"creator_first_name,omitempty"`
	CreatorLastName      string       `json:"creator_last_name,omitempty"`
	LocationName         string       `json:"location_name,omitempty"`
	Enrollments          []Enrollment `json:"enrollments,omitempty"`
}

// DisplayName prefers the localized name column some endpoints return
// over the plain one.
func (e *Event) DisplayName() string {
	if e.NombreAlt != "" {
		return e.NombreAlt
	}
	return e.Name
}

// HasEnrollment reports whether the given user appears in the embedded
// enrollments of a detail response.
func (e *Event) HasEnrollment(userID int64) bool {
	for _, en := range e.Enrollments {
		if en.UserID == userID {
			return true
		}
	}
	return false
}

// EventInput is the payload for creating or updating an event. The
// enrollment flag always serializes as 0 or 1 via FlexBool.
type EventInput struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	IDEventCategory      int64    `json:"id_event_category"`
	IDEventLocation      int64    `json:"id_event_location"`
	StartDate            string   `json:"start_date"`
	DurationInMinutes    int      `json:"duration_in_minutes"`
	Price                float64  `json:"price"`
	EnabledForEnrollment FlexBool `json:"enabled_for_enrollment"`
	MaxAssistance        int      `json:"max_assistance"`
}
