package models

// Enrollment is one user's registration record for an event, as the
// enrollments endpoint returns it (with denormalized user fields).
type Enrollment struct {
	UserID               int64    `json:"user_id"`
	EventID              int64    `json:"event_id,omitempty"`
	Attended             FlexBool `json:"attended"`
	Description          string   `json:"description"`
	Observations         string   `json:"observations"`
	Rating               int      `json:"rating"`
	RegistrationDateTime DateTime `json:"registration_date_time"`
	FirstName            string   `json:"first_name,omitempty"`
	LastName             string   `json:"last_name,omitempty"`
	Username             string   `json:"username,omitempty"`
}

// EnrollmentInput carries the optional fields of an enroll request.
// Missing fields are defaulted by the API layer before sending.
type EnrollmentInput struct {
	Description  string
	Attended     FlexBool
	Observations string
	Rating       int
}
