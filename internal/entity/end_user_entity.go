package entity

import "time"

// EndUser is a registered student, keyed by RUT (Chilean national id).
// Not to be confused with AdminUser, which logs into the dashboard.
type EndUser struct {
	Rut                string
	InstitutionalEmail string
	Gender             *string
	FirstName          string
	LastName           string
	Phone              *string
	ModalityId         uint
	CreatedAt          time.Time
}
