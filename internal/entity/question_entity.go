package entity

// Question belongs to exactly one Category. Only questions with
// IsActive=true are ever shown to end users.
type Question struct {
	Id         uint
	CategoryId uint
	Question   string
	Answer     string
	IsActive   bool
}
