package dto

type CreateQuestionRequest struct {
	CategoryId uint   `json:"category_id" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type UpdateQuestionRequest struct {
	Id         uint
	CategoryId uint   `json:"category_id" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	// Omitted means "leave the flag as it is".
	IsActive *bool `json:"is_active"`
}

type QuestionResponse struct {
	Id         uint   `json:"id"`
	CategoryId uint   `json:"category_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	IsActive   bool   `json:"is_active"`
}

type DeleteQuestionResponse struct {
	Message string            `json:"message"`
	Deleted *QuestionResponse `json:"deleted"`
}
