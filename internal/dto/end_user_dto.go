package dto

import "time"

type CreateEndUserRequest struct {
	Rut                string  `json:"rut" validate:"required"`
	InstitutionalEmail string  `json:"institutional_email" validate:"required,email"`
	Gender             *string `json:"gender"`
	FirstName          string  `json:"first_name" validate:"required"`
	LastName           string  `json:"last_name" validate:"required"`
	Phone              *string `json:"phone"`
	ModalityId         uint    `json:"modality_id" validate:"required"`
}

type UpdateEndUserRequest struct {
	Rut                string  `json:"rut"`
	InstitutionalEmail string  `json:"institutional_email" validate:"omitempty,email"`
	Gender             *string `json:"gender"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Phone              *string `json:"phone"`
	ModalityId         uint    `json:"modality_id"`
}

type EndUserResponse struct {
	Rut                string    `json:"rut"`
	InstitutionalEmail string    `json:"institutional_email"`
	Gender             *string   `json:"gender"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Phone              *string   `json:"phone"`
	ModalityId         uint      `json:"modality_id"`
	CreatedAt          time.Time `json:"created_at"`
}

type DeleteEndUserResponse struct {
	Message string           `json:"message"`
	Deleted *EndUserResponse `json:"deleted"`
}
