package dto

import "time"

type CreateRatingRequest struct {
	Rut     string  `json:"rut" validate:"required"`
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type UpdateRatingRequest struct {
	Id      uint
	Rut     string  `json:"rut" validate:"required"`
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type RatingResponse struct {
	Id      uint      `json:"id"`
	Score   int       `json:"score"`
	Comment *string   `json:"comment"`
	Date    time.Time `json:"date"`
	Rut     string    `json:"rut"`
}

// EnrichedRatingResponse is the rating joined with its author and
// modality, the shape the dashboard table and the realtime feed expect.
// The Spanish keys are part of the frontend contract.
type EnrichedRatingResponse struct {
	Id         uint      `json:"id"`
	Score      int       `json:"score"`
	Comment    *string   `json:"comment"`
	Date       time.Time `json:"date"`
	Rut        string    `json:"rut"`
	Nombre     string    `json:"nombre"`
	Correo     string    `json:"correo"`
	RutUsuario string    `json:"rut_usuario"`
	Modalidad  string    `json:"modalidad"`
}

type DeleteRatingResponse struct {
	Message string          `json:"message"`
	Deleted *RatingResponse `json:"deleted"`
}
