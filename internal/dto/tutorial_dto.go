package dto

import "time"

type CreateTutorialStatusRequest struct {
	Rut  string `json:"rut" validate:"required"`
	Seen *bool  `json:"seen" validate:"required"`
}

type UpdateTutorialStatusRequest struct {
	Id   uint
	Rut  string `json:"rut" validate:"required"`
	Seen *bool  `json:"seen" validate:"required"`
}

type TutorialStatusResponse struct {
	Id   uint      `json:"id"`
	Rut  string    `json:"rut"`
	Seen bool      `json:"seen"`
	Date time.Time `json:"date"`
}

type DeleteTutorialStatusResponse struct {
	Message string                  `json:"message"`
	Deleted *TutorialStatusResponse `json:"deleted"`
}

type TutorialCompletedRequest struct {
	Rut string `json:"rut" validate:"required"`
}

// TutorialCompletedResponse carries a Spanish "mensaje" key because the
// mobile app reads it verbatim.
type TutorialCompletedResponse struct {
	Mensaje string                  `json:"mensaje"`
	Data    *TutorialStatusResponse `json:"data"`
}

// UsersPerDayItem is one point of the dashboard signup chart. Days with
// no completions are present with a zero count.
type UsersPerDayItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
