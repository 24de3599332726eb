package dto

type CreateModalityRequest struct {
	Type string `json:"type" validate:"required"`
}

type UpdateModalityRequest struct {
	Id   uint
	Type string `json:"type" validate:"required"`
}

type ModalityResponse struct {
	Id   uint   `json:"id_modality"`
	Type string `json:"type"`
}

type DeleteModalityResponse struct {
	Message string            `json:"message"`
	Deleted *ModalityResponse `json:"deleted"`
}
