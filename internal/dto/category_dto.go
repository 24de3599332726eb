package dto

type CreateCategoryRequest struct {
	Name string `json:"name_category" validate:"required"`
}

type UpdateCategoryRequest struct {
	Id   uint
	Name string `json:"name_category" validate:"required"`
}

type CategoryResponse struct {
	Id   uint   `json:"id"`
	Name string `json:"name_category"`
}

type DeleteCategoryResponse struct {
	Message string            `json:"message"`
	Deleted *CategoryResponse `json:"deleted"`
}
