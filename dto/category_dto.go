package dto

type CreateCategoryDTO struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug"` // auto-generated from Name if empty
	Image string `json:"image"`
}
