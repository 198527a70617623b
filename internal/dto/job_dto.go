package dto

type CreateJobRequest struct {
	Name     string `json:"job_name" validate:"required,min=2,max=50"`
	SKU      string `json:"job_sku" validate:"omitempty,max=20"`
	Category string `json:"job_category" validate:"required,min=2,max=50"`
}

type UpdateJobRequest struct {
	Name     *string `json:"job_name" validate:"omitempty,min=2,max=50"`
	SKU      *string `json:"job_sku" validate:"omitempty,max=20"`
	Category *string `json:"job_category" validate:"omitempty,min=2,max=50"`
}
