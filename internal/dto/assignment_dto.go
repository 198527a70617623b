package dto

type AssignJobRequest struct {
	EmpID uint `json:"emp_id" validate:"required,gt=0"`
	JobID uint `json:"job_id" validate:"required,gt=0"`
}

type AssignJobManyRequest struct {
	EmpIDs []uint `json:"emp_ids" validate:"required,min=1,dive,gt=0"`
	JobID  uint   `json:"job_id" validate:"required,gt=0"`
}

type AssignCustomerRequest struct {
	EmpID uint `json:"emp_id" validate:"required,gt=0"`
	CusID uint `json:"cus_id" validate:"required,gt=0"`
}
