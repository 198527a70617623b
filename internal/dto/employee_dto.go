package dto

type CreateEmployeeRequest struct {
	Name         string `json:"emp_name" validate:"required,min=2,max=100"`
	Email        string `json:"emp_email" validate:"required,email"`
	Password     string `json:"emp_password" validate:"required,min=8"`
	CompanyName  string `json:"emp_company_name" validate:"required,min=2,max=100"`
	CusID        uint   `json:"cus_id" validate:"required,gt=0"`
	MobileNumber string `json:"emp_mobile_number" validate:"required,min=10,max=15,digits"`
}

type UpdateEmployeeRequest struct {
	Name         *string `json:"emp_name" validate:"omitempty,min=2,max=100"`
	Email        *string `json:"emp_email" validate:"omitempty,email"`
	Password     *string `json:"emp_password" validate:"omitempty,min=8"`
	CompanyName  *string `json:"emp_company_name" validate:"omitempty,min=2,max=100"`
	CusID        *uint   `json:"cus_id" validate:"omitempty,gt=0"`
	MobileNumber *string `json:"emp_mobile_number" validate:"omitempty,min=10,max=15,digits"`
}
