package dto

type CreateCustomerRequest struct {
	FirstName       string `json:"cus_firstname" validate:"required,max=50,alphaspace"`
	LastName        string `json:"cus_lastname" validate:"required,max=50,alphaspace"`
	Email           string `json:"cus_email" validate:"required,email"`
	PhoneNumber     string `json:"cus_phone_number" validate:"required,len=10,digits"`
	Password        string `json:"cus_password" validate:"required,min=8"`
	ConfirmPassword string `json:"cus_confirm_password" validate:"required,min=8"`
	Status          string `json:"cus_status" validate:"omitempty,oneof=active inactive restricted blocked"`
}

// UpdateCustomerRequest carries only the fields present in the body.
type UpdateCustomerRequest struct {
	FirstName   *string `json:"cus_firstname" validate:"omitempty,min=2,max=50,alphaspace"`
	LastName    *string `json:"cus_lastname" validate:"omitempty,min=2,max=50,alphaspace"`
	Email       *string `json:"cus_email" validate:"omitempty,email"`
	PhoneNumber *string `json:"cus_phone_number" validate:"omitempty,len=10,digits"`
	Password    *string `json:"cus_password" validate:"omitempty,min=8"`
	Status      *string `json:"cus_status" validate:"omitempty,oneof=active inactive restricted blocked"`
}

// CustomerResponse is the public view of a customer.
type CustomerResponse struct {
	ID          uint   `json:"cus_id"`
	FirstName   string `json:"cus_firstname"`
	LastName    string `json:"cus_lastname"`
	Email       string `json:"cus_email"`
	PhoneNumber string `json:"cus_phone_number"`
	Status      string `json:"cus_status"`
}
