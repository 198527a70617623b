package services

import "github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"

var (
	ErrCustomerNotFound   = apperr.New(apperr.KindNotFound, "customer_not_found", "Customer not found with specified ID")
	ErrEmployeeNotFound   = apperr.New(apperr.KindNotFound, "employee_not_found", "Employee not found with specified ID")
	ErrJobNotFound        = apperr.New(apperr.KindNotFound, "job_not_found", "Job not found with specified ID")
	ErrEmployeesNotFound  = apperr.New(apperr.KindNotFound, "employees_not_found", "These employee IDs do not exist")
	ErrAssignmentNotFound = apperr.New(apperr.KindNotFound, "assignment_not_found", "Employee has no job assignment")
	ErrEmailNotFound      = apperr.New(apperr.KindNotFound, "email_not_found", "Email does not exist")

	ErrAlreadyAssigned         = apperr.New(apperr.KindConflict, "already_assigned", "Employee is already assigned a job")
	ErrEmployeesAssigned       = apperr.New(apperr.KindConflict, "employees_already_assigned", "These employees are already assigned a job")
	ErrAlreadyAssignedCustomer = apperr.New(apperr.KindConflict, "employee_already_assigned_customer", "Employee is already assigned to this customer")
	ErrEmailOrPhoneExists      = apperr.New(apperr.KindConflict, "email_or_phone_exists", "Email or phone number already exists")
	ErrOwnEmployee             = apperr.New(apperr.KindConflict, "employee_owned_by_customer", "Employee already belongs to this customer")

	ErrInvalidCredentials    = apperr.New(apperr.KindUnauthorized, "invalid_credentials", "Invalid password")
	ErrAccountBlocked        = apperr.New(apperr.KindUnauthorized, "account_blocked", "User is not active")
	ErrInvalidOrExpiredToken = apperr.New(apperr.KindUnauthorized, "invalid_or_expired_token", "Token is invalid or expired")

	ErrPasswordMismatch = apperr.New(apperr.KindValidation, "password_mismatch", "Passwords do not match")
)
