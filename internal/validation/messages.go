package validation

import (
	"reflect"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/go-playground/validator/v10"
)

var labels = map[string]string{
	"cus_firstname":        "First name",
	"cus_lastname":         "Last name",
	"cus_email":            "Email",
	"cus_phone_number":     "Phone number",
	"cus_password":         "Password",
	"cus_confirm_password": "Confirm password",
	"cus_status":           "Status",
	"cus_id":               "Customer ID",
	"emp_name":             "Employee name",
	"emp_email":            "Email",
	"emp_password":         "Password",
	"emp_company_name":     "Company name",
	"emp_mobile_number":    "Mobile number",
	"emp_id":               "emp_id",
	"emp_ids":              "emp_ids",
	"job_id":               "job_id",
	"job_name":             "Job name",
	"job_sku":              "Job SKU",
	"job_category":         "Job category",
	"reset_token":          "Reset token",
	"new_password":         "New password",
	"confirm_password":     "Confirm password",
	"refresh_token":        "Refresh token",
}

func labelFor(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 {
		field = field[:i]
	}
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

// describe turns a validator failure into a field violation with an
// English message and the params used by translated catalogs.
func describe(fe validator.FieldError) apperr.FieldError {
	field := fe.Field()
	label := labelFor(field)
	param := fe.Param()
	out := apperr.FieldError{
		Field:  field,
		Code:   fe.Tag(),
		Params: map[string]any{"Field": label, "Param": param},
	}

	switch fe.Tag() {
	case "required":
		out.Message = label + " is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			out.Code = "min_items"
			out.Message = label + " array cannot be empty"
		} else {
			out.Message = label + " must be at least " + param + " characters"
		}
	case "max":
		out.Message = label + " must be at most " + param + " characters"
	case "len":
		out.Message = label + " must be exactly " + param + " digits"
	case "email":
		out.Message = "Invalid email address"
	case "alphaspace":
		out.Message = label + " must not contain numbers or special characters"
	case "digits":
		out.Message = label + " must contain only digits"
	case "oneof":
		param = strings.ReplaceAll(param, " ", ", ")
		out.Params["Param"] = param
		out.Message = label + " must be one of: " + param
	case "gt":
		out.Message = label + " must be a positive number"
	default:
		out.Code = "invalid"
		out.Message = label + " is invalid"
	}
	return out
}
