package validation

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
)

func (e *Engine) EmployeeCreate(ctx context.Context, req dto.CreateEmployeeRequest) (dto.CreateEmployeeRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)

	r := newReport()
	e.structural(req, r)
	checkPassword("emp_password", req.Password, r)

	if err := e.ownerExists(ctx, req.CusID, r); err != nil {
		return req, err
	}
	if err := unique(ctx, e.employees, r, "emp_email", "emp_email", req.Email, 0); err != nil {
		return req, err
	}
	if err := unique(ctx, e.employees, r, "emp_mobile_number", "emp_mobile_number", req.MobileNumber, 0); err != nil {
		return req, err
	}
	return req, r.err()
}

func (e *Engine) EmployeeUpdate(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (dto.UpdateEmployeeRequest, error) {
	trimPtr(req.Name)
	trimPtr(req.CompanyName)
	trimPtr(req.MobileNumber)
	if req.Email != nil {
		v := normalizeEmail(*req.Email)
		req.Email = &v
	}

	r := newReport()
	e.structural(req, r)
	if req.Password != nil {
		checkPassword("emp_password", *req.Password, r)
	}
	if req.CusID != nil {
		if err := e.ownerExists(ctx, *req.CusID, r); err != nil {
			return req, err
		}
	}

	if err := unique(ctx, e.employees, r, "emp_email", "emp_email", deref(req.Email), id); err != nil {
		return req, err
	}
	if err := unique(ctx, e.employees, r, "emp_mobile_number", "emp_mobile_number", deref(req.MobileNumber), id); err != nil {
		return req, err
	}
	return req, r.err()
}

// ownerExists requires cus_id to reference a stored customer.
func (e *Engine) ownerExists(ctx context.Context, cusID uint, r *report) error {
	if cusID == 0 || !r.ok("cus_id") {
		return nil
	}
	ok, err := e.customers.Exists(ctx, cusID)
	if err != nil {
		return err
	}
	if !ok {
		r.add(apperr.FieldError{
			Field:   "cus_id",
			Code:    "customer_missing",
			Message: "Customer does not exist",
			Params:  map[string]any{"Field": labelFor("cus_id")},
		})
	}
	return nil
}
