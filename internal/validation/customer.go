package validation

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
)

// CustomerCreate normalizes req and checks it. Status defaults to active.
func (e *Engine) CustomerCreate(ctx context.Context, req dto.CreateCustomerRequest) (dto.CreateCustomerRequest, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = normalizeEmail(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))

	r := newReport()
	e.structural(req, r)
	checkPassword("cus_password", req.Password, r)
	checkConfirm(req.Password, "cus_confirm_password", req.ConfirmPassword, r)

	if err := unique(ctx, e.customers, r, "cus_email", "cus_email", req.Email, 0); err != nil {
		return req, err
	}
	if err := unique(ctx, e.customers, r, "cus_phone_number", "cus_phone_number", req.PhoneNumber, 0); err != nil {
		return req, err
	}

	if req.Status == "" {
		req.Status = models.CustomerActive
	}
	return req, r.err()
}

// CustomerUpdate checks the present fields of req, excluding id from
// uniqueness lookups.
func (e *Engine) CustomerUpdate(ctx context.Context, id uint, req dto.UpdateCustomerRequest) (dto.UpdateCustomerRequest, error) {
	trimPtr(req.FirstName)
	trimPtr(req.LastName)
	trimPtr(req.PhoneNumber)
	if req.Email != nil {
		v := normalizeEmail(*req.Email)
		req.Email = &v
	}
	if req.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*req.Status))
		req.Status = &v
	}

	r := newReport()
	e.structural(req, r)
	if req.Password != nil {
		checkPassword("cus_password", *req.Password, r)
	}

	if err := unique(ctx, e.customers, r, "cus_email", "cus_email", deref(req.Email), id); err != nil {
		return req, err
	}
	if err := unique(ctx, e.customers, r, "cus_phone_number", "cus_phone_number", deref(req.PhoneNumber), id); err != nil {
		return req, err
	}
	return req, r.err()
}

func (e *Engine) Login(req dto.LoginRequest) (dto.LoginRequest, error) {
	req.Email = normalizeEmail(req.Email)
	r := newReport()
	e.structural(req, r)
	return req, r.err()
}

func (e *Engine) ForgotPassword(req dto.ForgotPasswordRequest) (dto.ForgotPasswordRequest, error) {
	req.Email = normalizeEmail(req.Email)
	r := newReport()
	e.structural(req, r)
	return req, r.err()
}

// ResetPassword checks structure and strength only. Whether the two
// passwords match is decided after the token is resolved.
func (e *Engine) ResetPassword(req dto.ResetPasswordRequest) (dto.ResetPasswordRequest, error) {
	req.ResetToken = strings.TrimSpace(req.ResetToken)
	r := newReport()
	e.structural(req, r)
	checkPassword("new_password", req.NewPassword, r)
	return req, r.err()
}

func (e *Engine) Refresh(req dto.RefreshRequest) (dto.RefreshRequest, error) {
	req.RefreshToken = strings.TrimSpace(req.RefreshToken)
	r := newReport()
	e.structural(req, r)
	return req, r.err()
}

// IsUniqueOnly reports whether err is a violation set made only of
// uniqueness failures.
func IsUniqueOnly(err error) bool {
	var ae *apperr.Error
	return errors.As(err, &ae) && ae.Kind == apperr.KindConflict && len(ae.Fields) > 0
}
