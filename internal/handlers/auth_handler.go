package handlers

import (
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	r           *Responder
}

func NewAuthHandler(authService *services.AuthService, r *Responder) *AuthHandler {
	return &AuthHandler{authService: authService, r: r}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	resp, err := h.authService.Signup(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "signup_success", "Customer signed up successfully", resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "login_success", "Login successful", resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	resp, err := h.authService.Refresh(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "token_refreshed", "Token refreshed successfully", resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	cusID, _, err := middleware.CustomerID(c)
	if err != nil {
		return h.r.Fail(c, services.ErrInvalidOrExpiredToken)
	}

	if err := h.authService.Logout(c.UserContext(), cusID); err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "logout_success", "Logged out successfully", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	cusID, raw, err := middleware.CustomerID(c)
	if err != nil {
		return h.r.Fail(c, services.ErrInvalidOrExpiredToken)
	}

	customer, err := h.authService.Me(c.UserContext(), cusID, raw)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "profile_fetched", "Profile fetched successfully", services.CustomerView(customer))
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	resp, err := h.authService.ForgotPassword(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "reset_token_issued", "Password reset token generated", resp)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	if err := h.authService.ResetPassword(c.UserContext(), req); err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "password_reset", "Password reset successfully", nil)
}
