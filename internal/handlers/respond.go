package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/i18n"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

var (
	errInvalidBody   = apperr.New(apperr.KindValidation, "invalid_request_body", "Invalid request body")
	errInvalidID     = apperr.New(apperr.KindNotFound, "invalid_id", "Record not found with specified ID")
	errRouteNotFound = apperr.New(apperr.KindNotFound, "route_not_found", "Route not found")
)

// Responder writes the JSON envelopes shared by every handler.
type Responder struct {
	translator   *i18n.Translator
	defaultLimit int
	maxLimit     int
}

func NewResponder(translator *i18n.Translator, cfg *config.Config) *Responder {
	return &Responder{
		translator:   translator,
		defaultLimit: cfg.DefaultPageLimit,
		maxLimit:     cfg.MaxPageLimit,
	}
}

func (r *Responder) t(c *fiber.Ctx, id, fallback string, data map[string]any) string {
	return r.translator.Localize(c.Get(fiber.HeaderAcceptLanguage), id, fallback, data)
}

func (r *Responder) OK(c *fiber.Ctx, status int, id, fallback string, data any) error {
	return c.Status(status).JSON(dto.Response{
		Status:  status,
		Message: r.t(c, id, fallback, nil),
		Data:    data,
	})
}

func respondPage[T any](r *Responder, c *fiber.Ctx, id, fallback string, page *store.Page[T]) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{
		Status:  fiber.StatusOK,
		Message: r.t(c, id, fallback, nil),
		Data:    page.Data,
		Pagination: &dto.Pagination{
			Total:    page.Total,
			Page:     page.Page,
			PerPage:  page.Limit,
			LastPage: page.TotalPages,
		},
	})
}

// Fail maps err to a status code. Anything that is not a typed failure is
// logged and reported as a generic 500.
func (r *Responder) Fail(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind == apperr.KindStorage {
		return r.internal(c, err)
	}

	status := statusFor(ae.Kind)
	resp := dto.ErrorResponse{Status: status}

	if len(ae.Fields) > 0 {
		violations := make([]dto.FieldViolation, len(ae.Fields))
		messages := make([]string, len(ae.Fields))
		for i, f := range ae.Fields {
			msg := r.t(c, f.Code, f.Message, f.Params)
			violations[i] = dto.FieldViolation{Field: f.Field, Message: msg}
			messages[i] = msg
		}
		resp.Message = strings.Join(messages, ", ")
		resp.Error = violations
	} else {
		resp.Message = r.t(c, ae.Code, ae.Message, ae.Params)
		if len(ae.Details) > 0 {
			resp.Error = ae.Details
		}
	}

	return c.Status(status).JSON(resp)
}

func (r *Responder) internal(c *fiber.Ctx, err error) error {
	slog.Error("request failed",
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Status:  fiber.StatusInternalServerError,
		Message: r.t(c, "internal_error", "Internal server error", nil),
	})
}

func (r *Responder) BadBody(c *fiber.Ctx) error {
	return r.Fail(c, errInvalidBody)
}

// Paging reads page and limit query params, clamping limit to the
// configured maximum.
func (r *Responder) Paging(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", r.defaultLimit)
	if limit < 1 {
		limit = r.defaultLimit
	}
	if r.maxLimit > 0 && limit > r.maxLimit {
		limit = r.maxLimit
	}
	return page, limit
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return fiber.StatusBadRequest
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 0)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// RouteNotFound answers requests that matched no route.
func (r *Responder) RouteNotFound(c *fiber.Ctx) error {
	return r.Fail(c, errRouteNotFound)
}

func (r *Responder) TooManyRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
		Status:  fiber.StatusTooManyRequests,
		Message: r.t(c, "too_many_requests", "Too many requests, please try again later", nil),
	})
}
