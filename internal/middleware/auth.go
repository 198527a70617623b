package middleware

import (
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/token"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Unauthorized: invalid or expired token",
	})
}

// JWTProtected accepts only access tokens signed with the configured secret.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			claims, err := claimsFrom(c)
			if err != nil || claims["typ"] != token.TypeAccess {
				return unauthorized(c)
			}
			return c.Next()
		},
	})
}

func claimsFrom(c *fiber.Ctx) (jwt.MapClaims, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// CustomerID extracts the authenticated customer id and the raw bearer token.
func CustomerID(c *fiber.Ctx) (uint, string, error) {
	claims, err := claimsFrom(c)
	if err != nil {
		return 0, "", err
	}
	id, ok := claims["cus_id"].(float64)
	if !ok || id <= 0 {
		return 0, "", errors.New("missing cus_id claim")
	}

	tok := c.Locals("user").(*jwt.Token)
	raw := tok.Raw
	if raw == "" {
		raw = strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer"))
	}
	return uint(id), raw, nil
}
