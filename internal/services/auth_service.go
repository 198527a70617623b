package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/password"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/token"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	cfg       *config.Config
	customers *store.Repo[models.Customer]
	auths     *store.Repo[models.CustomerAuth]
	engine    *validation.Engine
	hasher    password.Hasher
	tokens    token.Service
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config, engine *validation.Engine, hasher password.Hasher, tokens token.Service, m *metrics.Metrics) *AuthService {
	return &AuthService{
		db:        db,
		cfg:       cfg,
		customers: store.NewRepo[models.Customer](db),
		auths:     store.NewRepo[models.CustomerAuth](db),
		engine:    engine,
		hasher:    hasher,
		tokens:    tokens,
		metrics:   m,
		now:       time.Now,
	}
}

// Signup creates an active customer with its auth record and returns a
// fresh token pair.
func (s *AuthService) Signup(ctx context.Context, req dto.CreateCustomerRequest) (*dto.AuthResponse, error) {
	req, err := s.engine.CustomerCreate(ctx, req)
	if err != nil {
		if validation.IsUniqueOnly(err) {
			return nil, ErrEmailOrPhoneExists.With(err)
		}
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	customer := &models.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hash,
		Status:      models.CustomerActive,
	}

	var resp *dto.AuthResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.customers.WithTx(tx).Create(ctx, customer); err != nil {
			return err
		}
		pair, auth, err := s.issuePair(customer)
		if err != nil {
			return err
		}
		if err := s.auths.WithTx(tx).Create(ctx, auth); err != nil {
			return err
		}
		resp = pair
		return nil
	})
	if errors.Is(err, store.ErrConstraintViolation) {
		return nil, ErrEmailOrPhoneExists.With(err)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.Event("customer_signup")
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	req, err := s.engine.Login(req)
	if err != nil {
		return nil, err
	}

	customer, ok, err := s.customers.FindOne(ctx, map[string]any{"cus_email": req.Email})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmailNotFound
	}
	if !s.hasher.Verify(req.Password, customer.Password) {
		return nil, ErrInvalidCredentials
	}
	if customer.Status == models.CustomerBlocked {
		return nil, ErrAccountBlocked
	}

	resp, err := s.rotate(ctx, customer)
	if err != nil {
		return nil, err
	}
	s.metrics.Event("customer_login")
	return resp, nil
}

// Refresh exchanges a valid refresh token for a new pair. The presented
// token must be the one currently stored for the customer.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error) {
	req, err := s.engine.Refresh(req)
	if err != nil {
		return nil, err
	}

	claims, err := s.tokens.Verify(req.RefreshToken)
	if err != nil || claims.Type != token.TypeRefresh {
		return nil, ErrInvalidOrExpiredToken
	}

	auth, ok, err := s.auths.FindOne(ctx, map[string]any{"cus_refresh_auth_token": hashToken(req.RefreshToken)})
	if err != nil {
		return nil, err
	}
	if !ok || auth.CusID != claims.CustomerID {
		return nil, ErrInvalidOrExpiredToken
	}

	customer, ok, err := s.customers.GetByID(ctx, auth.CusID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidOrExpiredToken
	}
	if customer.Status == models.CustomerBlocked {
		return nil, ErrAccountBlocked
	}

	return s.rotate(ctx, customer)
}

// Logout revokes the customer's stored access and refresh tokens.
func (s *AuthService) Logout(ctx context.Context, cusID uint) error {
	return revokeTokens(s.db.WithContext(ctx), cusID)
}

// Me returns the customer owning rawAccess if that token has not been
// replaced or revoked since it was issued.
func (s *AuthService) Me(ctx context.Context, cusID uint, rawAccess string) (*models.Customer, error) {
	auth, ok, err := s.auths.FindOne(ctx, map[string]any{"cus_id": cusID})
	if err != nil {
		return nil, err
	}
	if !ok || auth.AccessTokenHash == "" || auth.AccessTokenHash != hashToken(rawAccess) {
		return nil, ErrInvalidOrExpiredToken
	}

	customer, ok, err := s.customers.GetByID(ctx, cusID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}
	if customer.Status == models.CustomerBlocked {
		return nil, ErrAccountBlocked
	}
	return customer, nil
}

// ForgotPassword issues a single-use reset token valid for ResetTokenExpiry.
// Only its hash is stored.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	req, err := s.engine.ForgotPassword(req)
	if err != nil {
		return nil, err
	}

	customer, ok, err := s.customers.FindOne(ctx, map[string]any{"cus_email": req.Email})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmailNotFound
	}

	raw, err := randomToken()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	hash := hashToken(raw)
	expires := s.now().Add(s.cfg.ResetTokenExpiry).UTC()

	auth := &models.CustomerAuth{CusID: customer.ID, ResetTokenHash: &hash, ResetExpiresAt: &expires}
	if err := s.auths.Upsert(ctx, auth, []string{"cus_id"},
		[]string{"reset_password_token", "reset_password_expires", "updated_at"}); err != nil {
		return nil, err
	}

	s.metrics.Event("password_reset_requested")
	return &dto.ForgotPasswordResponse{ResetToken: raw, ExpiresAt: expires.Format(time.RFC3339)}, nil
}

// ResetPassword sets a new password for the holder of a live reset token
// and consumes the token.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	req, err := s.engine.ResetPassword(req)
	if err != nil {
		return err
	}

	digest := hashToken(req.ResetToken)
	auth, ok, err := s.auths.FindOne(ctx, map[string]any{"reset_password_token": digest})
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOrExpiredToken
	}
	if auth.ResetExpiresAt == nil || s.now().After(*auth.ResetExpiresAt) {
		if _, err := s.consumeReset(s.db.WithContext(ctx), auth.CusID, digest); err != nil {
			return err
		}
		return ErrInvalidOrExpiredToken
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return apperr.Storage(err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only the request that clears the token may set the password.
		consumed, err := s.consumeReset(tx, auth.CusID, digest)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrInvalidOrExpiredToken
		}
		if err := tx.Model(&models.Customer{}).Where("cus_id = ?", auth.CusID).
			Update("cus_password", hash).Error; err != nil {
			return apperr.Storage(err)
		}
		return revokeTokens(tx, auth.CusID)
	})
	if err != nil {
		return err
	}

	s.metrics.Event("password_reset")
	return nil
}

// consumeReset clears the reset token of cusID if it still equals digest and
// reports whether this call cleared it.
func (s *AuthService) consumeReset(db *gorm.DB, cusID uint, digest string) (bool, error) {
	result := db.Model(&models.CustomerAuth{}).
		Where("cus_id = ? AND reset_password_token = ?", cusID, digest).
		Updates(map[string]any{"reset_password_token": nil, "reset_password_expires": nil})
	if result.Error != nil {
		return false, apperr.Storage(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// revokeTokens drops the stored access and refresh hashes of cusID so the
// tokens already issued stop working.
func revokeTokens(db *gorm.DB, cusID uint) error {
	err := db.Model(&models.CustomerAuth{}).
		Where("cus_id = ?", cusID).
		Updates(map[string]any{"cus_auth_token": "", "cus_refresh_auth_token": nil}).Error
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// rotate issues a new pair and overwrites the stored hashes.
func (s *AuthService) rotate(ctx context.Context, customer *models.Customer) (*dto.AuthResponse, error) {
	resp, auth, err := s.issuePair(customer)
	if err != nil {
		return nil, err
	}
	if err := s.auths.Upsert(ctx, auth, []string{"cus_id"},
		[]string{"cus_auth_token", "cus_refresh_auth_token", "updated_at"}); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) issuePair(customer *models.Customer) (*dto.AuthResponse, *models.CustomerAuth, error) {
	base := token.Claims{CustomerID: customer.ID, Email: customer.Email}

	access := base
	access.Type = token.TypeAccess
	accessToken, err := s.tokens.Issue(access, s.cfg.JWTAccessExpiry)
	if err != nil {
		return nil, nil, apperr.Storage(err)
	}

	refresh := base
	refresh.Type = token.TypeRefresh
	refreshToken, err := s.tokens.Issue(refresh, s.cfg.JWTRefreshExpiry)
	if err != nil {
		return nil, nil, apperr.Storage(err)
	}

	refreshHash := hashToken(refreshToken)
	auth := &models.CustomerAuth{
		CusID:            customer.ID,
		AccessTokenHash:  hashToken(accessToken),
		RefreshTokenHash: &refreshHash,
	}
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Customer:     CustomerView(customer),
	}, auth, nil
}

// CustomerView is the public projection of a customer.
func CustomerView(c *models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Status:      c.Status,
	}
}

func randomToken() (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(rawBytes), nil
}

func hashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h)
}
