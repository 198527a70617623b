package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/password"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/testutil"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/token"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type env struct {
	ctx         context.Context
	db          *gorm.DB
	cfg         *config.Config
	customers   *CustomerService
	employees   *EmployeeService
	jobs        *JobService
	assignments *AssignmentService
	auth        *AuthService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		ResetTokenExpiry: 30 * time.Minute,
	}
	engine := validation.NewEngine(db)
	hasher := password.NewBcrypt(bcrypt.MinCost)

	return &env{
		ctx:         context.Background(),
		db:          db,
		cfg:         cfg,
		customers:   NewCustomerService(db, engine, hasher, nil),
		employees:   NewEmployeeService(db, engine, hasher, nil),
		jobs:        NewJobService(db, engine, nil),
		assignments: NewAssignmentService(db, nil),
		auth:        NewAuthService(db, cfg, engine, hasher, token.NewJWTService(cfg.JWTSecret), nil),
	}
}

func janeDoe() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PhoneNumber:     "1234567890",
		Password:        "Passw0rd!",
		ConfirmPassword: "Passw0rd!",
	}
}

func (e *env) customer(t *testing.T, email, phone string) *models.Customer {
	t.Helper()
	req := janeDoe()
	req.Email = email
	req.PhoneNumber = phone
	c, err := e.customers.Create(e.ctx, req)
	require.NoError(t, err)
	return c
}

func (e *env) employee(t *testing.T, cusID uint, email, mobile string) *models.Employee {
	t.Helper()
	emp, err := e.employees.Create(e.ctx, dto.CreateEmployeeRequest{
		Name:         "Sam Smith",
		Email:        email,
		Password:     "Passw0rd!",
		CompanyName:  "Acme",
		CusID:        cusID,
		MobileNumber: mobile,
	})
	require.NoError(t, err)
	return emp
}

func (e *env) job(t *testing.T, name string) *models.Job {
	t.Helper()
	j, err := e.jobs.Create(e.ctx, dto.CreateJobRequest{Name: name, Category: "onsite"})
	require.NoError(t, err)
	return j
}

func count[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(new(T)).Count(&n).Error)
	return n
}
