package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/password"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"gorm.io/gorm"
)

type EmployeeService struct {
	db        *gorm.DB
	employees *store.Repo[models.Employee]
	engine    *validation.Engine
	hasher    password.Hasher
	metrics   *metrics.Metrics
}

func NewEmployeeService(db *gorm.DB, engine *validation.Engine, hasher password.Hasher, m *metrics.Metrics) *EmployeeService {
	return &EmployeeService{
		db:        db,
		employees: store.NewRepo[models.Employee](db),
		engine:    engine,
		hasher:    hasher,
		metrics:   m,
	}
}

func (s *EmployeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*models.Employee, error) {
	req, err := s.engine.EmployeeCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	employee := &models.Employee{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Password:     hash,
		CompanyName:  req.CompanyName,
		CusID:        req.CusID,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.metrics.Event("employee_created")
	return employee, nil
}

// List pages through employees, optionally only those owned by cusID.
func (s *EmployeeService) List(ctx context.Context, cusID uint, page, limit int) (*store.Page[models.Employee], error) {
	opts := store.ListOptions{Page: page, Limit: limit, Preload: []string{"JobAssignment.Job"}}
	if cusID != 0 {
		opts.Filters = map[string]any{"cus_id": cusID}
	}
	return s.employees.List(ctx, opts)
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.Employee, error) {
	employee, ok, err := s.employees.GetByID(ctx, id, "JobAssignment.Job")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) (*store.UpdateResult[models.Employee], error) {
	exists, err := s.employees.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	req, err = s.engine.EmployeeUpdate(ctx, id, req)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setIf(changes, "emp_name", req.Name)
	setIf(changes, "emp_email", req.Email)
	setIf(changes, "emp_company_name", req.CompanyName)
	setIf(changes, "emp_mobile_number", req.MobileNumber)
	setIf(changes, "cus_id", req.CusID)
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		changes["emp_password"] = hash
	}

	res, err := s.employees.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.metrics.Event("employee_updated")
	return res, nil
}

// Delete removes the employee and every assignment that references it.
func (s *EmployeeService) Delete(ctx context.Context, id uint) (*models.Employee, error) {
	var prior *models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		employees := s.employees.WithTx(tx)
		ok, err := employees.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrEmployeeNotFound
		}
		if err := removeEmployeeRows(tx, []uint{id}); err != nil {
			return err
		}

		res, err := employees.Delete(ctx, id)
		if err != nil {
			return err
		}
		prior = res.Prior
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Event("employee_deleted")
	return prior, nil
}
