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

type CustomerService struct {
	db        *gorm.DB
	customers *store.Repo[models.Customer]
	engine    *validation.Engine
	hasher    password.Hasher
	metrics   *metrics.Metrics
}

func NewCustomerService(db *gorm.DB, engine *validation.Engine, hasher password.Hasher, m *metrics.Metrics) *CustomerService {
	return &CustomerService{
		db:        db,
		customers: store.NewRepo[models.Customer](db),
		engine:    engine,
		hasher:    hasher,
		metrics:   m,
	}
}

func (s *CustomerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*models.Customer, error) {
	req, err := s.engine.CustomerCreate(ctx, req)
	if err != nil {
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
		Status:      req.Status,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.metrics.Event("customer_created")
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context, page, limit int) (*store.Page[models.Customer], error) {
	return s.customers.List(ctx, store.ListOptions{Page: page, Limit: limit})
}

// Get returns the customer with the employees it owns.
func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	customer, ok, err := s.customers.GetByID(ctx, id, "Employees")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint, req dto.UpdateCustomerRequest) (*store.UpdateResult[models.Customer], error) {
	exists, err := s.customers.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	req, err = s.engine.CustomerUpdate(ctx, id, req)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setIf(changes, "cus_firstname", req.FirstName)
	setIf(changes, "cus_lastname", req.LastName)
	setIf(changes, "cus_email", req.Email)
	setIf(changes, "cus_phone_number", req.PhoneNumber)
	setIf(changes, "cus_status", req.Status)
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		changes["cus_password"] = hash
	}

	// Blocking a customer or replacing the password ends its sessions.
	revoke := req.Password != nil || (req.Status != nil && *req.Status == models.CustomerBlocked)

	var res *store.UpdateResult[models.Customer]
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if res, err = s.customers.WithTx(tx).Update(ctx, id, changes); err != nil {
			return err
		}
		if revoke {
			return revokeTokens(tx, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.Event("customer_updated")
	return res, nil
}

// Delete removes the customer together with the employees it owns, their
// assignments and its auth record. It returns the deleted row.
func (s *CustomerService) Delete(ctx context.Context, id uint) (*models.Customer, error) {
	var prior *models.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers := s.customers.WithTx(tx)
		ok, err := customers.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCustomerNotFound
		}

		var owned []uint
		if err := tx.Model(&models.Employee{}).Where("cus_id = ?", id).Pluck("emp_id", &owned).Error; err != nil {
			return apperr.Storage(err)
		}
		if err := removeEmployeeRows(tx, owned); err != nil {
			return err
		}
		if err := tx.Where("cus_id = ?", id).Delete(&models.EmployeeCustomer{}).Error; err != nil {
			return apperr.Storage(err)
		}
		if err := tx.Where("cus_id = ?", id).Delete(&models.Employee{}).Error; err != nil {
			return apperr.Storage(err)
		}
		if err := tx.Where("cus_id = ?", id).Delete(&models.CustomerAuth{}).Error; err != nil {
			return apperr.Storage(err)
		}

		res, err := customers.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !res.Removed {
			return ErrCustomerNotFound
		}
		prior = res.Prior
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Event("customer_deleted")
	return prior, nil
}

func setIf[T any](changes map[string]any, column string, v *T) {
	if v != nil {
		changes[column] = *v
	}
}

// removeEmployeeRows deletes the assignment rows that reference empIDs.
func removeEmployeeRows(tx *gorm.DB, empIDs []uint) error {
	if len(empIDs) == 0 {
		return nil
	}
	if err := tx.Where("emp_id IN ?", empIDs).Delete(&models.EmployeeJob{}).Error; err != nil {
		return apperr.Storage(err)
	}
	if err := tx.Where("emp_id IN ?", empIDs).Delete(&models.EmployeeCustomer{}).Error; err != nil {
		return apperr.Storage(err)
	}
	return nil
}
