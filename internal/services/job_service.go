package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"gorm.io/gorm"
)

// JobDetail is a job together with the employees holding it.
type JobDetail struct {
	models.Job
	Employees []models.Employee `json:"employees"`
}

type JobService struct {
	db      *gorm.DB
	jobs    *store.Repo[models.Job]
	engine  *validation.Engine
	metrics *metrics.Metrics
}

func NewJobService(db *gorm.DB, engine *validation.Engine, m *metrics.Metrics) *JobService {
	return &JobService{
		db:      db,
		jobs:    store.NewRepo[models.Job](db),
		engine:  engine,
		metrics: m,
	}
}

func (s *JobService) Create(ctx context.Context, req dto.CreateJobRequest) (*models.Job, error) {
	req, err := s.engine.JobCreate(ctx, req)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Name:     req.Name,
		SKU:      nullable(req.SKU),
		Category: req.Category,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.metrics.Event("job_created")
	return job, nil
}

func (s *JobService) List(ctx context.Context, page, limit int) (*store.Page[models.Job], error) {
	return s.jobs.List(ctx, store.ListOptions{Page: page, Limit: limit})
}

func (s *JobService) Get(ctx context.Context, id uint) (*JobDetail, error) {
	job, ok, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrJobNotFound
	}

	employees := []models.Employee{}
	err = s.db.WithContext(ctx).
		Joins("JOIN employee_job ON employee_job.emp_id = employee.emp_id").
		Where("employee_job.job_id = ?", id).
		Order("employee.emp_id ASC").
		Find(&employees).Error
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &JobDetail{Job: *job, Employees: employees}, nil
}

func (s *JobService) Update(ctx context.Context, id uint, req dto.UpdateJobRequest) (*store.UpdateResult[models.Job], error) {
	current, ok, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrJobNotFound
	}

	req, err = s.engine.JobUpdate(ctx, current, req)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setIf(changes, "job_name", req.Name)
	setIf(changes, "job_category", req.Category)
	if req.SKU != nil {
		changes["job_sku"] = nullable(*req.SKU)
	}

	res, err := s.jobs.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.metrics.Event("job_updated")
	return res, nil
}

// Delete removes the job and unassigns every employee holding it.
func (s *JobService) Delete(ctx context.Context, id uint) (*models.Job, error) {
	var prior *models.Job
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		jobs := s.jobs.WithTx(tx)
		ok, err := jobs.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrJobNotFound
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.EmployeeJob{}).Error; err != nil {
			return apperr.Storage(err)
		}

		res, err := jobs.Delete(ctx, id)
		if err != nil {
			return err
		}
		prior = res.Prior
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Event("job_deleted")
	return prior, nil
}

// nullable stores an empty SKU as NULL so the unique index ignores it.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
