package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	"gorm.io/gorm"
)

// AssignmentService creates Employee↔Job and Employee↔Customer links.
// Every create runs in one transaction and the unique indexes are the final
// guard; the pre-checks only produce friendlier errors.
type AssignmentService struct {
	db        *gorm.DB
	customers *store.Repo[models.Customer]
	employees *store.Repo[models.Employee]
	jobs      *store.Repo[models.Job]
	empJobs   *store.Repo[models.EmployeeJob]
	empCus    *store.Repo[models.EmployeeCustomer]
	metrics   *metrics.Metrics
}

func NewAssignmentService(db *gorm.DB, m *metrics.Metrics) *AssignmentService {
	return &AssignmentService{
		db:        db,
		customers: store.NewRepo[models.Customer](db),
		employees: store.NewRepo[models.Employee](db),
		jobs:      store.NewRepo[models.Job](db),
		empJobs:   store.NewRepo[models.EmployeeJob](db),
		empCus:    store.NewRepo[models.EmployeeCustomer](db),
		metrics:   m,
	}
}

func (s *AssignmentService) AssignJob(ctx context.Context, empID, jobID uint) (*models.EmployeeJob, error) {
	assignment := &models.EmployeeJob{EmpID: empID, JobID: jobID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.employees.WithTx(tx).Exists(ctx, empID); err != nil {
			return err
		} else if !ok {
			return ErrEmployeeNotFound
		}
		if ok, err := s.jobs.WithTx(tx).Exists(ctx, jobID); err != nil {
			return err
		} else if !ok {
			return ErrJobNotFound
		}

		empJobs := s.empJobs.WithTx(tx)
		if _, found, err := empJobs.FindOne(ctx, map[string]any{"emp_id": empID}); err != nil {
			return err
		} else if found {
			return ErrAlreadyAssigned
		}

		return empJobs.Create(ctx, assignment)
	})
	if errors.Is(err, store.ErrConstraintViolation) {
		return nil, ErrAlreadyAssigned.With(err)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.Event("job_assigned")
	return assignment, nil
}

// AssignJobToMany assigns jobID to every employee in empIDs or to none.
// All missing ids are reported together, as are all already assigned ones.
func (s *AssignmentService) AssignJobToMany(ctx context.Context, empIDs []uint, jobID uint) ([]models.EmployeeJob, error) {
	ids := dedupe(empIDs)
	var created []models.EmployeeJob

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := s.jobs.WithTx(tx).Exists(ctx, jobID); err != nil {
			return err
		} else if !ok {
			return ErrJobNotFound
		}

		var existing []uint
		if err := tx.Model(&models.Employee{}).Where("emp_id IN ?", ids).Pluck("emp_id", &existing).Error; err != nil {
			return apperr.Storage(err)
		}
		if missing := difference(ids, existing); len(missing) > 0 {
			return listError(ErrEmployeesNotFound, missing)
		}

		var assigned []uint
		if err := tx.Model(&models.EmployeeJob{}).Where("emp_id IN ?", ids).Pluck("emp_id", &assigned).Error; err != nil {
			return apperr.Storage(err)
		}
		if len(assigned) > 0 {
			return listError(ErrEmployeesAssigned, intersect(ids, assigned))
		}

		rows := make([]models.EmployeeJob, len(ids))
		for i, id := range ids {
			rows[i] = models.EmployeeJob{EmpID: id, JobID: jobID}
		}
		if err := s.empJobs.WithTx(tx).CreateMany(ctx, rows); err != nil {
			return err
		}
		created = rows
		return nil
	})
	if errors.Is(err, store.ErrConstraintViolation) {
		return nil, ErrEmployeesAssigned.With(err)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.Event("jobs_assigned")
	return created, nil
}

// UnassignJob removes the employee's job assignment.
func (s *AssignmentService) UnassignJob(ctx context.Context, empID uint) error {
	n, err := s.empJobs.DeleteWhere(ctx, "emp_id = ?", empID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAssignmentNotFound
	}
	s.metrics.Event("job_unassigned")
	return nil
}

// AssignEmployeeToCustomer grants cusID shared access to empID.
func (s *AssignmentService) AssignEmployeeToCustomer(ctx context.Context, empID, cusID uint) (*models.EmployeeCustomer, error) {
	link := &models.EmployeeCustomer{EmpID: empID, CusID: cusID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		employee, ok, err := s.employees.WithTx(tx).GetByID(ctx, empID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrEmployeeNotFound
		}
		if ok, err := s.customers.WithTx(tx).Exists(ctx, cusID); err != nil {
			return err
		} else if !ok {
			return ErrCustomerNotFound
		}
		if employee.CusID == cusID {
			return ErrOwnEmployee
		}

		empCus := s.empCus.WithTx(tx)
		if _, found, err := empCus.FindOne(ctx, map[string]any{"emp_id": empID, "cus_id": cusID}); err != nil {
			return err
		} else if found {
			return ErrAlreadyAssignedCustomer
		}
		return empCus.Create(ctx, link)
	})
	if errors.Is(err, store.ErrConstraintViolation) {
		return nil, ErrAlreadyAssignedCustomer.With(err)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.Event("employee_assigned_customer")
	return link, nil
}

// CustomersWithAssignedEmployees lists customers with the employees they
// have been granted.
func (s *AssignmentService) CustomersWithAssignedEmployees(ctx context.Context, page, limit int) (*store.Page[models.Customer], error) {
	return s.customers.List(ctx, store.ListOptions{
		Page:    page,
		Limit:   limit,
		Preload: []string{"EmployeeAssignments.Employee"},
	})
}

func (s *AssignmentService) CustomerWithAssignedEmployees(ctx context.Context, cusID uint) (*models.Customer, error) {
	customer, ok, err := s.customers.GetByID(ctx, cusID, "EmployeeAssignments.Employee")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func listError(base *apperr.Error, ids []uint) *apperr.Error {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	joined := strings.Join(parts, ", ")
	return base.
		WithMessage(base.Message + ": " + joined).
		WithDetails(parts...).
		WithParams(map[string]any{"IDs": joined})
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// difference returns the ids of want not present in have, in want's order.
func difference(want, have []uint) []uint {
	set := make(map[uint]bool, len(have))
	for _, id := range have {
		set[id] = true
	}
	var out []uint
	for _, id := range want {
		if !set[id] {
			out = append(out, id)
		}
	}
	return out
}

func intersect(want, have []uint) []uint {
	set := make(map[uint]bool, len(have))
	for _, id := range have {
		set[id] = true
	}
	var out []uint
	for _, id := range want {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}
