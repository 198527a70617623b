package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCreate_SKURules(t *testing.T) {
	e := newEnv(t)

	_, err := e.jobs.Create(e.ctx, dto.CreateJobRequest{Name: "Support", Category: "remote"})
	require.ErrorIs(t, err, apperr.ErrValidation)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	require.Len(t, ae.Fields, 1)
	assert.Equal(t, "job_sku", ae.Fields[0].Field)

	onsite, err := e.jobs.Create(e.ctx, dto.CreateJobRequest{Name: "Support", Category: "onsite"})
	require.NoError(t, err)
	assert.Nil(t, onsite.SKU)

	_, err = e.jobs.Create(e.ctx, dto.CreateJobRequest{Name: "Cleaner", Category: "onsite"})
	require.NoError(t, err, "empty SKUs do not collide")

	_, err = e.jobs.Create(e.ctx, dto.CreateJobRequest{Name: "Dev", Category: "remote", SKU: "R-1"})
	require.NoError(t, err)
	_, err = e.jobs.Create(e.ctx, dto.CreateJobRequest{Name: "Ops", Category: "remote", SKU: "R-1"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestJobGet_ListsEmployees(t *testing.T) {
	e := newEnv(t)
	c := e.customer(t, "jane@example.com", "1234567890")
	a := e.employee(t, c.ID, "a@example.com", "5550000001")
	b := e.employee(t, c.ID, "b@example.com", "5550000002")
	job := e.job(t, "Dev")
	_, err := e.assignments.AssignJobToMany(e.ctx, []uint{b.ID, a.ID}, job.ID)
	require.NoError(t, err)

	detail, err := e.jobs.Get(e.ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dev", detail.Name)
	require.Len(t, detail.Employees, 2)
	assert.Equal(t, a.ID, detail.Employees[0].ID)

	_, err = e.jobs.Get(e.ctx, 999)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobUpdate(t *testing.T) {
	e := newEnv(t)
	job := e.job(t, "Dev")

	remote := "remote"
	_, err := e.jobs.Update(e.ctx, job.ID, dto.UpdateJobRequest{Category: &remote})
	require.ErrorIs(t, err, apperr.ErrValidation)

	sku := "R-7"
	res, err := e.jobs.Update(e.ctx, job.ID, dto.UpdateJobRequest{Category: &remote, SKU: &sku})
	require.NoError(t, err)
	require.NotNil(t, res.Record.SKU)
	assert.Equal(t, "R-7", *res.Record.SKU)

	_, err = e.jobs.Update(e.ctx, 999, dto.UpdateJobRequest{Category: &remote})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobDelete_Unassigns(t *testing.T) {
	e := newEnv(t)
	c := e.customer(t, "jane@example.com", "1234567890")
	emp := e.employee(t, c.ID, "sam@example.com", "5550000001")
	job := e.job(t, "Dev")
	_, err := e.assignments.AssignJob(e.ctx, emp.ID, job.ID)
	require.NoError(t, err)

	_, err = e.jobs.Delete(e.ctx, job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count[models.EmployeeJob](t, e.db))
	assert.EqualValues(t, 1, count[models.Employee](t, e.db))
}
