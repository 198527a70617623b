package store_test

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/store"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepoSuite struct {
	suite.Suite
	ctx  context.Context
	jobs *store.Repo[models.Job]
}

func (s *RepoSuite) SetupTest() {
	s.ctx = context.Background()
	s.jobs = store.NewRepo[models.Job](testutil.NewDB(s.T()))
}

func sku(v string) *string { return &v }

func (s *RepoSuite) seed(names ...string) []models.Job {
	jobs := make([]models.Job, len(names))
	for i, n := range names {
		jobs[i] = models.Job{Name: n, Category: "onsite"}
	}
	s.Require().NoError(s.jobs.CreateMany(s.ctx, jobs))
	return jobs
}

func (s *RepoSuite) TestCreate_UniqueViolation() {
	s.Require().NoError(s.jobs.Create(s.ctx, &models.Job{Name: "Dev", SKU: sku("SKU-1"), Category: "remote"}))

	err := s.jobs.Create(s.ctx, &models.Job{Name: "Ops", SKU: sku("SKU-1"), Category: "remote"})
	s.ErrorIs(err, store.ErrConstraintViolation)
	s.ErrorIs(err, apperr.ErrConflict)
}

func (s *RepoSuite) TestCreate_NullSKUsDoNotCollide() {
	s.seed("Dev", "Ops")

	page, err := s.jobs.List(s.ctx, store.ListOptions{})
	s.Require().NoError(err)
	s.EqualValues(2, page.Total)
}

func (s *RepoSuite) TestGetByID() {
	jobs := s.seed("Dev")

	got, ok, err := s.jobs.GetByID(s.ctx, jobs[0].ID)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Dev", got.Name)

	got, ok, err = s.jobs.GetByID(s.ctx, 999)
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(got)
}

func (s *RepoSuite) TestList_Paginates() {
	s.seed("a1", "a2", "a3", "a4", "a5")

	page, err := s.jobs.List(s.ctx, store.ListOptions{Page: 2, Limit: 2})
	s.Require().NoError(err)
	s.EqualValues(5, page.Total)
	s.Equal(3, page.TotalPages)
	s.Require().Len(page.Data, 2)
	s.Equal("a3", page.Data[0].Name)

	page, err = s.jobs.List(s.ctx, store.ListOptions{Page: 9, Limit: 2})
	s.Require().NoError(err)
	s.Empty(page.Data)
	s.NotNil(page.Data)
}

func (s *RepoSuite) TestList_Filters() {
	s.seed("a1", "a2")
	s.Require().NoError(s.jobs.Create(s.ctx, &models.Job{Name: "r", SKU: sku("R-1"), Category: "remote"}))

	page, err := s.jobs.List(s.ctx, store.ListOptions{Filters: map[string]any{"job_category": "remote"}})
	s.Require().NoError(err)
	s.EqualValues(1, page.Total)
}

func (s *RepoSuite) TestUpdate() {
	jobs := s.seed("Dev")

	res, err := s.jobs.Update(s.ctx, jobs[0].ID, map[string]any{"job_name": "Ops"})
	s.Require().NoError(err)
	s.EqualValues(1, res.Affected)
	s.Equal("Ops", res.Record.Name)

	res, err = s.jobs.Update(s.ctx, 999, map[string]any{"job_name": "Ops"})
	s.Require().NoError(err)
	s.Zero(res.Affected)
	s.Nil(res.Record)
}

func (s *RepoSuite) TestDelete() {
	jobs := s.seed("Dev")

	res, err := s.jobs.Delete(s.ctx, jobs[0].ID)
	s.Require().NoError(err)
	s.True(res.Removed)
	s.Equal("Dev", res.Prior.Name)

	res, err = s.jobs.Delete(s.ctx, jobs[0].ID)
	s.Require().NoError(err)
	s.False(res.Removed)
	s.Nil(res.Prior)
}

func (s *RepoSuite) TestTaken_ExcludesOwnID() {
	job := &models.Job{Name: "Dev", SKU: sku("SKU-1"), Category: "remote"}
	s.Require().NoError(s.jobs.Create(s.ctx, job))

	taken, err := s.jobs.Taken(s.ctx, "job_sku", "SKU-1", 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = s.jobs.Taken(s.ctx, "job_sku", "SKU-1", job.ID)
	s.Require().NoError(err)
	s.False(taken)
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoSuite))
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	customer := &models.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", PhoneNumber: "1234567890", Password: "x"}
	require.NoError(t, db.Create(customer).Error)

	auths := store.NewRepo[models.CustomerAuth](db)
	first := "aaa"
	require.NoError(t, auths.Upsert(ctx, &models.CustomerAuth{CusID: customer.ID, AccessTokenHash: first},
		[]string{"cus_id"}, []string{"cus_auth_token"}))
	require.NoError(t, auths.Upsert(ctx, &models.CustomerAuth{CusID: customer.ID, AccessTokenHash: "bbb"},
		[]string{"cus_id"}, []string{"cus_auth_token"}))

	rows, err := auths.FindAll(ctx, map[string]any{"cus_id": customer.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bbb", rows[0].AccessTokenHash)
}
