package validation

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/models"
)

func (e *Engine) JobCreate(ctx context.Context, req dto.CreateJobRequest) (dto.CreateJobRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.SKU = strings.TrimSpace(req.SKU)
	req.Category = strings.TrimSpace(req.Category)

	r := newReport()
	e.structural(req, r)
	requireRemoteSKU(req.Category, req.SKU, r)

	if err := unique(ctx, e.jobs, r, "job_sku", "job_sku", req.SKU, 0); err != nil {
		return req, err
	}
	return req, r.err()
}

// JobUpdate checks req merged over current, so a category change to remote
// needs a SKU either in the body or already stored.
func (e *Engine) JobUpdate(ctx context.Context, current *models.Job, req dto.UpdateJobRequest) (dto.UpdateJobRequest, error) {
	trimPtr(req.Name)
	trimPtr(req.SKU)
	trimPtr(req.Category)

	r := newReport()
	e.structural(req, r)

	category := current.Category
	if req.Category != nil {
		category = *req.Category
	}
	sku := ""
	if current.SKU != nil {
		sku = *current.SKU
	}
	if req.SKU != nil {
		sku = *req.SKU
	}
	requireRemoteSKU(category, sku, r)

	if err := unique(ctx, e.jobs, r, "job_sku", "job_sku", deref(req.SKU), current.ID); err != nil {
		return req, err
	}
	return req, r.err()
}

func requireRemoteSKU(category, sku string, r *report) {
	if strings.EqualFold(category, models.RemoteCategory) && sku == "" && r.ok("job_sku") {
		r.add(apperr.FieldError{
			Field:   "job_sku",
			Code:    "sku_required_remote",
			Message: "Job SKU is required for Remote category",
		})
	}
}
