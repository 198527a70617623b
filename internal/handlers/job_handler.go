package handlers

import (
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	jobService *services.JobService
	r          *Responder
}

func NewJobHandler(jobService *services.JobService, r *Responder) *JobHandler {
	return &JobHandler{jobService: jobService, r: r}
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	job, err := h.jobService.Create(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "job_created", "Job added successfully", job)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	page, limit := h.r.Paging(c)
	result, err := h.jobService.List(c.UserContext(), page, limit)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return respondPage(h.r, c, "jobs_fetched", "Jobs fetched successfully", result)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	job, err := h.jobService.Get(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "job_fetched", "Job found successfully", job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	res, err := h.jobService.Update(c.UserContext(), id, req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "job_updated", "Job updated successfully", res.Record)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	prior, err := h.jobService.Delete(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "job_deleted", "Job deleted successfully", prior)
}
