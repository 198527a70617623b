package handlers

import (
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AssignmentHandler struct {
	assignmentService *services.AssignmentService
	engine            *validation.Engine
	r                 *Responder
}

func NewAssignmentHandler(assignmentService *services.AssignmentService, engine *validation.Engine, r *Responder) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService, engine: engine, r: r}
}

func (h *AssignmentHandler) AssignJob(c *fiber.Ctx) error {
	var req dto.AssignJobRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}
	req, err := h.engine.AssignJob(req)
	if err != nil {
		return h.r.Fail(c, err)
	}

	assignment, err := h.assignmentService.AssignJob(c.UserContext(), req.EmpID, req.JobID)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "job_assigned", "Job assigned to employee successfully", assignment)
}

func (h *AssignmentHandler) AssignJobToMany(c *fiber.Ctx) error {
	var req dto.AssignJobManyRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}
	req, err := h.engine.AssignJobMany(req)
	if err != nil {
		return h.r.Fail(c, err)
	}

	rows, err := h.assignmentService.AssignJobToMany(c.UserContext(), req.EmpIDs, req.JobID)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "jobs_assigned", "Job assigned to employees successfully", rows)
}

func (h *AssignmentHandler) UnassignJob(c *fiber.Ctx) error {
	empID, err := paramID(c, "emp_id")
	if err != nil {
		return h.r.Fail(c, err)
	}
	if err := h.assignmentService.UnassignJob(c.UserContext(), empID); err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "job_unassigned", "Job assignment removed successfully", nil)
}

func (h *AssignmentHandler) AssignCustomer(c *fiber.Ctx) error {
	var req dto.AssignCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}
	req, err := h.engine.AssignCustomer(req)
	if err != nil {
		return h.r.Fail(c, err)
	}

	link, err := h.assignmentService.AssignEmployeeToCustomer(c.UserContext(), req.EmpID, req.CusID)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "employee_assigned_customer", "Employee assigned to customer successfully", link)
}

func (h *AssignmentHandler) ListCustomers(c *fiber.Ctx) error {
	page, limit := h.r.Paging(c)
	result, err := h.assignmentService.CustomersWithAssignedEmployees(c.UserContext(), page, limit)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return respondPage(h.r, c, "assignments_fetched", "Customers with assigned employees fetched successfully", result)
}

func (h *AssignmentHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	customer, err := h.assignmentService.CustomerWithAssignedEmployees(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "assignment_fetched", "Customer with assigned employees fetched successfully", customer)
}
