package handlers

import (
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
	r               *Responder
}

func NewEmployeeHandler(employeeService *services.EmployeeService, r *Responder) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, r: r}
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	employee, err := h.employeeService.Create(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "employee_created", "Employee added successfully", employee)
}

// List accepts an optional cus_id query param to restrict results to one owner.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page, limit := h.r.Paging(c)
	cusID := c.QueryInt("cus_id", 0)
	if cusID < 0 {
		cusID = 0
	}

	result, err := h.employeeService.List(c.UserContext(), uint(cusID), page, limit)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return respondPage(h.r, c, "employees_fetched", "Employees fetched successfully", result)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	employee, err := h.employeeService.Get(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "employee_fetched", "Employee found successfully", employee)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	res, err := h.employeeService.Update(c.UserContext(), id, req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "employee_updated", "Employee updated successfully", res.Record)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	prior, err := h.employeeService.Delete(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "employee_deleted", "Employee deleted successfully", prior)
}
