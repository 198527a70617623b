package handlers

import (
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customerService *services.CustomerService
	r               *Responder
}

func NewCustomerHandler(customerService *services.CustomerService, r *Responder) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, r: r}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	customer, err := h.customerService.Create(c.UserContext(), req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusCreated, "customer_created", "Customer added successfully", customer)
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, limit := h.r.Paging(c)
	result, err := h.customerService.List(c.UserContext(), page, limit)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return respondPage(h.r, c, "customers_fetched", "Customers fetched successfully", result)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	customer, err := h.customerService.Get(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "customer_fetched", "Customer found successfully", customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}
	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.r.BadBody(c)
	}

	res, err := h.customerService.Update(c.UserContext(), id, req)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "customer_updated", "Customer updated successfully", res.Record)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.r.Fail(c, err)
	}

	prior, err := h.customerService.Delete(c.UserContext(), id)
	if err != nil {
		return h.r.Fail(c, err)
	}
	return h.r.OK(c, fiber.StatusOK, "customer_deleted", "Customer deleted successfully", prior)
}
