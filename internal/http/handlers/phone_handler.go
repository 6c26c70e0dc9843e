package handlers

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"phonestore/internal/domain"
	applog "phonestore/internal/log"
	"phonestore/internal/services"
)

type PhoneHandler struct {
	Phones *services.PhoneService
}

// List handles GET /phones with conjunctive filters, newest first.
func (h *PhoneHandler) List(c *fiber.Ctx) error {
	f := domain.PhoneFilter{
		AvailableOnly: c.QueryBool("available_only", true),
		DealsOnly:     c.QueryBool("deals_only", false),
		Brand:         strings.TrimSpace(c.Query("brand")),
	}

	var err error
	if f.MinPrice, err = queryPrice(c, "min_price"); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "min_price"})
		return jsonError(c, fiber.StatusUnprocessableEntity, "min_price must be an integer")
	}
	if f.MaxPrice, err = queryPrice(c, "max_price"); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "max_price"})
		return jsonError(c, fiber.StatusUnprocessableEntity, "max_price must be an integer")
	}

	phones, err := h.Phones.List(f)
	if err != nil {
		applog.Error(c, "phones.list.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch phones: "+err.Error())
	}
	return c.JSON(phones)
}

// Brands handles GET /phones/brands.
func (h *PhoneHandler) Brands(c *fiber.Ctx) error {
	brands, err := h.Phones.Brands(c.QueryBool("available_only", true))
	if err != nil {
		applog.Error(c, "phones.brands.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch brands: "+err.Error())
	}
	return c.JSON(brands)
}

// Detail handles GET /phones/:id.
func (h *PhoneHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	p, err := h.Phones.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Phone with ID "+id+" not found")
		}
		applog.Error(c, "phones.get.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch phone: "+err.Error())
	}
	return c.JSON(p)
}

// Create handles POST /phones (auth required).
func (h *PhoneHandler) Create(c *fiber.Ctx) error {
	var in domain.PhoneCreate
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}

	p, err := h.Phones.Create(in)
	if err != nil {
		if errors.Is(err, services.ErrInvalid) {
			applog.Security(c, "validation.fail", map[string]any{"reason": err.Error()})
			return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		applog.Error(c, "phones.create.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create phone")
	}

	if u := CurrentUser(c); u != nil {
		applog.Audit(c, "phones.create", map[string]any{"phone_id": p.ID, "user_id": u.ID})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update handles PUT /phones/:id (auth required). A bad id reports 404
// before the empty-body check, so even an empty patch names the id.
func (h *PhoneHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	// A missing body counts as an empty patch, not a parse error, so the
	// existence check still runs first.
	var patch domain.PhonePatch
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.BodyParser(&patch); err != nil {
			applog.Security(c, "validation.fail", map[string]any{"field": "body"})
			return jsonError(c, fiber.StatusUnprocessableEntity, "invalid request body")
		}
	}

	p, err := h.Phones.Update(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return jsonError(c, fiber.StatusNotFound, "Phone with ID "+id+" not found")
		case errors.Is(err, services.ErrNoFields):
			return jsonError(c, fiber.StatusBadRequest, "No fields to update")
		case errors.Is(err, services.ErrInvalid):
			applog.Security(c, "validation.fail", map[string]any{"reason": err.Error()})
			return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		applog.Error(c, "phones.update.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update phone")
	}

	if u := CurrentUser(c); u != nil {
		applog.Audit(c, "phones.update", map[string]any{"phone_id": id, "user_id": u.ID})
	}
	return c.JSON(p)
}

// MarkSold handles DELETE /phones/:id (auth required). The listing is
// kept and flipped to unavailable; repeating the call is a no-op success.
func (h *PhoneHandler) MarkSold(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.Phones.MarkSold(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Phone with ID "+id+" not found")
		}
		applog.Error(c, "phones.marksold.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to mark phone as sold")
	}

	if u := CurrentUser(c); u != nil {
		applog.Audit(c, "phones.marksold", map[string]any{"phone_id": id, "user_id": u.ID})
	}
	return c.JSON(fiber.Map{
		"message":  "Phone marked as sold successfully",
		"phone_id": id,
	})
}

func queryPrice(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
