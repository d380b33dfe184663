package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/commerce-api/internal/service"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

// CrudHandler exposes one entity's dispatcher over HTTP. It never looks
// inside the envelope payload; the success flag alone picks the status.
type CrudHandler[D, E any] struct {
	svc   *service.CrudService[D, E]
	param string
}

// NewCrudHandler binds a dispatcher to HTTP, reading the entity key from the
// named route parameter.
func NewCrudHandler[D, E any](svc *service.CrudService[D, E], param string) *CrudHandler[D, E] {
	return &CrudHandler[D, E]{svc: svc, param: param}
}

// Insert handles POST /.
func (h *CrudHandler[D, E]) Insert(c *fiber.Ctx) error {
	var req D
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	resp, err := h.svc.Insert(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(statusFor(resp.IsSuccess)).JSON(resp)
}

// Update handles PUT /.
func (h *CrudHandler[D, E]) Update(c *fiber.Ctx) error {
	var req D
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	resp, err := h.svc.Update(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(statusFor(resp.IsSuccess)).JSON(resp)
}

// Delete handles DELETE /:param.
func (h *CrudHandler[D, E]) Delete(c *fiber.Ctx) error {
	resp, err := h.svc.Delete(c.UserContext(), c.Params(h.param))
	if err != nil {
		return err
	}
	return c.Status(statusFor(resp.IsSuccess)).JSON(resp)
}

// Get handles GET /:param.
func (h *CrudHandler[D, E]) Get(c *fiber.Ctx) error {
	resp, err := h.svc.Get(c.UserContext(), c.Params(h.param))
	if err != nil {
		return err
	}
	return c.Status(statusFor(resp.IsSuccess)).JSON(resp)
}

// GetAll handles GET /.
func (h *CrudHandler[D, E]) GetAll(c *fiber.Ctx) error {
	resp, err := h.svc.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(statusFor(resp.IsSuccess)).JSON(resp)
}

func statusFor(success bool) int {
	if success {
		return http.StatusOK
	}
	return http.StatusBadRequest
}
