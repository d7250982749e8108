package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	appdoc "github.com/jhoicas/gestion-comercial/internal/application/document"
	"github.com/jhoicas/gestion-comercial/internal/application/dto"
)

var validate = validator.New()

// DocumentHandler maneja las peticiones HTTP de documentos comerciales.
type DocumentHandler struct {
	coord *appdoc.Coordinator
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(coord *appdoc.Coordinator) *DocumentHandler {
	return &DocumentHandler{coord: coord}
}

// Create godoc
// @Summary      Crear documento comercial
// @Description  Asigna número, persiste cabecera y líneas, y aplica efectos de libro si nace liquidado.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Datos del documento"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.coord.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener documento por ID
// @Tags         documents
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	out, err := h.coord.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar documento
// @Description  Revierte los efectos de las líneas viejas, aplica las nuevas y re-deriva la dirección.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del documento"
// @Param        body  body  dto.UpdateDocumentRequest  true  "Cabecera y líneas nuevas"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.coord.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar documento
// @Description  Revierte efectos de stock y tesorería antes de borrar cabecera y líneas.
// @Tags         documents
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.coord.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transition godoc
// @Summary      Cambiar estado del documento
// @Description  Al cruzar hacia liquidado aplica efectos de stock y deriva el pago; al cruzar de vuelta los revierte.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del documento"
// @Param        body  body  dto.TransitionRequest  true  "Estado destino"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/status [patch]
func (h *DocumentHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.coord.Transition(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
