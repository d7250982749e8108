package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
)

// TreasuryHandler maneja las vistas de tesorería.
type TreasuryHandler struct {
	queries *ledger.QueryUseCase
}

// NewTreasuryHandler construye el handler.
func NewTreasuryHandler(queries *ledger.QueryUseCase) *TreasuryHandler {
	return &TreasuryHandler{queries: queries}
}

// PaymentByDocument godoc
// @Summary      Pago derivado de un documento
// @Tags         treasury
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/treasury/documents/{id}/payment [get]
func (h *TreasuryHandler) PaymentByDocument(c *fiber.Ctx) error {
	out, err := h.queries.PaymentByDocument(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// BankAccount godoc
// @Summary      Saldo de una cuenta bancaria
// @Tags         treasury
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.BankAccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/treasury/accounts/{id} [get]
func (h *TreasuryHandler) BankAccount(c *fiber.Ctx) error {
	out, err := h.queries.BankAccount(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
