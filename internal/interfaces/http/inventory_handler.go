package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-comercial/internal/application/dto"
	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
)

// InventoryHandler maneja las vistas de stock y los movimientos manuales.
type InventoryHandler struct {
	queries *ledger.QueryUseCase
	manual  *ledger.ManualMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(queries *ledger.QueryUseCase, manual *ledger.ManualMovementUseCase) *InventoryHandler {
	return &InventoryHandler{queries: queries, manual: manual}
}

// ProductStock godoc
// @Summary      Vista de stock de un producto
// @Description  Stock total, estado derivado, desglose por bodega y suma de bodegas para auditar deriva.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/stock [get]
func (h *InventoryHandler) ProductStock(c *fiber.Ctx) error {
	out, err := h.queries.ProductStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Libro de movimientos de un producto
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Máximo de filas (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.queries.MovementsByProduct(c.UserContext(), c.Params("id"), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento manual de inventario
// @Description  Entrada, salida o ajuste iniciado por un operario. Una salida que dejaría el stock negativo se rechaza.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualMovementRequest  true  "Movimiento"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.ManualMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	err := h.manual.Register(c.UserContext(), ledger.ManualMovementInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Kind:        in.Kind,
		Quantity:    in.Quantity,
		Description: in.Description,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}
