package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// WarehouseStockRepository acceso al stock por bodega. Get devuelve una fila
// en cero (no nil) cuando el par (producto, bodega) aún no existe.
type WarehouseStockRepository interface {
	Get(productID, warehouseID string) (*entity.WarehouseStock, error)
	GetForUpdate(productID, warehouseID string) (*entity.WarehouseStock, error)
	Upsert(ws *entity.WarehouseStock) error
	ListByProduct(productID string) ([]*entity.WarehouseStock, error)
	// SumByProduct suma el stock del producto entre todas las bodegas.
	// Solo para auditar la deriva frente a Product.Stock; no reconcilia.
	SumByProduct(productID string) (decimal.Decimal, error)
}
