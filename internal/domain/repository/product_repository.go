package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// ProductRepository acceso a productos. El stock del producto solo se muta
// vía UpdateStock desde el libro de inventario.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) antes de
	// leer-calcular-escribir, para evitar lost updates bajo concurrencia.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe stock total y estado derivado en una sola sentencia.
	UpdateStock(id string, stock decimal.Decimal, status string) error
	Create(p *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}
