package ledger

import (
	"context"

	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción. Todo efecto
// de libro (stock, tesorería, numeración, cabeceras) corre sobre este juego.
type Repos struct {
	Products     repository.ProductRepository
	Stocks       repository.WarehouseStockRepository
	Movements    repository.StockMovementRepository
	Documents    repository.DocumentRepository
	Payments     repository.TreasuryPaymentRepository
	BankAccounts repository.BankAccountRepository
	Warehouses   repository.WarehouseRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Si fn retorna error se hace rollback de TODO, incluidos
// los anexos al libro de movimientos; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
