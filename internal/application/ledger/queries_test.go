package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/infrastructure/memory"
)

func queryUC(store *memory.Store) *ledger.QueryUseCase {
	return ledger.NewQueryUseCase(
		store.Products(),
		store.Stocks(),
		store.Movements(),
		store.Payments(),
		store.BankAccounts(),
	)
}

func TestProductStock_ExponeLaDeriva(t *testing.T) {
	store := seededStore(t, "10")
	uc := queryUC(store)

	// Movimiento con bodega y movimiento sin bodega: el total del producto
	// sube 7 pero la suma de bodegas solo ve 4. La vista expone ambos sin
	// reconciliar.
	l := ledger.NewStockLedger(nil)
	require.NoError(t, l.Apply(store.Repos(), ledger.MovementInput{
		ProductID:   testProductID,
		WarehouseID: testWarehouseID,
		Quantity:    decimal.NewFromInt(4),
		Kind:        entity.MovementKindIn,
	}))
	require.NoError(t, l.Apply(store.Repos(), ledger.MovementInput{
		ProductID: testProductID,
		Quantity:  decimal.NewFromInt(3),
		Kind:      entity.MovementKindAdjustment,
	}))

	out, err := uc.ProductStock(context.Background(), testProductID)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(17).Equal(out.Stock))
	assert.True(t, decimal.NewFromInt(4).Equal(out.WarehouseSum),
		"la suma de bodegas se reporta tal cual, sin forzarla al total")
	require.Len(t, out.Warehouses, 1)
	assert.Equal(t, testWarehouseID, out.Warehouses[0].WarehouseID)
}

func TestProductStock_NoEncontrado(t *testing.T) {
	uc := queryUC(memory.NewStore())
	_, err := uc.ProductStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementsByProduct_Paginado(t *testing.T) {
	store := seededStore(t, "100")
	uc := queryUC(store)
	l := ledger.NewStockLedger(nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Apply(store.Repos(), ledger.MovementInput{
			ProductID: testProductID,
			Quantity:  decimal.NewFromInt(1),
			Kind:      entity.MovementKindIn,
		}))
	}

	page, err := uc.MovementsByProduct(context.Background(), testProductID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := uc.MovementsByProduct(context.Background(), testProductID, 10, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
}

func TestPaymentByDocument_NoEncontrado(t *testing.T) {
	uc := queryUC(memory.NewStore())
	_, err := uc.PaymentByDocument(context.Background(), "doc-sin-pago")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBankAccount(t *testing.T) {
	store := treasuryStore(t, "750.50")
	uc := queryUC(store)

	out, err := uc.BankAccount(context.Background(), testBankAccountID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("750.50").Equal(out.Balance))

	_, err = uc.BankAccount(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
