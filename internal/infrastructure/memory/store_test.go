package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/infrastructure/memory"
)

func TestDocumentos_NumeroUnico(t *testing.T) {
	store := memory.NewStore()

	require.NoError(t, store.Documents().Create(&entity.Document{ID: "d1", Type: entity.DocTypeSalesInvoice, Number: "FV-08/26/0001"}))
	err := store.Documents().Create(&entity.Document{ID: "d2", Type: entity.DocTypeSalesInvoice, Number: "FV-08/26/0001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el número de documento es único")
}

func TestMaxSerial_NumericoMasAllaDe9999(t *testing.T) {
	// El máximo es numérico sobre el sufijo, no lexicográfico sobre el
	// número: "10000" ordena antes que "9999" como texto pero sigue siendo
	// el mayor consecutivo del ámbito.
	store := memory.NewStore()
	require.NoError(t, store.Documents().Create(&entity.Document{ID: "d1", Type: entity.DocTypeSalesInvoice, Number: "FV-08/26/9999"}))
	require.NoError(t, store.Documents().Create(&entity.Document{ID: "d2", Type: entity.DocTypeSalesInvoice, Number: "FV-08/26/10000"}))

	max, err := store.Documents().MaxSerial(entity.DocTypeSalesInvoice, "", "FV-08/26/%", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 10000, max)
}

func TestPagos_ActualizarEstado(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Payments().Create(&entity.TreasuryPayment{ID: "pg1", DocumentID: "d1", Status: entity.PaymentStatusInHand}))

	require.NoError(t, store.Payments().UpdateStatus("pg1", entity.PaymentStatusCleared))
	p, err := store.Payments().GetByDocument("d1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCleared, p.Status)

	assert.ErrorIs(t, store.Payments().UpdateStatus("no-existe", entity.PaymentStatusCleared), domain.ErrNotFound)
}

func TestPagos_UnoPorDocumento(t *testing.T) {
	store := memory.NewStore()

	require.NoError(t, store.Payments().Create(&entity.TreasuryPayment{ID: "p1", DocumentID: "d1"}))
	err := store.Payments().Create(&entity.TreasuryPayment{ID: "p2", DocumentID: "d1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "a lo sumo un pago por documento")
}

func TestStockPorBodega_FilaEnCero(t *testing.T) {
	store := memory.NewStore()

	ws, err := store.Stocks().Get("p1", "w1")
	require.NoError(t, err)
	require.NotNil(t, ws, "el par inexistente devuelve fila en cero, no nil")
	assert.True(t, ws.Quantity.IsZero())
}

func TestTxRunner_RollbackRestauraTodo(t *testing.T) {
	store := memory.NewStore()
	store.SeedProduct(entity.Product{ID: "p1", SKU: "SKU-1", Stock: decimal.NewFromInt(10)})
	runner := memory.NewTxRunner(store)

	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(r ledger.Repos) error {
		if err := r.Products.UpdateStock("p1", decimal.NewFromInt(99), "in_stock"); err != nil {
			return err
		}
		if err := r.Movements.Create(&entity.StockMovement{ID: "m1", ProductID: "p1", Kind: entity.MovementKindIn, Quantity: decimal.NewFromInt(89)}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := store.Products().GetByID("p1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(p.Stock), "el rollback deshace la escritura de stock")

	movs, err := store.Movements().ListByProduct("p1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, movs, "el rollback también deshace los anexos al libro")
}

func TestTxRunner_CommitPersiste(t *testing.T) {
	store := memory.NewStore()
	store.SeedProduct(entity.Product{ID: "p1", SKU: "SKU-1", Stock: decimal.NewFromInt(10)})
	runner := memory.NewTxRunner(store)

	err := runner.Run(context.Background(), func(r ledger.Repos) error {
		return r.Products.UpdateStock("p1", decimal.NewFromInt(25), "in_stock")
	})
	require.NoError(t, err)

	p, _ := store.Products().GetByID("p1")
	assert.True(t, decimal.NewFromInt(25).Equal(p.Stock))
}
