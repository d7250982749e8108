package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/infrastructure/memory"
)

const testBankAccountID = "00000000-0000-0000-0000-00000000000c"

func treasuryStore(t *testing.T, balance string) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	store.SeedBankAccount(entity.BankAccount{
		ID:      testBankAccountID,
		Name:    "Cuenta corriente",
		Balance: decimal.RequireFromString(balance),
	})
	store.SeedWarehouse(entity.Warehouse{ID: testWarehouseID, Name: "Principal"})
	return store
}

func TestSignedAmount(t *testing.T) {
	venta := &entity.TreasuryPayment{Type: entity.PaymentTypeSales, Amount: decimal.NewFromInt(500)}
	compra := &entity.TreasuryPayment{Type: entity.PaymentTypePurchase, Amount: decimal.NewFromInt(500)}

	assert.True(t, decimal.NewFromInt(500).Equal(ledger.SignedAmount(venta)), "una venta suma al saldo")
	assert.True(t, decimal.NewFromInt(-500).Equal(ledger.SignedAmount(compra)), "una compra resta del saldo")
}

func TestTreasuryLedger_Apply_SoloCleared(t *testing.T) {
	store := treasuryStore(t, "1000")
	l := ledger.NewTreasuryLedger()

	// Un cheque en mano no toca el saldo.
	enMano := &entity.TreasuryPayment{
		Type:          entity.PaymentTypeSales,
		Amount:        decimal.NewFromInt(300),
		Status:        entity.PaymentStatusInHand,
		BankAccountID: testBankAccountID,
	}
	require.NoError(t, l.Apply(store.Repos(), enMano))

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(1000).Equal(acc.Balance), "in_hand jamás mueve el saldo")

	cleared := &entity.TreasuryPayment{
		Type:          entity.PaymentTypeSales,
		Amount:        decimal.NewFromInt(300),
		Status:        entity.PaymentStatusCleared,
		BankAccountID: testBankAccountID,
	}
	require.NoError(t, l.Apply(store.Repos(), cleared))

	acc, _ = store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(1300).Equal(acc.Balance))
}

func TestTreasuryLedger_Revert_NiegaLoAplicado(t *testing.T) {
	store := treasuryStore(t, "1000")
	l := ledger.NewTreasuryLedger()

	// El reverso de una compra DEVUELVE lo restado: el signo se invierte
	// respecto a lo aplicado, no respecto al tipo.
	compra := &entity.TreasuryPayment{
		Type:          entity.PaymentTypePurchase,
		Amount:        decimal.NewFromInt(400),
		Status:        entity.PaymentStatusCleared,
		BankAccountID: testBankAccountID,
	}
	require.NoError(t, l.Apply(store.Repos(), compra))

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(600).Equal(acc.Balance))

	require.NoError(t, l.Revert(store.Repos(), compra))
	acc, _ = store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(1000).Equal(acc.Balance), "el reverso restaura el saldo original")
}

func TestTreasuryLedger_Apply_CajaDeBodega(t *testing.T) {
	store := treasuryStore(t, "0")
	l := ledger.NewTreasuryLedger()

	pago := &entity.TreasuryPayment{
		Type:            entity.PaymentTypeSales,
		Amount:          decimal.NewFromInt(150),
		Status:          entity.PaymentStatusCleared,
		CashWarehouseID: testWarehouseID,
	}
	require.NoError(t, l.Apply(store.Repos(), pago))

	w, _ := store.Warehouses().GetByID(testWarehouseID)
	assert.True(t, decimal.NewFromInt(150).Equal(w.CashBalance), "el efectivo de venta puede ir a la caja de la bodega")
}

func TestTreasuryLedger_Apply_DestinoAmbiguo(t *testing.T) {
	store := treasuryStore(t, "0")
	l := ledger.NewTreasuryLedger()

	// Exactamente un destino: ninguno o ambos es entrada inválida.
	sinDestino := &entity.TreasuryPayment{
		Type:   entity.PaymentTypeSales,
		Amount: decimal.NewFromInt(10),
		Status: entity.PaymentStatusCleared,
	}
	assert.ErrorIs(t, l.Apply(store.Repos(), sinDestino), domain.ErrInvalidInput)

	ambos := &entity.TreasuryPayment{
		Type:            entity.PaymentTypeSales,
		Amount:          decimal.NewFromInt(10),
		Status:          entity.PaymentStatusCleared,
		BankAccountID:   testBankAccountID,
		CashWarehouseID: testWarehouseID,
	}
	assert.ErrorIs(t, l.Apply(store.Repos(), ambos), domain.ErrInvalidInput)
}

func TestTreasuryLedger_ClearPayment_AplicaDiferido(t *testing.T) {
	store := treasuryStore(t, "500")
	l := ledger.NewTreasuryLedger()

	cheque := &entity.TreasuryPayment{
		ID:            "pago-cheque-1",
		DocumentID:    "doc-fv-cheque",
		Type:          entity.PaymentTypeSales,
		Amount:        decimal.NewFromInt(200),
		Status:        entity.PaymentStatusInHand,
		BankAccountID: testBankAccountID,
	}
	require.NoError(t, store.Payments().Create(cheque))
	require.NoError(t, l.ClearPayment(store.Repos(), cheque))

	assert.Equal(t, entity.PaymentStatusCleared, cheque.Status)
	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(700).Equal(acc.Balance), "consignar el cheque aplica el efecto diferido")

	// La transición queda persistida: una recarga posterior ve cleared,
	// reconsignar sobre ella es un no-op y el reverso sí deshace el efecto.
	recargado, err := store.Payments().GetByDocument("doc-fv-cheque")
	require.NoError(t, err)
	require.NotNil(t, recargado)
	assert.Equal(t, entity.PaymentStatusCleared, recargado.Status, "el estado cleared sobrevive la recarga")

	require.NoError(t, l.ClearPayment(store.Repos(), recargado))
	acc, _ = store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(700).Equal(acc.Balance), "reconsignar el pago recargado no duplica el saldo")

	require.NoError(t, l.Revert(store.Repos(), recargado))
	acc, _ = store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(500).Equal(acc.Balance), "el reverso del pago recargado deshace lo aplicado")
}
