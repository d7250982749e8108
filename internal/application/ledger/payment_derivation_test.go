package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

func TestResolveStatus(t *testing.T) {
	assert.Equal(t, entity.PaymentStatusCleared, ledger.ResolveStatus(entity.PaymentMethodCash))
	assert.Equal(t, entity.PaymentStatusCleared, ledger.ResolveStatus(entity.PaymentMethodBankTransfer))
	assert.Equal(t, entity.PaymentStatusInHand, ledger.ResolveStatus(entity.PaymentMethodCheck),
		"un cheque queda en mano hasta consignarse")
}

func salesInvoice(method string) *entity.Document {
	return &entity.Document{
		ID:            "doc-fv-1",
		Type:          entity.DocTypeSalesInvoice,
		Number:        "FV-08/26/0001",
		ClientID:      "cli-1",
		Status:        entity.StatusPaid,
		PaymentMethod: method,
		BankAccountID: testBankAccountID,
		Subtotal:      decimal.NewFromInt(1000),
	}
}

func TestDeriveAndCreate_VentaCleared(t *testing.T) {
	store := treasuryStore(t, "0")
	store.SeedContact(entity.Contact{ID: "cli-1", Kind: entity.ContactKindClient, Name: "Acme Ltda"})
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), store.Contacts())

	p, err := d.DeriveAndCreate(store.Repos(), salesInvoice(entity.PaymentMethodBankTransfer))
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, entity.PaymentStatusCleared, p.Status)
	assert.Equal(t, entity.PaymentTypeSales, p.Type)
	assert.Equal(t, "Acme Ltda", p.Label, "la etiqueta lleva el nombre del tercero")

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(1000).Equal(acc.Balance), "el pago cleared aplica el saldo de inmediato")
}

func TestDeriveAndCreate_ChequeNoTocaSaldo(t *testing.T) {
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)

	p, err := d.DeriveAndCreate(store.Repos(), salesInvoice(entity.PaymentMethodCheck))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusInHand, p.Status)

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, acc.Balance.IsZero(), "un pago in_hand se registra pero no mueve el saldo")
}

func TestDeriveAndCreate_Idempotente(t *testing.T) {
	// Reinvocar la derivación sobre un documento que ya tiene pago devuelve
	// el existente sin volver a aplicar el saldo: a lo sumo un pago por
	// documento y a lo sumo una aplicación.
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)
	doc := salesInvoice(entity.PaymentMethodCash)
	doc.BankAccountID = testBankAccountID

	first, err := d.DeriveAndCreate(store.Repos(), doc)
	require.NoError(t, err)
	second, err := d.DeriveAndCreate(store.Repos(), doc)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "la segunda llamada devuelve el mismo pago")

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(1000).Equal(acc.Balance), "el saldo se aplicó exactamente una vez")
}

func TestDeriveAndCreate_CompraResta(t *testing.T) {
	store := treasuryStore(t, "5000")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)

	doc := &entity.Document{
		ID:            "doc-fc-1",
		Type:          entity.DocTypePurchaseInvoice,
		SupplierID:    "prov-1",
		Status:        entity.StatusReceived,
		PaymentMethod: entity.PaymentMethodBankTransfer,
		BankAccountID: testBankAccountID,
		Subtotal:      decimal.NewFromInt(2000),
	}
	p, err := d.DeriveAndCreate(store.Repos(), doc)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTypePurchase, p.Type)

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, decimal.NewFromInt(3000).Equal(acc.Balance), "la compra resta del saldo")
}

func TestDeriveAndCreate_CajaSoloParaVentas(t *testing.T) {
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)

	doc := &entity.Document{
		ID:              "doc-fc-2",
		Type:            entity.DocTypePurchaseInvoice,
		Status:          entity.StatusReceived,
		PaymentMethod:   entity.PaymentMethodCash,
		CashWarehouseID: testWarehouseID,
		Subtotal:        decimal.NewFromInt(100),
	}
	_, err := d.DeriveAndCreate(store.Repos(), doc)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la caja de bodega no paga compras")
}

func TestDeriveAndCreate_DestinoInvalido(t *testing.T) {
	// Un pago que resuelve cleared exige exactamente un destino ANTES de
	// persistir: sin esa validación el insert reventaría contra el CHECK de
	// la tabla y saldría como fallo de servidor en vez de entrada inválida.
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)

	sinDestino := salesInvoice(entity.PaymentMethodCash)
	sinDestino.BankAccountID = ""
	_, err := d.DeriveAndCreate(store.Repos(), sinDestino)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un pago cleared sin destino se rechaza")

	ambos := salesInvoice(entity.PaymentMethodBankTransfer)
	ambos.ID = "doc-fv-ambos"
	ambos.CashWarehouseID = testWarehouseID
	_, err = d.DeriveAndCreate(store.Repos(), ambos)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dos destinos nunca son válidos")

	gone, err := store.Payments().GetByDocument(sinDestino.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "el rechazo no deja pago persistido")
}

func TestDeriveAndCreate_ChequeSinDestino(t *testing.T) {
	// Un cheque queda in_hand y puede registrarse sin destino: el destino se
	// fija al consignarlo.
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)

	doc := salesInvoice(entity.PaymentMethodCheck)
	doc.BankAccountID = ""
	p, err := d.DeriveAndCreate(store.Repos(), doc)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.PaymentStatusInHand, p.Status)
	assert.Empty(t, p.BankAccountID)
}

func TestDeriveAndCreate_TipoSinTesoreria(t *testing.T) {
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)

	doc := &entity.Document{ID: "doc-rm-1", Type: entity.DocTypeDeliveryNote, Status: entity.StatusDelivered}
	p, err := d.DeriveAndCreate(store.Repos(), doc)
	require.NoError(t, err)
	assert.Nil(t, p, "una remisión no deriva pago")
}

func TestDeleteWithReversal(t *testing.T) {
	store := treasuryStore(t, "0")
	d := ledger.NewPaymentDerivation(ledger.NewTreasuryLedger(), nil)
	doc := salesInvoice(entity.PaymentMethodCash)

	p, err := d.DeriveAndCreate(store.Repos(), doc)
	require.NoError(t, err)

	require.NoError(t, d.DeleteWithReversal(store.Repos(), p))

	acc, _ := store.BankAccounts().GetByID(testBankAccountID)
	assert.True(t, acc.Balance.IsZero(), "borrar el pago devuelve el saldo a su estado previo")

	gone, err := store.Payments().GetByDocument(doc.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "el pago queda eliminado")
}
