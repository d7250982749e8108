package ledger

import (
	"context"

	"github.com/jhoicas/gestion-comercial/internal/application/dto"
	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

// QueryUseCase lecturas que la capa CRUD consume del núcleo: vistas de stock,
// historial de movimientos, saldos y pagos. Corre sobre el pool, sin
// transacción.
type QueryUseCase struct {
	products     repository.ProductRepository
	stocks       repository.WarehouseStockRepository
	movements    repository.StockMovementRepository
	payments     repository.TreasuryPaymentRepository
	bankAccounts repository.BankAccountRepository
}

// NewQueryUseCase construye el caso de uso de lectura.
func NewQueryUseCase(
	products repository.ProductRepository,
	stocks repository.WarehouseStockRepository,
	movements repository.StockMovementRepository,
	payments repository.TreasuryPaymentRepository,
	bankAccounts repository.BankAccountRepository,
) *QueryUseCase {
	return &QueryUseCase{
		products:     products,
		stocks:       stocks,
		movements:    movements,
		payments:     payments,
		bankAccounts: bankAccounts,
	}
}

// ProductStock arma la vista de stock de un producto: total, desglose por
// bodega y la suma entre bodegas. La suma NO se reconcilia contra el total;
// se expone para que un operador audite la deriva.
func (uc *QueryUseCase) ProductStock(ctx context.Context, productID string) (*dto.ProductStockResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	perWarehouse, err := uc.stocks.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	sum, err := uc.stocks.SumByProduct(productID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductStockResponse{
		ProductID:    product.ID,
		SKU:          product.SKU,
		Stock:        product.Stock,
		MinStock:     product.MinStock,
		Status:       product.Status,
		WarehouseSum: sum,
	}
	for _, ws := range perWarehouse {
		resp.Warehouses = append(resp.Warehouses, dto.WarehouseStockResponse{
			WarehouseID: ws.WarehouseID,
			Quantity:    ws.Quantity,
		})
	}
	return resp, nil
}

// MovementsByProduct lista el historial de movimientos de un producto.
func (uc *QueryUseCase) MovementsByProduct(ctx context.Context, productID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	movs, err := uc.movements.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.StockMovementResponse{
			ID:           m.ID,
			ProductID:    m.ProductID,
			WarehouseID:  m.WarehouseID,
			Kind:         m.Kind,
			Quantity:     m.Quantity,
			DocumentType: m.DocumentType,
			DocumentID:   m.DocumentID,
			Description:  m.Description,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}

// PaymentByDocument devuelve el pago derivado de un documento, si existe.
func (uc *QueryUseCase) PaymentByDocument(ctx context.Context, documentID string) (*dto.PaymentResponse, error) {
	p, err := uc.payments.GetByDocument(documentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PaymentResponse{
		ID:              p.ID,
		DocumentID:      p.DocumentID,
		Amount:          p.Amount,
		Method:          p.Method,
		Status:          p.Status,
		Type:            p.Type,
		BankAccountID:   p.BankAccountID,
		CashWarehouseID: p.CashWarehouseID,
		Label:           p.Label,
	}, nil
}

// BankAccount devuelve el saldo de una cuenta bancaria.
func (uc *QueryUseCase) BankAccount(ctx context.Context, id string) (*dto.BankAccountResponse, error) {
	acc, err := uc.bankAccounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.BankAccountResponse{ID: acc.ID, Name: acc.Name, Balance: acc.Balance}, nil
}
