package repository

import "github.com/jhoicas/gestion-comercial/internal/domain/entity"

// TreasuryPaymentRepository acceso a pagos de tesorería. El constraint único
// sobre document_id respalda el invariante "a lo sumo un pago por documento":
// Create retorna domain.ErrDuplicate si ya existe uno.
type TreasuryPaymentRepository interface {
	Create(p *entity.TreasuryPayment) error
	GetByDocument(documentID string) (*entity.TreasuryPayment, error)
	// UpdateStatus persiste la transición de estado del pago (ej. in_hand →
	// cleared al consignar un cheque). domain.ErrNotFound si no existe.
	UpdateStatus(id, status string) error
	Delete(id string) error
}
