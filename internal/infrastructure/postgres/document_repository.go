package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `id, type, subtype, number, client_id, supplier_id, warehouse_id, date, status, direction, payment_method, bank_account_id, cash_warehouse_id, subtotal, notes, created_at, updated_at`

// Create inserta la cabecera. El constraint único sobre number convierte un
// consecutivo repetido en domain.ErrDuplicate, que el coordinador reintenta.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, nullable(doc.Subtype), doc.Number,
		nullable(doc.ClientID), nullable(doc.SupplierID), nullable(doc.WarehouseID),
		doc.Date, doc.Status, doc.Direction, nullable(doc.PaymentMethod),
		nullable(doc.BankAccountID), nullable(doc.CashWarehouseID),
		doc.Subtotal, doc.Notes, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var doc entity.Document
	var subtype, clientID, supplierID, warehouseID, method, bankID, cashWhID *string
	err := row.Scan(&doc.ID, &doc.Type, &subtype, &doc.Number,
		&clientID, &supplierID, &warehouseID, &doc.Date, &doc.Status, &doc.Direction,
		&method, &bankID, &cashWhID, &doc.Subtotal, &doc.Notes, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	doc.Subtype = deref(subtype)
	doc.ClientID = deref(clientID)
	doc.SupplierID = deref(supplierID)
	doc.WarehouseID = deref(warehouseID)
	doc.PaymentMethod = deref(method)
	doc.BankAccountID = deref(bankID)
	doc.CashWarehouseID = deref(cashWhID)
	return &doc, nil
}

// GetByID obtiene la cabecera; nil si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, err := scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// GetForUpdate obtiene la cabecera bloqueando la fila mientras se
// revierte/aplica su efecto.
func (r *DocumentRepo) GetForUpdate(id string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 FOR UPDATE`
	doc, err := scanDocument(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get document for update: %w", err)
	}
	return doc, nil
}

// Update persiste la cabecera completa (incluida la dirección re-derivada).
func (r *DocumentRepo) Update(doc *entity.Document) error {
	query := `
		UPDATE documents SET
			client_id = $2, supplier_id = $3, warehouse_id = $4, date = $5,
			status = $6, direction = $7, payment_method = $8,
			bank_account_id = $9, cash_warehouse_id = $10,
			subtotal = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		doc.ID, nullable(doc.ClientID), nullable(doc.SupplierID), nullable(doc.WarehouseID),
		doc.Date, doc.Status, doc.Direction, nullable(doc.PaymentMethod),
		nullable(doc.BankAccountID), nullable(doc.CashWarehouseID),
		doc.Subtotal, doc.Notes, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la cabecera. Las líneas se borran antes vía DeleteLines.
func (r *DocumentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateLine inserta una línea de detalle.
func (r *DocumentRepo) CreateLine(line *entity.DocumentLine) error {
	query := `
		INSERT INTO document_lines (id, document_id, product_id, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.DocumentID, line.ProductID, line.Quantity, line.UnitPrice, line.Total)
	if err != nil {
		return fmt.Errorf("create document line: %w", err)
	}
	return nil
}

// GetLines lista las líneas del documento.
func (r *DocumentRepo) GetLines(documentID string) ([]*entity.DocumentLine, error) {
	query := `
		SELECT id, document_id, product_id, quantity, unit_price, total
		FROM document_lines WHERE document_id = $1`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Total); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteLines borra todas las líneas del documento.
func (r *DocumentRepo) DeleteLines(documentID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM document_lines WHERE document_id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("delete document lines: %w", err)
	}
	return nil
}

// MaxSerial busca el mayor consecutivo del ámbito: máximo NUMÉRICO del
// sufijo NNNN dentro del patrón prefijo/mes/año, de modo que el consecutivo
// 10000 sigue al 9999 aunque ordene antes como texto. El subtipo separa las
// remisiones diversas de las normales dentro de la misma tabla.
func (r *DocumentRepo) MaxSerial(docType, subtype, scopePattern string, _ time.Time) (int, error) {
	query := `
		SELECT COALESCE(MAX((split_part(number, '/', 3))::int), 0) FROM documents
		WHERE number LIKE $1 AND type = $2 AND COALESCE(subtype, '') = $3`
	var max int
	err := r.q.QueryRow(context.Background(), query, scopePattern, docType, subtype).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max serial: %w", err)
	}
	return max, nil
}

// nullable mapea "" a NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
