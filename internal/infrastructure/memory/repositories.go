package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/numbering"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var (
	_ repository.ProductRepository         = (*productRepo)(nil)
	_ repository.WarehouseStockRepository  = (*stockRepo)(nil)
	_ repository.StockMovementRepository   = (*movementRepo)(nil)
	_ repository.DocumentRepository        = (*documentRepo)(nil)
	_ repository.TreasuryPaymentRepository = (*paymentRepo)(nil)
	_ repository.BankAccountRepository     = (*bankAccountRepo)(nil)
	_ repository.WarehouseRepository       = (*warehouseRepo)(nil)
	_ repository.ContactRepository         = (*contactRepo)(nil)
)

type productRepo struct{ s *Store }

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetForUpdate no bloquea nada en memoria; existe para cumplir el contrato.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) UpdateStock(id string, stock decimal.Decimal, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.Status = status
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return nil
}

func (r *productRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Product, 0, len(r.s.products))
	for id := range r.s.products {
		p := r.s.products[id]
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SKU < all[j].SKU })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type stockRepo struct{ s *Store }

func (r *stockRepo) Get(productID, warehouseID string) (*entity.WarehouseStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ws, ok := r.s.stocks[stockKey(productID, warehouseID)]
	if !ok {
		return &entity.WarehouseStock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
	}
	return &ws, nil
}

func (r *stockRepo) GetForUpdate(productID, warehouseID string) (*entity.WarehouseStock, error) {
	return r.Get(productID, warehouseID)
}

func (r *stockRepo) Upsert(ws *entity.WarehouseStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := *ws
	row.UpdatedAt = time.Now()
	r.s.stocks[stockKey(ws.ProductID, ws.WarehouseID)] = row
	return nil
}

func (r *stockRepo) ListByProduct(productID string) ([]*entity.WarehouseStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.WarehouseStock
	for k := range r.s.stocks {
		ws := r.s.stocks[k]
		if ws.ProductID == productID {
			out = append(out, &ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (r *stockRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sum := decimal.Zero
	for _, ws := range r.s.stocks {
		if ws.ProductID == productID {
			sum = sum.Add(ws.Quantity)
		}
	}
	return sum, nil
}

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := *m
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	r.s.movements = append(r.s.movements, row)
	return nil
}

func (r *movementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	// Más recientes primero, como en la consulta SQL.
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ProductID == productID {
			m := r.s.movements[i]
			out = append(out, &m)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *movementRepo) ListByDocument(documentID string) ([]*entity.StockMovement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.StockMovement
	for i := range r.s.movements {
		if r.s.movements[i].DocumentID == documentID {
			m := r.s.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

type documentRepo struct{ s *Store }

func (r *documentRepo) Create(doc *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.documents {
		if existing.Number == doc.Number {
			return domain.ErrDuplicate
		}
	}
	r.s.documents[doc.ID] = *doc
	return nil
}

func (r *documentRepo) GetByID(id string) (*entity.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.documents[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *documentRepo) GetForUpdate(id string) (*entity.Document, error) {
	return r.GetByID(id)
}

func (r *documentRepo) Update(doc *entity.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.documents[doc.ID]; !ok {
		return domain.ErrNotFound
	}
	row := *doc
	row.UpdatedAt = time.Now()
	r.s.documents[doc.ID] = row
	return nil
}

func (r *documentRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.documents, id)
	return nil
}

func (r *documentRepo) CreateLine(line *entity.DocumentLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lines[line.DocumentID] = append(r.s.lines[line.DocumentID], *line)
	return nil
}

func (r *documentRepo) GetLines(documentID string) ([]*entity.DocumentLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.lines[documentID]
	out := make([]*entity.DocumentLine, 0, len(rows))
	for i := range rows {
		l := rows[i]
		out = append(out, &l)
	}
	return out, nil
}

func (r *documentRepo) DeleteLines(documentID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.lines, documentID)
	return nil
}

func (r *documentRepo) MaxSerial(docType, subtype string, scopePattern string, _ time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	prefix := strings.TrimSuffix(scopePattern, "%")
	max := 0
	for _, doc := range r.s.documents {
		if doc.Type != docType || doc.Subtype != subtype {
			continue
		}
		if !strings.HasPrefix(doc.Number, prefix) {
			continue
		}
		if n := numbering.ParseSerial(doc.Number); n > max {
			max = n
		}
	}
	return max, nil
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) Create(p *entity.TreasuryPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.paymentsByDoc[p.DocumentID]; ok {
		return domain.ErrDuplicate
	}
	row := *p
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	r.s.paymentsByDoc[p.DocumentID] = row
	return nil
}

func (r *paymentRepo) GetByDocument(documentID string) (*entity.TreasuryPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.paymentsByDoc[documentID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *paymentRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for docID, p := range r.s.paymentsByDoc {
		if p.ID == id {
			p.Status = status
			r.s.paymentsByDoc[docID] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *paymentRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for docID, p := range r.s.paymentsByDoc {
		if p.ID == id {
			delete(r.s.paymentsByDoc, docID)
			return nil
		}
	}
	return domain.ErrNotFound
}

type bankAccountRepo struct{ s *Store }

func (r *bankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.bankAccounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *bankAccountRepo) GetForUpdate(id string) (*entity.BankAccount, error) {
	return r.GetByID(id)
}

func (r *bankAccountRepo) AddToBalance(id string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.bankAccounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Balance = a.Balance.Add(delta)
	a.UpdatedAt = time.Now()
	r.s.bankAccounts[id] = a
	return nil
}

type warehouseRepo struct{ s *Store }

func (r *warehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *warehouseRepo) AddToCashBalance(id string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return domain.ErrNotFound
	}
	w.CashBalance = w.CashBalance.Add(delta)
	w.UpdatedAt = time.Now()
	r.s.warehouses[id] = w
	return nil
}

type contactRepo struct{ s *Store }

func (r *contactRepo) GetByID(id string) (*entity.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
