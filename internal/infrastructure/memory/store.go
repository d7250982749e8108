// Package memory implementa los repositorios sobre mapas en memoria.
// Sirve como backend de las pruebas de aplicación y como modo demo sin
// base de datos. Las transacciones se simulan con snapshot/restore.
package memory

import (
	"sync"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

// Store guarda todo el estado en mapas protegidos por un RWMutex. Los
// valores se guardan por valor y se devuelven copias, igual que haría
// una fila de base de datos.
type Store struct {
	mu            sync.RWMutex
	products      map[string]entity.Product
	stocks        map[string]entity.WarehouseStock // clave producto|bodega
	movements     []entity.StockMovement           // solo-anexar
	documents     map[string]entity.Document
	lines         map[string][]entity.DocumentLine // por documento
	paymentsByDoc map[string]entity.TreasuryPayment
	bankAccounts  map[string]entity.BankAccount
	warehouses    map[string]entity.Warehouse
	contacts      map[string]entity.Contact
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:      map[string]entity.Product{},
		stocks:        map[string]entity.WarehouseStock{},
		documents:     map[string]entity.Document{},
		lines:         map[string][]entity.DocumentLine{},
		paymentsByDoc: map[string]entity.TreasuryPayment{},
		bankAccounts:  map[string]entity.BankAccount{},
		warehouses:    map[string]entity.Warehouse{},
		contacts:      map[string]entity.Contact{},
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

// Repos devuelve el juego completo de repositorios sobre este almacén.
func (s *Store) Repos() ledger.Repos {
	return ledger.Repos{
		Products:     &productRepo{s},
		Stocks:       &stockRepo{s},
		Movements:    &movementRepo{s},
		Documents:    &documentRepo{s},
		Payments:     &paymentRepo{s},
		BankAccounts: &bankAccountRepo{s},
		Warehouses:   &warehouseRepo{s},
	}
}

// Products expone el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s} }

// Stocks expone el repositorio de stock por bodega.
func (s *Store) Stocks() repository.WarehouseStockRepository { return &stockRepo{s} }

// Movements expone el libro de movimientos.
func (s *Store) Movements() repository.StockMovementRepository { return &movementRepo{s} }

// Documents expone el repositorio de documentos.
func (s *Store) Documents() repository.DocumentRepository { return &documentRepo{s} }

// Payments expone el repositorio de pagos.
func (s *Store) Payments() repository.TreasuryPaymentRepository { return &paymentRepo{s} }

// BankAccounts expone el repositorio de cuentas bancarias.
func (s *Store) BankAccounts() repository.BankAccountRepository { return &bankAccountRepo{s} }

// Warehouses expone el repositorio de bodegas.
func (s *Store) Warehouses() repository.WarehouseRepository { return &warehouseRepo{s} }

// Contacts expone el repositorio de terceros.
func (s *Store) Contacts() repository.ContactRepository { return &contactRepo{s} }

// SeedProduct inserta o reemplaza un producto (para pruebas y modo demo).
func (s *Store) SeedProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// SeedWarehouse inserta o reemplaza una bodega.
func (s *Store) SeedWarehouse(w entity.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouses[w.ID] = w
}

// SeedBankAccount inserta o reemplaza una cuenta bancaria.
func (s *Store) SeedBankAccount(a entity.BankAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bankAccounts[a.ID] = a
}

// SeedContact inserta o reemplaza un tercero.
func (s *Store) SeedContact(c entity.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[c.ID] = c
}

// snapshot copia todo el estado. Las entidades son valores, así que la
// copia de mapas y slices basta.
func (s *Store) snapshot() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := NewStore()
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.stocks {
		snap.stocks[k] = v
	}
	snap.movements = append([]entity.StockMovement(nil), s.movements...)
	for k, v := range s.documents {
		snap.documents[k] = v
	}
	for k, v := range s.lines {
		snap.lines[k] = append([]entity.DocumentLine(nil), v...)
	}
	for k, v := range s.paymentsByDoc {
		snap.paymentsByDoc[k] = v
	}
	for k, v := range s.bankAccounts {
		snap.bankAccounts[k] = v
	}
	for k, v := range s.warehouses {
		snap.warehouses[k] = v
	}
	for k, v := range s.contacts {
		snap.contacts[k] = v
	}
	return snap
}

// restore reemplaza el estado con el del snapshot.
func (s *Store) restore(snap *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.stocks = snap.stocks
	s.movements = snap.movements
	s.documents = snap.documents
	s.lines = snap.lines
	s.paymentsByDoc = snap.paymentsByDoc
	s.bankAccounts = snap.bankAccounts
	s.warehouses = snap.warehouses
	s.contacts = snap.contacts
}
