package memory

import (
	"context"

	"github.com/jhoicas/gestion-comercial/internal/application/ledger"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner simula la transacción con snapshot/restore: toma una copia del
// estado antes de ejecutar fn y la restaura completa si fn falla. No aísla
// escritores concurrentes; es para pruebas y modo demo.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repositorios del almacén. Si fn retorna error se
// restaura el snapshot, deshaciendo TODAS las escrituras del callback.
func (r *TxRunner) Run(_ context.Context, fn func(repos ledger.Repos) error) error {
	snap := r.store.snapshot()
	if err := fn(r.store.Repos()); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
