package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación sobre PostgreSQL (lectura de terceros).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	query := `SELECT id, kind, name, email, phone, created_at FROM contacts WHERE id = $1`
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Kind, &c.Name, &c.Email, &c.Phone, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}
