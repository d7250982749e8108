package repository

import "github.com/jhoicas/gestion-comercial/internal/domain/entity"

// ContactRepository lectura de terceros. El núcleo solo la usa para anotar
// la etiqueta de un pago.
type ContactRepository interface {
	GetByID(id string) (*entity.Contact, error)
}
