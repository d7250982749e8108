package repository

import (
	"time"

	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// DocumentRepository acceso a cabeceras y líneas de documento.
type DocumentRepository interface {
	// Create inserta la cabecera. Un choque con el constraint único del número
	// retorna domain.ErrDuplicate; el coordinador reintenta una vez reasignando.
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	// GetForUpdate bloquea la cabecera mientras se revierte/aplica.
	GetForUpdate(id string) (*entity.Document, error)
	Update(doc *entity.Document) error
	Delete(id string) error

	CreateLine(line *entity.DocumentLine) error
	GetLines(documentID string) ([]*entity.DocumentLine, error)
	DeleteLines(documentID string) error

	// MaxSerial busca el mayor consecutivo existente en el ámbito
	// (patrón LIKE del prefijo/mes/año); 0 si no hay ninguno. El subtipo
	// distingue las remisiones diversas que comparten tabla con las normales.
	MaxSerial(docType, subtype string, scopePattern string, date time.Time) (int, error)
}
