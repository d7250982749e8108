package entity

import "time"

// Tipos de tercero.
const (
	ContactKindClient   = "client"
	ContactKindSupplier = "supplier"
)

// Contact es un tercero (cliente o proveedor). El núcleo solo lo usa para
// anotar la etiqueta de un pago; nunca entra en la matemática del libro.
type Contact struct {
	ID        string
	Kind      string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
