// Package numbering genera y analiza los números secuenciales de documento
// con formato PREFIX-MM/YY/NNNN, con un consecutivo de 4 dígitos por
// (prefijo, mes, año).
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
)

// prefixes asigna el código de dos o tres letras por tipo de documento.
var prefixes = map[string]string{
	entity.DocTypeSalesInvoice:    "FV",
	entity.DocTypeEstimate:        "CT",
	entity.DocTypePurchaseOrder:   "OC",
	entity.DocTypeDeliveryNote:    "RM",
	entity.DocTypeCreditNote:      "NC",
	entity.DocTypePurchaseInvoice: "FC",
	entity.DocTypeStatement:       "EX",
	entity.DocTypeWithdrawal:      "RT",
}

// Prefix devuelve el prefijo del tipo de documento. Una remisión con subtipo
// diversa numera con su propio prefijo (RD). Tipo desconocido es un error de
// configuración fatal: quien llama no debe continuar.
func Prefix(docType, subtype string) (string, error) {
	if docType == entity.DocTypeDeliveryNote && subtype == entity.SubtypeMisc {
		return "RD", nil
	}
	p, ok := prefixes[docType]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, docType)
	}
	return p, nil
}

// Format arma el número PREFIX-MM/YY/NNNN para el consecutivo dado.
func Format(prefix string, date time.Time, serial int) string {
	return fmt.Sprintf("%s-%02d/%02d/%04d", prefix, int(date.Month()), date.Year()%100, serial)
}

// ScopePattern devuelve el patrón SQL LIKE del ámbito (prefijo, mes, año),
// ej. "FV-08/26/%". Los repositorios lo usan para buscar el máximo consecutivo.
func ScopePattern(prefix string, date time.Time) string {
	return fmt.Sprintf("%s-%02d/%02d/%%", prefix, int(date.Month()), date.Year()%100)
}

// ParseSerial extrae el consecutivo numérico del sufijo NNNN de un número
// formateado. Devuelve 0 si el número no sigue el formato.
func ParseSerial(number string) int {
	idx := strings.LastIndex(number, "/")
	if idx < 0 || idx+1 >= len(number) {
		return 0
	}
	n, err := strconv.Atoi(number[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

// Next devuelve el número siguiente del ámbito dado el máximo consecutivo
// existente (0 si no hay ninguno).
func Next(prefix string, date time.Time, maxSerial int) string {
	return Format(prefix, date, maxSerial+1)
}
