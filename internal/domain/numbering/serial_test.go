package numbering_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial/internal/domain"
	"github.com/jhoicas/gestion-comercial/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial/internal/domain/numbering"
)

func TestPrefix(t *testing.T) {
	cases := []struct {
		docType string
		subtype string
		want    string
	}{
		{entity.DocTypeSalesInvoice, "", "FV"},
		{entity.DocTypeEstimate, "", "CT"},
		{entity.DocTypePurchaseOrder, "", "OC"},
		{entity.DocTypeDeliveryNote, "", "RM"},
		{entity.DocTypeCreditNote, "", "NC"},
		{entity.DocTypePurchaseInvoice, "", "FC"},
		{entity.DocTypeStatement, "", "EX"},
		{entity.DocTypeWithdrawal, "", "RT"},
		// La remisión diversa numera en su propio consecutivo.
		{entity.DocTypeDeliveryNote, entity.SubtypeMisc, "RD"},
	}
	for _, tc := range cases {
		p, err := numbering.Prefix(tc.docType, tc.subtype)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p)
	}
}

func TestPrefix_TipoDesconocido(t *testing.T) {
	_, err := numbering.Prefix("recibo_magico", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType,
		"un tipo sin prefijo es un error de configuración, no un fallback")
}

func TestFormatYParse(t *testing.T) {
	date := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	n := numbering.Format("FV", date, 7)
	assert.Equal(t, "FV-08/26/0007", n, "el consecutivo se rellena a 4 dígitos")
	assert.Equal(t, 7, numbering.ParseSerial(n))

	// Consecutivos de más de 4 dígitos no se truncan.
	big := numbering.Format("FV", date, 12345)
	assert.Equal(t, "FV-08/26/12345", big)
	assert.Equal(t, 12345, numbering.ParseSerial(big))

	assert.Equal(t, 0, numbering.ParseSerial("sin-formato"))
	assert.Equal(t, 0, numbering.ParseSerial("FV-08/26/"))
}

func TestScopePattern_PorMesYAno(t *testing.T) {
	agosto := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	septiembre := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "FV-08/26/%", numbering.ScopePattern("FV", agosto))
	assert.NotEqual(t, numbering.ScopePattern("FV", agosto), numbering.ScopePattern("FV", septiembre),
		"cada mes abre su propio ámbito de numeración")
}

func TestNext_Monotono(t *testing.T) {
	date := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "OC-01/26/0001", numbering.Next("OC", date, 0), "ámbito vacío arranca en 1")
	assert.Equal(t, "OC-01/26/0042", numbering.Next("OC", date, 41))

	// El siguiente de un número emitido siempre es mayor que él.
	prev := 0
	for i := 0; i < 5; i++ {
		n := numbering.Next("OC", date, prev)
		serial := numbering.ParseSerial(n)
		assert.Greater(t, serial, prev)
		prev = serial
	}
}
