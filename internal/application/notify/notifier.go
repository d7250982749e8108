// Package notify define el sumidero de notificaciones del núcleo. Las
// notificaciones son best-effort: nunca bloquean ni hacen fallar la
// transacción que las origina.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial/pkg/logger"
)

// Tipos de alerta.
const (
	AlertLowStock        = "low_stock"
	AlertPaymentRecorded = "payment_recorded"
)

// Alert es el payload de una notificación.
type Alert struct {
	Kind       string
	ProductID  string
	ProductSKU string
	DocumentID string
	Quantity   decimal.Decimal
	Message    string
}

// Notifier envía una alerta a un sumidero externo (correo, webhook...).
type Notifier interface {
	Notify(ctx context.Context, a Alert) error
}

// LowStockEmitter emite alertas de stock bajo con debounce por producto:
// un documento de varias líneas no dispara una alerta por línea. El debounce
// es best-effort, no exactamente-una-vez.
type LowStockEmitter struct {
	notifier Notifier
	log      *logger.Logger
	interval time.Duration

	mu   sync.Mutex
	last map[string]time.Time // por producto
}

// NewLowStockEmitter construye el emisor. interval <= 0 usa 5 minutos.
func NewLowStockEmitter(n Notifier, log *logger.Logger, interval time.Duration) *LowStockEmitter {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &LowStockEmitter{
		notifier: n,
		log:      log,
		interval: interval,
		last:     make(map[string]time.Time),
	}
}

// Emit dispara la alerta en segundo plano si el producto no alertó hace poco.
// Un fallo del sumidero se registra y se traga: jamás afecta al caller.
func (e *LowStockEmitter) Emit(productID, sku string, stock decimal.Decimal) {
	if e == nil || e.notifier == nil {
		return
	}
	e.mu.Lock()
	now := time.Now()
	if last, ok := e.last[productID]; ok && now.Sub(last) < e.interval {
		e.mu.Unlock()
		return
	}
	e.last[productID] = now
	e.mu.Unlock()

	a := Alert{
		Kind:       AlertLowStock,
		ProductID:  productID,
		ProductSKU: sku,
		Quantity:   stock,
		Message:    "stock por debajo del umbral de reposición",
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.notifier.Notify(ctx, a); err != nil && e.log != nil {
			e.log.Warn().Err(err).Str("product_id", productID).Msg("alerta de stock bajo no enviada")
		}
	}()
}
