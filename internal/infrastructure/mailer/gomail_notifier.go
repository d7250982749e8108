// Package mailer envía las alertas del núcleo por correo vía SMTP.
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/gestion-comercial/internal/application/notify"
	"github.com/jhoicas/gestion-comercial/pkg/config"
)

var _ notify.Notifier = (*GomailNotifier)(nil)

// GomailNotifier implementa notify.Notifier sobre SMTP con gomail.
type GomailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New construye el notificador desde la configuración SMTP. Devuelve nil si
// no hay host configurado; los emisores toleran un Notifier nil.
func New(cfg config.SMTPConfig) *GomailNotifier {
	if cfg.Host == "" || cfg.AlertTo == "" {
		return nil
	}
	return &GomailNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		to:     cfg.AlertTo,
	}
}

// Notify envía la alerta como correo plano. Respeta la cancelación del
// contexto antes de marcar; gomail no acepta contexto durante el envío.
func (n *GomailNotifier) Notify(ctx context.Context, a notify.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject(a))
	m.SetBody("text/plain", body(a))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send alert mail: %w", err)
	}
	return nil
}

func subject(a notify.Alert) string {
	switch a.Kind {
	case notify.AlertLowStock:
		return fmt.Sprintf("Stock bajo: %s", a.ProductSKU)
	case notify.AlertPaymentRecorded:
		return fmt.Sprintf("Pago registrado: documento %s", a.DocumentID)
	default:
		return "Alerta de gestión comercial"
	}
}

func body(a notify.Alert) string {
	switch a.Kind {
	case notify.AlertLowStock:
		return fmt.Sprintf("El producto %s (%s) quedó con stock %s.\n%s\n",
			a.ProductSKU, a.ProductID, a.Quantity.String(), a.Message)
	default:
		return a.Message
	}
}
