package invoicing

import (
	"context"

	"github.com/avant-dev/usersvc/internal/domain/invoice"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// Manager runs an invoice through calculate, render, and send, in that
// order. Any failure stops the flow and is returned unchanged; a render
// that fails never reaches the sender.
type Manager interface {
	ProcessInvoice(ctx context.Context, inv invoice.Invoice, customerEmail, format string) (invoice.Rendered, error)
}

type manager struct {
	calculator Calculator
	renderer   Renderer
	sender     Sender
	log        *logger.Logger
}

func NewManager(calculator Calculator, renderer Renderer, sender Sender, log *logger.Logger) Manager {
	return &manager{
		calculator: calculator,
		renderer:   renderer,
		sender:     sender,
		log:        log.With("service", "InvoiceManager"),
	}
}

func (m *manager) ProcessInvoice(ctx context.Context, inv invoice.Invoice, customerEmail, format string) (invoice.Rendered, error) {
	calculated := m.calculator.Calculate(inv)

	rendered, err := m.renderer.Render(calculated, format)
	if err != nil {
		return invoice.Rendered{}, err
	}

	if err := m.sender.Send(ctx, rendered, customerEmail); err != nil {
		return invoice.Rendered{}, err
	}

	m.log.Info("Processed invoice",
		"invoice_id", inv.ID,
		"customer_email", customerEmail,
		"format", rendered.Format,
		"amount", calculated.Amount.StringFixed(2),
	)
	return rendered, nil
}
