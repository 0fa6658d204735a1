package invoicing

import (
	"context"

	"github.com/avant-dev/usersvc/internal/domain/invoice"
)

// The three capabilities an invoice passes through. Each varies
// independently: tax rules, output formats, and delivery channels all
// change for different reasons.

// Calculator produces the final amount from raw invoice data.
type Calculator interface {
	Calculate(inv invoice.Invoice) invoice.Invoice
}

// Renderer materializes an invoice into one output format. Unknown
// formats are rejected with *apperrors.UnsupportedFormatError.
type Renderer interface {
	Render(inv invoice.Invoice, format string) (invoice.Rendered, error)
}

// Sender delivers a rendered invoice. Real delivery (SMTP, an email
// API) is an external collaborator behind this interface.
type Sender interface {
	Send(ctx context.Context, r invoice.Rendered, customerEmail string) error
}
