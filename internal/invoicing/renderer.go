package invoicing

import (
	"fmt"
	"strings"

	"github.com/avant-dev/usersvc/internal/domain/invoice"
	"github.com/avant-dev/usersvc/internal/pkg/apperrors"
)

// Supported invoice output formats.
const (
	InvoiceFormatText = "text"
	InvoiceFormatHTML = "html"
	InvoiceFormatCSV  = "csv"
)

type invoiceRenderer struct{}

func NewInvoiceRenderer() Renderer {
	return &invoiceRenderer{}
}

func (r *invoiceRenderer) Render(inv invoice.Invoice, format string) (invoice.Rendered, error) {
	normalized := strings.ToLower(format)
	var content string
	switch normalized {
	case InvoiceFormatText:
		content = fmt.Sprintf("Invoice %s\nCustomer: %s\nAmount due: %s", inv.ID, inv.CustomerEmail, inv.Amount.StringFixed(2))
	case InvoiceFormatHTML:
		content = fmt.Sprintf("<div class=\"invoice\"><h1>Invoice %s</h1><p>%s</p><p>Amount due: %s</p></div>", inv.ID, inv.CustomerEmail, inv.Amount.StringFixed(2))
	case InvoiceFormatCSV:
		content = fmt.Sprintf("id,customer_email,amount\n%s,%s,%s", inv.ID, inv.CustomerEmail, inv.Amount.StringFixed(2))
	default:
		return invoice.Rendered{}, &apperrors.UnsupportedFormatError{Format: format}
	}
	return invoice.Rendered{Content: content, Format: normalized}, nil
}
