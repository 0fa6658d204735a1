package invoicing

import (
	"context"

	"github.com/avant-dev/usersvc/internal/domain/invoice"
	"github.com/avant-dev/usersvc/internal/pkg/logger"
)

// LogSender records the dispatch instead of delivering it. The stand-in
// delivery channel until a real mail backend is wired behind Sender.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(baseLog *logger.Logger) Sender {
	return &LogSender{log: baseLog.With("component", "InvoiceSender")}
}

func (s *LogSender) Send(ctx context.Context, r invoice.Rendered, customerEmail string) error {
	s.log.Info("Dispatched invoice",
		"customer_email", customerEmail,
		"format", r.Format,
		"bytes", len(r.Content),
	)
	return nil
}
