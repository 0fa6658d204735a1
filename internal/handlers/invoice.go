package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avant-dev/usersvc/internal/domain/invoice"
	"github.com/avant-dev/usersvc/internal/invoicing"
)

type InvoiceHandler struct {
	manager invoicing.Manager
}

func NewInvoiceHandler(manager invoicing.Manager) *InvoiceHandler {
	return &InvoiceHandler{manager: manager}
}

// POST /api/invoices
// body: { "customer_email": "...", "amount": "12.50", "format": "text" }
func (ih *InvoiceHandler) ProcessInvoice(c *gin.Context) {
	var req struct {
		ID            string `json:"id"`
		CustomerEmail string `json:"customer_email"`
		Amount        string `json:"amount"`
		Format        string `json:"format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_amount", "detail": err.Error()})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Format == "" {
		req.Format = invoicing.InvoiceFormatText
	}

	inv := invoice.Invoice{ID: req.ID, CustomerEmail: req.CustomerEmail, Amount: amount}
	rendered, err := ih.manager.ProcessInvoice(c.Request.Context(), inv, req.CustomerEmail, req.Format)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": rendered})
}
