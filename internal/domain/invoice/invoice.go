package invoice

import "github.com/shopspring/decimal"

// Invoice holds the raw billing data for one customer invoice. Amounts
// are decimals; float rounding must never change what a customer owes.
type Invoice struct {
	ID            string          `gorm:"primaryKey;column:id" json:"id"`
	CustomerEmail string          `gorm:"not null;column:customer_email" json:"customer_email"`
	Amount        decimal.Decimal `gorm:"type:numeric;column:amount" json:"amount"`
}

func (Invoice) TableName() string { return "invoice" }

// Rendered is an invoice materialized into one output format, ready to
// hand to a delivery channel.
type Rendered struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}
