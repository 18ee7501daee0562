package models

import "github.com/shopspring/decimal"

// Expense is a personal expense logged by its owner.
// It never touches a group ledger.
type Expense struct {
	ID          string
	OwnerID     string
	Amount      decimal.Decimal
	Category    string
	Description string

	// Date is the Unix timestamp the expense happened; defaults to creation time.
	Date int64

	CreatedAt int64
	UpdatedAt int64
}
