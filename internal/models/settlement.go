package models

import "github.com/shopspring/decimal"

// SettlementStatus is the state of a settlement.
// pending → completed | rejected; both outcomes are terminal.
type SettlementStatus string

const (
	StatusPending   SettlementStatus = "pending"
	StatusCompleted SettlementStatus = "completed"
	StatusRejected  SettlementStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s SettlementStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Valid reports whether s is a known status.
func (s SettlementStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// PaymentMethod is how the parties say money changed hands.
// The ledger never moves real funds.
type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodUPI          PaymentMethod = "upi"
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCard, MethodUPI, MethodCash, MethodBankTransfer:
		return true
	}
	return false
}

// Settlement represents a payment between group members to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// PayerID is the member who paid (debtor settling up).
	PayerID string

	// ReceiverID is the member who received payment (creditor being paid).
	ReceiverID string

	// Amount is the payment amount. Always positive.
	Amount decimal.Decimal

	Method PaymentMethod
	Status SettlementStatus

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// Deltas returns the ledger change applied when the settlement completes:
// the payer's debt shrinks and the receiver is owed less.
func (s *Settlement) Deltas() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		s.PayerID:    s.Amount,
		s.ReceiverID: s.Amount.Neg(),
	}
}
