package apperr

import "github.com/shopspring/decimal"

var (
	ErrInvalidArgument = New(KindValidation, "invalid_argument", "invalid argument")
	ErrInvalidAmount   = New(KindValidation, "invalid_amount", "amount must be greater than 0")
	ErrInvalidSplit    = New(KindValidation, "invalid_split", "invalid split")
	ErrInvalidMethod   = New(KindValidation, "invalid_method", "invalid payment method")
	ErrEmptyName       = New(KindValidation, "empty_name", "name is required")
	ErrNotAGroupMember = New(KindValidation, "not_a_group_member", "user is not a member of this group")
	ErrSelfSettlement  = New(KindValidation, "self_settlement", "payer and receiver must differ")
	ErrPayerNotInDebt  = New(KindValidation, "payer_not_in_debt", "payer does not owe money")
	ErrReceiverNotOwed = New(KindValidation, "receiver_not_owed", "receiver is not owed money")
	ErrOverSettlement  = New(KindValidation, "over_settlement", "settlement exceeds outstanding balance")

	ErrGroupNotFound      = New(KindNotFound, "group_not_found", "group not found")
	ErrSettlementNotFound = New(KindNotFound, "settlement_not_found", "settlement not found")
	ErrExpenseNotFound    = New(KindNotFound, "expense_not_found", "expense not found")
	ErrUserNotFound       = New(KindNotFound, "user_not_found", "user not found")

	ErrForbidden = New(KindForbidden, "forbidden", "not allowed")

	ErrInvalidState = New(KindConflict, "invalid_state", "settlement is no longer pending")
	ErrGroupBusy    = New(KindConflict, "group_busy", "group is busy, retry")

	ErrInvariantViolation = New(KindInvariant, "invariant_violation", "ledger balances do not sum to zero")

	ErrInternal = New(KindInternal, "internal", "internal error")
)

// OverSettlement reports the largest amount that may be settled.
func OverSettlement(max decimal.Decimal) *Error {
	return ErrOverSettlement.
		WithMessage("maximum settlement allowed is %s", max.StringFixed(2)).
		WithField("max", max.StringFixed(2))
}
