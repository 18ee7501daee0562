// Package calculator turns group expenses into balance deltas and balances
// into settlement suggestions. Everything here is pure: no storage, no locks.
package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/money"
)

var hundred = decimal.NewFromInt(100)

// Share is one member's percentage in a custom split.
type Share struct {
	Member     string
	Percentage decimal.Decimal
}

// Deltas maps member ID to the signed change in their balance.
type Deltas map[string]decimal.Decimal

// EqualSplit divides amount equally among members.
//
// Each non-payer owes share = amount / len(members) rounded to cents, and the
// payer is credited exactly what the others owe. When the amount does not
// divide evenly the payer absorbs the rounding, so the result always nets to
// zero. A group with only the payer yields no deltas.
func EqualSplit(amount decimal.Decimal, payer string, members []string) (Deltas, error) {
	if err := checkInputs(amount, payer, members); err != nil {
		return nil, err
	}

	deltas := make(Deltas)
	if len(members) == 1 {
		return deltas, nil
	}

	share := money.Normalize(amount.Div(decimal.NewFromInt(int64(len(members)))))
	if share.IsZero() {
		return deltas, nil
	}

	credit := decimal.Zero
	for _, member := range members {
		if member == payer {
			continue
		}
		deltas[member] = share.Neg()
		credit = credit.Add(share)
	}
	deltas[payer] = credit

	return deltas, nil
}

// CustomSplit divides amount by percentage.
//
// Percentages must sum to exactly 100, each within [0, 100], with no member
// listed twice and every listed member in the group. Listed non-payers owe
// their share; the payer is credited the sum of those shares. Members not
// listed are left untouched.
func CustomSplit(amount decimal.Decimal, payer string, members []string, shares []Share) (Deltas, error) {
	if err := checkInputs(amount, payer, members); err != nil {
		return nil, err
	}
	if len(shares) == 0 {
		return nil, apperr.ErrInvalidSplit.WithMessage("custom split requires at least one share")
	}

	total := decimal.Zero
	seen := make(map[string]bool, len(shares))
	for _, s := range shares {
		if !slices.Contains(members, s.Member) {
			return nil, apperr.ErrNotAGroupMember.WithField("splits", s.Member)
		}
		if seen[s.Member] {
			return nil, apperr.ErrInvalidSplit.WithMessage("member %s is listed more than once", s.Member)
		}
		seen[s.Member] = true

		if s.Percentage.IsNegative() || s.Percentage.GreaterThan(hundred) {
			return nil, apperr.ErrInvalidSplit.WithMessage("percentage for %s must be between 0 and 100", s.Member)
		}
		total = total.Add(s.Percentage)
	}
	if !total.Equal(hundred) {
		return nil, apperr.ErrInvalidSplit.
			WithMessage("percentages must add up to 100, got %s", total.String()).
			WithField("splits", "must add up to 100")
	}

	deltas := make(Deltas)
	credit := decimal.Zero
	for _, s := range shares {
		if s.Member == payer {
			continue
		}
		share := money.Normalize(amount.Mul(s.Percentage).Div(hundred))
		if share.IsZero() {
			continue
		}
		deltas[s.Member] = share.Neg()
		credit = credit.Add(share)
	}
	if !credit.IsZero() {
		deltas[payer] = credit
	}

	return deltas, nil
}

func checkInputs(amount decimal.Decimal, payer string, members []string) error {
	if !amount.IsPositive() {
		return apperr.ErrInvalidAmount.WithField("amount", "must be greater than 0")
	}
	if !slices.Contains(members, payer) {
		return apperr.ErrNotAGroupMember.WithField("paid_by", payer)
	}
	return nil
}
