package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/money"
)

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

type party struct {
	id     string
	amount decimal.Decimal
}

// SuggestSettlements proposes payments that clear every balance.
//
// Algorithm:
// - Split members into debtors (negative, taken as absolute) and creditors (positive)
// - Order each side by amount descending, ties by member ID ascending
// - Greedy: match the current debtor with the current creditor for min(debt, credit)
//
// The result is deterministic for a given snapshot and advisory only.
func SuggestSettlements(balances map[string]decimal.Decimal) []DebtEdge {
	var debtors, creditors []party
	for id, amount := range balances {
		amount = money.Normalize(amount)
		switch {
		case amount.IsNegative():
			debtors = append(debtors, party{id: id, amount: amount.Neg()})
		case amount.IsPositive():
			creditors = append(creditors, party{id: id, amount: amount})
		}
	}
	sortParties(debtors)
	sortParties(creditors)

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		pay := decimal.Min(debtors[i].amount, creditors[j].amount)
		edges = append(edges, DebtEdge{
			From:   debtors[i].id,
			To:     creditors[j].id,
			Amount: pay,
		})

		debtors[i].amount = debtors[i].amount.Sub(pay)
		creditors[j].amount = creditors[j].amount.Sub(pay)

		// Move to next debtor/creditor if fully settled
		if debtors[i].amount.LessThan(money.Epsilon) {
			i++
		}
		if creditors[j].amount.LessThan(money.Epsilon) {
			j++
		}
	}

	return edges
}

func sortParties(p []party) {
	sort.Slice(p, func(a, b int) bool {
		if c := p[a].amount.Cmp(p[b].amount); c != 0 {
			return c > 0
		}
		return p[a].id < p[b].id
	})
}
