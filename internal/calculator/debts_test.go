package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSuggestSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances map[string]string
		want     []DebtEdge
	}{
		{
			name:     "one debtor two creditors",
			balances: map[string]string{"alice": "60", "bob": "-30", "carol": "-30"},
			want: []DebtEdge{
				{From: "bob", To: "alice", Amount: d("30")},
				{From: "carol", To: "alice", Amount: d("30")},
			},
		},
		{
			name:     "largest matched first",
			balances: map[string]string{"a": "50", "b": "20", "c": "-40", "d": "-30"},
			want: []DebtEdge{
				{From: "c", To: "a", Amount: d("40")},
				{From: "d", To: "a", Amount: d("10")},
				{From: "d", To: "b", Amount: d("20")},
			},
		},
		{
			name:     "ties broken by member ID",
			balances: map[string]string{"z": "10", "y": "10", "x": "-20"},
			want: []DebtEdge{
				{From: "x", To: "y", Amount: d("10")},
				{From: "x", To: "z", Amount: d("10")},
			},
		},
		{
			name:     "all settled",
			balances: map[string]string{"a": "0", "b": "0"},
			want:     nil,
		},
		{
			name:     "dust ignored",
			balances: map[string]string{"a": "0.004", "b": "-0.004"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := make(map[string]decimal.Decimal, len(tt.balances))
			for k, v := range tt.balances {
				balances[k] = d(v)
			}

			got := SuggestSettlements(balances)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d edges %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To || !got[i].Amount.Equal(tt.want[i].Amount) {
					t.Errorf("edge %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSuggestSettlementsClearsBalances(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"a": d("123.45"), "b": d("-67.89"), "c": d("10.00"),
		"d": d("-40.56"), "e": d("-25.00"),
	}

	owed := decimal.Zero
	for _, v := range balances {
		if v.IsPositive() {
			owed = owed.Add(v)
		}
	}

	paid := decimal.Zero
	net := make(map[string]decimal.Decimal)
	for _, e := range SuggestSettlements(balances) {
		if !e.Amount.IsPositive() {
			t.Errorf("non-positive edge %+v", e)
		}
		paid = paid.Add(e.Amount)
		net[e.From] = net[e.From].Add(e.Amount)
		net[e.To] = net[e.To].Sub(e.Amount)
	}

	if !paid.Equal(owed) {
		t.Errorf("total paid %s, want %s", paid, owed)
	}
	for id, b := range balances {
		if !b.Add(net[id]).IsZero() {
			t.Errorf("%s left with %s", id, b.Add(net[id]))
		}
	}
}
