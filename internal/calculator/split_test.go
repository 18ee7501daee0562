package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/money"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		payer   string
		members []string
		want    map[string]string
		wantErr error
	}{
		{
			name:    "even three-way split",
			amount:  "90",
			payer:   "alice",
			members: []string{"alice", "bob", "carol"},
			want:    map[string]string{"alice": "60", "bob": "-30", "carol": "-30"},
		},
		{
			name:    "payer absorbs rounding",
			amount:  "100",
			payer:   "alice",
			members: []string{"alice", "bob", "carol"},
			want:    map[string]string{"alice": "66.66", "bob": "-33.33", "carol": "-33.33"},
		},
		{
			name:    "payer not first",
			amount:  "10",
			payer:   "bob",
			members: []string{"alice", "bob"},
			want:    map[string]string{"alice": "-5", "bob": "5"},
		},
		{
			name:    "single member is a no-op",
			amount:  "42",
			payer:   "alice",
			members: []string{"alice"},
			want:    map[string]string{},
		},
		{
			name:    "zero amount",
			amount:  "0",
			payer:   "alice",
			members: []string{"alice", "bob"},
			wantErr: apperr.ErrInvalidAmount,
		},
		{
			name:    "payer outside group",
			amount:  "10",
			payer:   "mallory",
			members: []string{"alice", "bob"},
			wantErr: apperr.ErrNotAGroupMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualSplit(d(tt.amount), tt.payer, tt.members)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("EqualSplit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("EqualSplit() unexpected error: %v", err)
			}
			assertDeltas(t, got, tt.want)
		})
	}
}

func TestCustomSplit(t *testing.T) {
	members := []string{"alice", "bob", "carol"}

	tests := []struct {
		name    string
		payer   string
		shares  []Share
		want    map[string]string
		wantErr error
	}{
		{
			name:  "payer listed",
			payer: "alice",
			shares: []Share{
				{Member: "alice", Percentage: d("50")},
				{Member: "bob", Percentage: d("30")},
				{Member: "carol", Percentage: d("20")},
			},
			want: map[string]string{"alice": "50", "bob": "-30", "carol": "-20"},
		},
		{
			name:  "unlisted member untouched",
			payer: "alice",
			shares: []Share{
				{Member: "bob", Percentage: d("100")},
			},
			want: map[string]string{"alice": "100", "bob": "-100"},
		},
		{
			name:  "fractional percentages",
			payer: "carol",
			shares: []Share{
				{Member: "alice", Percentage: d("33.33")},
				{Member: "bob", Percentage: d("33.33")},
				{Member: "carol", Percentage: d("33.34")},
			},
			want: map[string]string{"alice": "-33.33", "bob": "-33.33", "carol": "66.66"},
		},
		{
			name:  "sum below 100",
			payer: "alice",
			shares: []Share{
				{Member: "alice", Percentage: d("50")},
				{Member: "bob", Percentage: d("49")},
			},
			wantErr: apperr.ErrInvalidSplit,
		},
		{
			name:  "sum above 100",
			payer: "alice",
			shares: []Share{
				{Member: "alice", Percentage: d("50")},
				{Member: "bob", Percentage: d("51")},
			},
			wantErr: apperr.ErrInvalidSplit,
		},
		{
			name:  "negative percentage",
			payer: "alice",
			shares: []Share{
				{Member: "alice", Percentage: d("110")},
				{Member: "bob", Percentage: d("-10")},
			},
			wantErr: apperr.ErrInvalidSplit,
		},
		{
			name:  "duplicate member",
			payer: "alice",
			shares: []Share{
				{Member: "bob", Percentage: d("50")},
				{Member: "bob", Percentage: d("50")},
			},
			wantErr: apperr.ErrInvalidSplit,
		},
		{
			name:  "non-member listed",
			payer: "alice",
			shares: []Share{
				{Member: "alice", Percentage: d("50")},
				{Member: "mallory", Percentage: d("50")},
			},
			wantErr: apperr.ErrNotAGroupMember,
		},
		{
			name:    "no shares",
			payer:   "alice",
			wantErr: apperr.ErrInvalidSplit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CustomSplit(d("100"), tt.payer, members, tt.shares)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CustomSplit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CustomSplit() unexpected error: %v", err)
			}
			assertDeltas(t, got, tt.want)
		})
	}
}

func TestSplitsNetToZero(t *testing.T) {
	members := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, amount := range []string{"0.01", "0.05", "1", "10", "99.99", "100", "1234.57"} {
		for _, payer := range members {
			deltas, err := EqualSplit(d(amount), payer, members)
			if err != nil {
				t.Fatalf("EqualSplit(%s, %s) error: %v", amount, payer, err)
			}
			if sum := money.Sum(deltas); !sum.IsZero() {
				t.Errorf("EqualSplit(%s, %s) sums to %s", amount, payer, sum)
			}
		}
	}
}

func assertDeltas(t *testing.T, got Deltas, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d deltas %v, want %d", len(got), got, len(want))
	}
	for member, w := range want {
		if !got[member].Equal(d(w)) {
			t.Errorf("%s delta = %s, want %s", member, got[member], w)
		}
	}
}
