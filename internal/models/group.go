package models

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// Group is a set of members who share costs.
// Membership is fixed at creation plus additive joins; members are never removed.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Trip to Goa").
	Name string

	// Members is the ordered list of member user IDs.
	Members []string

	// CreatedBy is the user ID of the creator. The creator is always a member.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}

// Balances maps member ID to signed balance.
// Positive means the group owes the member; negative means the member owes.
type Balances map[string]decimal.Decimal

// Clone returns an independent copy of b.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Get returns the balance for member, zero if absent.
func (b Balances) Get(member string) decimal.Decimal {
	if v, ok := b[member]; ok {
		return v
	}
	return decimal.Zero
}

// Members returns the member IDs in ascending order.
func (b Balances) Members() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MemberBalance is one row of a group's balance view.
type MemberBalance struct {
	UserID string
	Name   string
	Email  string
	Amount decimal.Decimal
}

// SplitType selects how a group expense is divided.
type SplitType string

const (
	SplitEqual  SplitType = "equal"
	SplitCustom SplitType = "custom"
)

// GroupExpense records an expense applied to a group's ledger.
type GroupExpense struct {
	ID          string
	GroupID     string
	PaidBy      string
	Amount      decimal.Decimal
	SplitType   SplitType
	Description string

	// Deltas is the balance change this expense produced.
	Deltas map[string]decimal.Decimal

	CreatedBy string
	CreatedAt int64
}
