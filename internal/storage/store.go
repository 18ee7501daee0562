// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a guarded update found the record in an unexpected state.
	ErrConflict = errors.New("conflict")
	// ErrUnknownMember is returned when a delta targets someone who is not a group member.
	ErrUnknownMember = errors.New("unknown group member")
	// ErrUnbalanced is returned when a ledger write would leave balances not summing to zero.
	ErrUnbalanced = errors.New("balances do not sum to zero")
	// ErrDuplicate is returned when a unique key already exists.
	ErrDuplicate = errors.New("duplicate")
)

// LedgerWrite is one atomic mutation of a group's ledger. The balance deltas
// and the optional side effects commit in a single transaction or not at all.
type LedgerWrite struct {
	GroupID string

	// Deltas maps member ID to signed balance change.
	Deltas map[string]decimal.Decimal

	// CompleteSettlementID flips that settlement from pending to completed.
	// If it is no longer pending the whole write fails with ErrConflict.
	CompleteSettlementID string

	// RecordSettlement is inserted as part of the write (direct settle).
	RecordSettlement *models.Settlement

	// RecordExpense is inserted as part of the write.
	RecordExpense *models.GroupExpense
}

// GroupStore persists groups and their membership.
type GroupStore interface {
	// CreateGroup persists a new group with a zero balance for every member.
	// The group.ID and CreatedAt fields are populated by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID. Returns ErrNotFound if absent.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember returns the groups userID belongs to, newest first.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMembers adds members with a zero balance. Existing members are skipped.
	AddGroupMembers(ctx context.Context, groupID string, members []string) error
}

// LedgerStore persists group balances.
type LedgerStore interface {
	// GetBalances returns the balance of every member of the group.
	GetBalances(ctx context.Context, groupID string) (models.Balances, error)

	// WriteLedger applies w atomically and returns the balances after the write.
	WriteLedger(ctx context.Context, w LedgerWrite) (models.Balances, error)

	// ListGroupExpenses returns the group's expense log, newest first.
	ListGroupExpenses(ctx context.Context, groupID string) ([]*models.GroupExpense, error)
}

// SettlementStore persists settlement records.
type SettlementStore interface {
	// CreateSettlement inserts a settlement. ID and timestamps are generated when empty.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// GetSettlement retrieves a settlement by ID. Returns ErrNotFound if absent.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// RejectSettlement flips a pending settlement to rejected.
	// Returns ErrConflict if it is no longer pending.
	RejectSettlement(ctx context.Context, settlementID string) error

	// ListPendingSettlements returns settlements awaiting receiverID's decision, newest first.
	ListPendingSettlements(ctx context.Context, receiverID string) ([]*models.Settlement, error)

	// ListSettlementsByGroup returns a group's settlements, newest first.
	// An empty status returns every status.
	ListSettlementsByGroup(ctx context.Context, groupID string, status models.SettlementStatus) ([]*models.Settlement, error)
}

// ExpenseStore persists personal expenses. Every call is scoped to the owner.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpense(ctx context.Context, ownerID, expenseID string) (*models.Expense, error)
	ListExpenses(ctx context.Context, ownerID string, limit int) ([]*models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, ownerID, expenseID string) error
}

// UserStore is the member directory.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
	GetUsersByEmails(ctx context.Context, emails []string) ([]*models.User, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error)
}

// Store defines every storage operation used by the services.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	GroupStore
	LedgerStore
	SettlementStore
	ExpenseStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
