// Package ledger owns every mutation of a group's balances.
//
// A write takes the group's lock, reads a fresh snapshot, lets the caller
// compute an Entry from it, and commits the entry's deltas and side effect in
// one storage transaction. Balances sum to zero before and after every write;
// an entry that would break that is refused as an invariant violation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/lock"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// DefaultLockTimeout bounds how long a write waits for the group lock.
const DefaultLockTimeout = 5 * time.Second

// Store is the persistence the ledger needs.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mock_ledger -source=ledger.go Store
type Store interface {
	GetBalances(ctx context.Context, groupID string) (models.Balances, error)
	WriteLedger(ctx context.Context, w storage.LedgerWrite) (models.Balances, error)
}

// Entry is the outcome of an update function: the balance deltas plus at most
// one side effect committed with them.
type Entry struct {
	// Kind labels the write in logs and metrics ("expense", "settlement").
	Kind string

	Deltas map[string]decimal.Decimal

	CompleteSettlementID string
	RecordSettlement     *models.Settlement
	RecordExpense        *models.GroupExpense
}

func (e *Entry) empty() bool {
	return len(e.Deltas) == 0 && e.CompleteSettlementID == "" &&
		e.RecordSettlement == nil && e.RecordExpense == nil
}

// Ledger serializes and applies balance changes per group.
type Ledger struct {
	store       Store
	locker      lock.Locker
	lockTimeout time.Duration
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLockTimeout sets how long a write waits for the group lock.
func WithLockTimeout(d time.Duration) Option {
	return func(l *Ledger) { l.lockTimeout = d }
}

// WithMetrics records write outcomes into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New creates a Ledger.
func New(store Store, locker lock.Locker, opts ...Option) *Ledger {
	l := &Ledger{
		store:       store,
		locker:      locker,
		lockTimeout: DefaultLockTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func lockKey(groupID string) string {
	return "ledger:" + groupID
}

// Snapshot returns a copy of the group's current balances.
func (l *Ledger) Snapshot(ctx context.Context, groupID string) (models.Balances, error) {
	balances, err := l.store.GetBalances(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	return balances, nil
}

// Apply adds deltas to the group's balances.
func (l *Ledger) Apply(ctx context.Context, groupID string, deltas map[string]decimal.Decimal) (models.Balances, error) {
	return l.Update(ctx, groupID, func(models.Balances) (*Entry, error) {
		return &Entry{Kind: "apply", Deltas: deltas}, nil
	})
}

// Update runs fn against a fresh snapshot while holding the group lock and
// commits the returned entry. If fn returns an error nothing is written.
// A nil or empty entry is a no-op that returns the snapshot.
func (l *Ledger) Update(ctx context.Context, groupID string, fn func(models.Balances) (*Entry, error)) (models.Balances, error) {
	unlock, err := l.acquire(ctx, groupID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	snapshot, err := l.store.GetBalances(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}

	entry, err := fn(snapshot.Clone())
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.empty() {
		return snapshot, nil
	}

	deltas, err := l.check(groupID, snapshot, entry)
	if err != nil {
		l.metrics.LedgerWrite(entry.Kind, "rejected")
		return nil, err
	}

	balances, err := l.store.WriteLedger(ctx, storage.LedgerWrite{
		GroupID:              groupID,
		Deltas:               deltas,
		CompleteSettlementID: entry.CompleteSettlementID,
		RecordSettlement:     entry.RecordSettlement,
		RecordExpense:        entry.RecordExpense,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUnbalanced) {
			l.violation(groupID, entry, err)
		}
		l.metrics.LedgerWrite(entry.Kind, "failed")
		return nil, translate(err)
	}

	l.metrics.LedgerWrite(entry.Kind, "ok")
	l.logger.Debug("ledger write committed", "group_id", groupID, "kind", entry.Kind, "members", len(deltas))
	return balances, nil
}

func (l *Ledger) acquire(ctx context.Context, groupID string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, l.lockTimeout)
	defer cancel()

	unlock, err := l.locker.Lock(lockCtx, lockKey(groupID))
	if errors.Is(err, lock.ErrNotObtained) {
		l.logger.Warn("group lock not obtained", "group_id", groupID, "timeout", l.lockTimeout)
		return nil, apperr.ErrGroupBusy
	}
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	return unlock, nil
}

// check normalizes the deltas and verifies every member is known and the set
// nets to zero.
func (l *Ledger) check(groupID string, snapshot models.Balances, entry *Entry) (map[string]decimal.Decimal, error) {
	deltas := make(map[string]decimal.Decimal, len(entry.Deltas))
	for member, delta := range entry.Deltas {
		if _, ok := snapshot[member]; !ok {
			return nil, apperr.ErrNotAGroupMember.WithField("member", member)
		}
		if delta = money.Normalize(delta); !delta.IsZero() {
			deltas[member] = delta
		}
	}

	if sum := money.Sum(deltas); !sum.IsZero() {
		err := fmt.Errorf("delta set sums to %s", sum.String())
		l.violation(groupID, entry, err)
		return nil, apperr.ErrInvariantViolation.Wrap(err)
	}
	return deltas, nil
}

func (l *Ledger) violation(groupID string, entry *Entry, err error) {
	l.metrics.InvariantViolation()
	l.logger.Error("ledger invariant violation",
		"group_id", groupID,
		"kind", entry.Kind,
		"deltas", entry.Deltas,
		"error", err,
	)
}

// translate maps storage errors onto the application taxonomy.
func translate(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.ErrGroupNotFound.Wrap(err)
	case errors.Is(err, storage.ErrUnknownMember):
		return apperr.ErrNotAGroupMember.Wrap(err)
	case errors.Is(err, storage.ErrConflict):
		return apperr.ErrInvalidState.Wrap(err)
	case errors.Is(err, storage.ErrUnbalanced):
		return apperr.ErrInvariantViolation.Wrap(err)
	default:
		return apperr.ErrInternal.Wrap(err)
	}
}
