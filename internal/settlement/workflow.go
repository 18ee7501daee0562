// Package settlement implements the settlement protocol between group members.
//
// Two paths move money on the ledger:
//
//   - two-phase: the payer proposes, the receiver confirms or rejects
//   - direct: the payer settles immediately, bounded by what is actually owed
//
// Both paths end in the same ledger primitive.
package settlement

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// Store is the persistence the workflow needs besides the ledger.
type Store interface {
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)
	RejectSettlement(ctx context.Context, settlementID string) error
	ListPendingSettlements(ctx context.Context, receiverID string) ([]*models.Settlement, error)
	ListSettlementsByGroup(ctx context.Context, groupID string, status models.SettlementStatus) ([]*models.Settlement, error)
}

// CanTransition reports whether a settlement may move from one status to another.
func CanTransition(from, to models.SettlementStatus) bool {
	return from == models.StatusPending && (to == models.StatusCompleted || to == models.StatusRejected)
}

// Request describes a payment from PayerID to ReceiverID inside a group.
type Request struct {
	GroupID    string
	PayerID    string
	ReceiverID string
	Amount     decimal.Decimal
	Method     models.PaymentMethod
}

// Workflow runs settlements against a group ledger.
type Workflow struct {
	store   Store
	ledger  *ledger.Ledger
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a Workflow. m may be nil.
func New(store Store, l *ledger.Ledger, m *metrics.Metrics) *Workflow {
	return &Workflow{
		store:   store,
		ledger:  l,
		metrics: m,
		logger:  slog.Default(),
	}
}

// Propose records a pending settlement. The ledger is not touched until the
// receiver confirms.
func (w *Workflow) Propose(ctx context.Context, req Request) (*models.Settlement, error) {
	if _, err := w.validate(ctx, &req); err != nil {
		return nil, err
	}

	s := newSettlement(req, models.StatusPending)
	if err := w.store.CreateSettlement(ctx, s); err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}

	w.metrics.SettlementTransition(string(models.StatusPending))
	w.logger.Info("settlement proposed",
		"settlement_id", s.ID,
		"group_id", s.GroupID,
		"payer", s.PayerID,
		"receiver", s.ReceiverID,
		"amount", money.Format(s.Amount),
	)
	return s, nil
}

// Confirm completes a pending settlement on behalf of its receiver and applies
// it to the ledger. The status flip and the balance change commit together.
func (w *Workflow) Confirm(ctx context.Context, settlementID, actorID string) (*models.Settlement, error) {
	s, err := w.pending(ctx, settlementID, actorID, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	if err := w.apply(ctx, s, true, nil); err != nil {
		return nil, err
	}

	s.Status = models.StatusCompleted
	w.metrics.SettlementTransition(string(models.StatusCompleted))
	w.logger.Info("settlement confirmed", "settlement_id", s.ID, "group_id", s.GroupID)
	return s, nil
}

// Reject declines a pending settlement on behalf of its receiver.
func (w *Workflow) Reject(ctx context.Context, settlementID, actorID string) (*models.Settlement, error) {
	s, err := w.pending(ctx, settlementID, actorID, models.StatusRejected)
	if err != nil {
		return nil, err
	}

	if err := w.store.RejectSettlement(ctx, s.ID); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, apperr.ErrInvalidState.Wrap(err)
		}
		return nil, apperr.ErrInternal.Wrap(err)
	}

	s.Status = models.StatusRejected
	w.metrics.SettlementTransition(string(models.StatusRejected))
	w.logger.Info("settlement rejected", "settlement_id", s.ID, "group_id", s.GroupID)
	return s, nil
}

// SettleDirect applies a payment immediately. The payer must owe, the
// receiver must be owed, and the amount may not exceed the smaller of the two.
// The method defaults to card.
func (w *Workflow) SettleDirect(ctx context.Context, req Request) (*models.Settlement, models.Balances, error) {
	if req.Method == "" {
		req.Method = models.MethodCard
	}
	if _, err := w.validate(ctx, &req); err != nil {
		return nil, nil, err
	}

	s := newSettlement(req, models.StatusCompleted)
	balances, err := w.applyWithBalances(ctx, s, false, withinOutstanding(req))
	if err != nil {
		return nil, nil, err
	}

	w.metrics.SettlementTransition(string(models.StatusCompleted))
	w.logger.Info("settlement completed directly",
		"settlement_id", s.ID,
		"group_id", s.GroupID,
		"amount", money.Format(s.Amount),
	)
	return s, balances, nil
}

// ListPending returns settlements awaiting receiverID's decision.
func (w *Workflow) ListPending(ctx context.Context, receiverID string) ([]*models.Settlement, error) {
	list, err := w.store.ListPendingSettlements(ctx, receiverID)
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	return list, nil
}

// ListGroupTransactions returns a group's settlements for one of its members.
// An empty status returns every status.
func (w *Workflow) ListGroupTransactions(ctx context.Context, groupID, requesterID string, status models.SettlementStatus) ([]*models.Settlement, error) {
	if status != "" && !status.Valid() {
		return nil, apperr.ErrInvalidArgument.WithField("status", "must be pending, completed or rejected")
	}

	group, err := w.group(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(requesterID) {
		return nil, apperr.ErrGroupNotFound
	}

	list, err := w.store.ListSettlementsByGroup(ctx, groupID, status)
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	return list, nil
}

// precondition inspects the locked snapshot before a settlement is applied.
type precondition func(models.Balances) error

func (w *Workflow) apply(ctx context.Context, s *models.Settlement, complete bool, check precondition) error {
	_, err := w.applyWithBalances(ctx, s, complete, check)
	return err
}

// applyWithBalances moves s.Amount from receiver to payer under the group lock.
// With complete set, the stored pending record is flipped to completed;
// otherwise s is inserted as a new record.
func (w *Workflow) applyWithBalances(ctx context.Context, s *models.Settlement, complete bool, check precondition) (models.Balances, error) {
	return w.ledger.Update(ctx, s.GroupID, func(b models.Balances) (*ledger.Entry, error) {
		if check != nil {
			if err := check(b); err != nil {
				return nil, err
			}
		}

		entry := &ledger.Entry{Kind: "settlement", Deltas: s.Deltas()}
		if complete {
			entry.CompleteSettlementID = s.ID
		} else {
			entry.RecordSettlement = s
		}
		return entry, nil
	})
}

func withinOutstanding(req Request) precondition {
	return func(b models.Balances) error {
		payer, receiver := b.Get(req.PayerID), b.Get(req.ReceiverID)
		if !payer.IsNegative() {
			return apperr.ErrPayerNotInDebt
		}
		if !receiver.IsPositive() {
			return apperr.ErrReceiverNotOwed
		}
		if limit := decimal.Min(payer.Abs(), receiver); req.Amount.GreaterThan(limit) {
			return apperr.OverSettlement(limit)
		}
		return nil
	}
}

// validate checks a request against the group and normalizes its amount.
func (w *Workflow) validate(ctx context.Context, req *Request) (*models.Group, error) {
	req.Amount = money.Round(req.Amount)
	if !req.Amount.IsPositive() {
		return nil, apperr.ErrInvalidAmount.WithField("amount", "must be greater than 0")
	}
	if !req.Method.Valid() {
		return nil, apperr.ErrInvalidMethod.WithField("method", "must be card, upi, cash or bank_transfer")
	}
	if req.PayerID == req.ReceiverID {
		return nil, apperr.ErrSelfSettlement.WithField("receiver_id", "must differ from payer")
	}

	group, err := w.group(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(req.PayerID) {
		return nil, apperr.ErrNotAGroupMember.WithField("payer_id", req.PayerID)
	}
	if !group.HasMember(req.ReceiverID) {
		return nil, apperr.ErrNotAGroupMember.WithField("receiver_id", req.ReceiverID)
	}
	return group, nil
}

// pending loads a settlement the actor may move to status. Actors outside
// the settlement's group cannot tell it apart from a missing one.
func (w *Workflow) pending(ctx context.Context, settlementID, actorID string, to models.SettlementStatus) (*models.Settlement, error) {
	s, err := w.store.GetSettlement(ctx, settlementID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.ErrSettlementNotFound.Wrap(err)
	}
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}

	if s.ReceiverID != actorID && s.PayerID != actorID {
		group, err := w.group(ctx, s.GroupID)
		if err != nil {
			return nil, apperr.ErrInternal.Wrap(err)
		}
		if !group.HasMember(actorID) {
			return nil, apperr.ErrSettlementNotFound
		}
	}
	if s.ReceiverID != actorID {
		return nil, apperr.ErrForbidden.WithMessage("only the receiver can %s a settlement", verb(to))
	}
	if !CanTransition(s.Status, to) {
		return nil, apperr.ErrInvalidState.WithMessage("settlement is %s", s.Status)
	}
	return s, nil
}

func (w *Workflow) group(ctx context.Context, groupID string) (*models.Group, error) {
	group, err := w.store.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.ErrGroupNotFound.Wrap(err)
	}
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	return group, nil
}

func newSettlement(req Request, status models.SettlementStatus) *models.Settlement {
	return &models.Settlement{
		GroupID:    req.GroupID,
		PayerID:    req.PayerID,
		ReceiverID: req.ReceiverID,
		Amount:     req.Amount,
		Method:     req.Method,
		Status:     status,
		CreatedBy:  req.PayerID,
	}
}

func verb(to models.SettlementStatus) string {
	if to == models.StatusRejected {
		return "reject"
	}
	return "confirm"
}
