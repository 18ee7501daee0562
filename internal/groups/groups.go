// Package groups orchestrates group operations: creation, additive joins,
// expenses and balance queries. Every balance change goes through the ledger.
package groups

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// Store is the persistence the group service needs besides the ledger.
type Store interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)
	AddGroupMembers(ctx context.Context, groupID string, members []string) error
	ListGroupExpenses(ctx context.Context, groupID string) ([]*models.GroupExpense, error)
}

// Directory resolves member identities.
type Directory interface {
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)
	GetUsersByEmails(ctx context.Context, emails []string) ([]*models.User, error)
}

// ExpenseRequest adds an expense to a group.
type ExpenseRequest struct {
	GroupID string
	ActorID string
	// PaidBy defaults to the actor.
	PaidBy      string
	Amount      decimal.Decimal
	SplitType   models.SplitType
	Splits      []calculator.Share
	Description string
}

// Service implements group operations.
type Service struct {
	store     Store
	directory Directory
	ledger    *ledger.Ledger
	logger    *slog.Logger
}

// New creates a Service.
func New(store Store, directory Directory, l *ledger.Ledger) *Service {
	return &Service{
		store:     store,
		directory: directory,
		ledger:    l,
		logger:    slog.Default(),
	}
}

// CreateGroup creates a group. The creator is always the first member and
// duplicate member IDs are collapsed. Every member starts at zero.
func (s *Service) CreateGroup(ctx context.Context, name string, memberIDs []string, creatorID string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ErrEmptyName.WithField("name", "is required")
	}

	group := &models.Group{
		Name:      name,
		Members:   dedupe(append([]string{creatorID}, memberIDs...)),
		CreatedBy: creatorID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}

	s.logger.Info("group created", "group_id", group.ID, "members", len(group.Members))
	return group, nil
}

// ResolveEmails maps member e-mails to user IDs. An unknown e-mail fails the
// whole call so a typo never silently drops a member.
func (s *Service) ResolveEmails(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	users, err := s.directory.GetUsersByEmails(ctx, emails)
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	byEmail := make(map[string]string, len(users))
	for _, u := range users {
		byEmail[u.Email] = u.ID
	}

	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		id, ok := byEmail[strings.ToLower(strings.TrimSpace(email))]
		if !ok {
			return nil, apperr.ErrUserNotFound.WithMessage("no user with email %s", email).WithField("member_emails", email)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetGroup returns a group to one of its members.
func (s *Service) GetGroup(ctx context.Context, groupID, requesterID string) (*models.Group, error) {
	return s.memberGroup(ctx, groupID, requesterID)
}

// ListGroups returns the groups userID belongs to, newest first.
func (s *Service) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsByMember(ctx, userID)
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	return groups, nil
}

// AddMembers joins new members to a group at a zero balance.
// Only existing members may add others; members are never removed.
func (s *Service) AddMembers(ctx context.Context, groupID, actorID string, memberIDs []string) (*models.Group, error) {
	if _, err := s.memberGroup(ctx, groupID, actorID); err != nil {
		return nil, err
	}
	if err := s.store.AddGroupMembers(ctx, groupID, dedupe(memberIDs)); err != nil {
		return nil, mapNotFound(err)
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.logger.Info("group members added", "group_id", groupID, "members", len(group.Members))
	return group, nil
}

// AddExpense splits an expense across the group and applies it to the ledger.
// The split is computed against the locked snapshot, so a member joining
// concurrently is either fully in or fully out.
func (s *Service) AddExpense(ctx context.Context, req ExpenseRequest) (models.Balances, error) {
	if _, err := s.memberGroup(ctx, req.GroupID, req.ActorID); err != nil {
		return nil, err
	}
	if req.PaidBy == "" {
		req.PaidBy = req.ActorID
	}
	if req.SplitType == "" {
		req.SplitType = models.SplitEqual
	}

	req.Amount = money.Round(req.Amount)
	if !req.Amount.IsPositive() {
		return nil, apperr.ErrInvalidAmount.WithField("amount", "must be greater than 0")
	}

	balances, err := s.ledger.Update(ctx, req.GroupID, func(b models.Balances) (*ledger.Entry, error) {
		members := b.Members()

		var deltas calculator.Deltas
		var err error
		switch req.SplitType {
		case models.SplitEqual:
			deltas, err = calculator.EqualSplit(req.Amount, req.PaidBy, members)
		case models.SplitCustom:
			deltas, err = calculator.CustomSplit(req.Amount, req.PaidBy, members, req.Splits)
		default:
			err = apperr.ErrInvalidSplit.WithField("split_type", "must be equal or custom")
		}
		if err != nil {
			return nil, err
		}

		return &ledger.Entry{
			Kind:   "expense",
			Deltas: deltas,
			RecordExpense: &models.GroupExpense{
				GroupID:     req.GroupID,
				PaidBy:      req.PaidBy,
				Amount:      req.Amount,
				SplitType:   req.SplitType,
				Description: strings.TrimSpace(req.Description),
				Deltas:      deltas,
				CreatedBy:   req.ActorID,
			},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("group expense added",
		"group_id", req.GroupID,
		"paid_by", req.PaidBy,
		"amount", money.Format(req.Amount),
		"split_type", req.SplitType,
	)
	return balances, nil
}

// ListExpenses returns a group's expense log to one of its members.
func (s *Service) ListExpenses(ctx context.Context, groupID, requesterID string) ([]*models.GroupExpense, error) {
	if _, err := s.memberGroup(ctx, groupID, requesterID); err != nil {
		return nil, err
	}
	expenses, err := s.store.ListGroupExpenses(ctx, groupID)
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}
	return expenses, nil
}

// GetBalances returns every member's balance in member order, joined with
// the member's name and e-mail.
func (s *Service) GetBalances(ctx context.Context, groupID, requesterID string) ([]models.MemberBalance, error) {
	group, err := s.memberGroup(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}

	balances, err := s.ledger.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.rows(ctx, group, balances)
}

// BalanceRows joins balances returned by a ledger write with member names,
// in the group's member order.
func (s *Service) BalanceRows(ctx context.Context, groupID string, balances models.Balances) ([]models.MemberBalance, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return s.rows(ctx, group, balances)
}

func (s *Service) rows(ctx context.Context, group *models.Group, balances models.Balances) ([]models.MemberBalance, error) {
	users, err := s.directory.GetUsersByIDs(ctx, balances.Members())
	if err != nil {
		return nil, apperr.ErrInternal.Wrap(err)
	}

	// Members that joined after group was read are listed last.
	members := group.Members
	if len(balances) != len(members) {
		members = appendMissing(members, balances.Members())
	}

	result := make([]models.MemberBalance, 0, len(members))
	for _, id := range members {
		row := models.MemberBalance{UserID: id, Amount: money.Normalize(balances.Get(id))}
		if u, ok := users[id]; ok {
			row.Name = u.DisplayName
			row.Email = u.Email
		}
		result = append(result, row)
	}
	return result, nil
}

// SuggestSettlements proposes payments that would clear the group's balances.
func (s *Service) SuggestSettlements(ctx context.Context, groupID, requesterID string) ([]calculator.DebtEdge, error) {
	if _, err := s.memberGroup(ctx, groupID, requesterID); err != nil {
		return nil, err
	}
	balances, err := s.ledger.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return calculator.SuggestSettlements(balances), nil
}

// memberGroup loads a group visible to userID. Non-members get the same
// error as for a group that does not exist.
func (s *Service) memberGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !group.HasMember(userID) {
		return nil, apperr.ErrGroupNotFound
	}
	return group, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.ErrGroupNotFound.Wrap(err)
	}
	return apperr.ErrInternal.Wrap(err)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func appendMissing(ordered, all []string) []string {
	out := append([]string(nil), ordered...)
	seen := make(map[string]bool, len(ordered))
	for _, id := range ordered {
		seen[id] = true
	}
	for _, id := range all {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}
