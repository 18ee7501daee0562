package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// listExpensesLimit caps ListExpenses.
const listExpensesLimit = 50

// ExpenseService implements the Connect ExpenseService: personal expenses
// that never touch a group ledger. Every call is scoped to the caller.
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	store storage.ExpenseStore
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.ExpenseStore) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense logs a personal expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.ExpenseResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	in, err := decodeCreateExpense(req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	expense := &models.Expense{
		OwnerID:     userID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "error", err)
		return nil, toConnectError(apperr.ErrInternal.Wrap(err))
	}

	slog.Info("Expense created", "expense_id", expense.ID, "category", expense.Category)
	return connect.NewResponse(&pb.ExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// GetExpense retrieves one of the caller's expenses.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.ExpenseResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&expenseIDInput{ExpenseID: req.Msg.ExpenseId}); err != nil {
		return nil, toConnectError(err)
	}

	expense, err := s.store.GetExpense(ctx, userID, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError(expenseError(err))
	}
	return connect.NewResponse(&pb.ExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

// ListExpenses returns the caller's most recent expenses.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, userID, listExpensesLimit)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(apperr.ErrInternal.Wrap(err))
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoExpense(e)
	}
	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// UpdateExpense replaces the editable fields of one of the caller's expenses.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[pb.UpdateExpenseRequest]) (*connect.Response[pb.ExpenseResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	in, err := decodeUpdateExpense(req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	existing, err := s.store.GetExpense(ctx, userID, in.ExpenseID)
	if err != nil {
		return nil, toConnectError(expenseError(err))
	}

	existing.Amount = in.Amount
	existing.Category = in.Category
	existing.Description = in.Description
	if in.Date != 0 {
		existing.Date = in.Date
	}

	if err := s.store.UpdateExpense(ctx, existing); err != nil {
		return nil, toConnectError(expenseError(err))
	}

	slog.Info("Expense updated", "expense_id", existing.ID)
	return connect.NewResponse(&pb.ExpenseResponse{Expense: toProtoExpense(existing)}), nil
}

// DeleteExpense removes one of the caller's expenses.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(&expenseIDInput{ExpenseID: req.Msg.ExpenseId}); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.DeleteExpense(ctx, userID, req.Msg.ExpenseId); err != nil {
		return nil, toConnectError(expenseError(err))
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseId)
	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

func expenseError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.ErrExpenseNotFound.Wrap(err)
	}
	return apperr.ErrInternal.Wrap(err)
}
