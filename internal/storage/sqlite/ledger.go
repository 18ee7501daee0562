package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// GetBalances returns the current balance of every member of the group.
func (s *SQLiteStore) GetBalances(ctx context.Context, groupID string) (models.Balances, error) {
	if err := groupExists(ctx, s.db, groupID); err != nil {
		return nil, err
	}
	return queryBalances(ctx, s.db, groupID)
}

func queryBalances(ctx context.Context, q queryer, groupID string) (models.Balances, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT user_id, amount_cents FROM group_balances WHERE group_id = ?",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get balances: %w", err)
	}
	defer rows.Close()

	balances := make(models.Balances)
	for rows.Next() {
		var userID string
		var cents int64
		if err := rows.Scan(&userID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances[userID] = money.FromCents(cents)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}
	return balances, nil
}

// WriteLedger applies the deltas and side effects of w in one transaction.
// Each balance is updated with an in-place increment; after the increments the
// group's balances must sum to exactly zero or the transaction is rolled back.
func (s *SQLiteStore) WriteLedger(ctx context.Context, w storage.LedgerWrite) (models.Balances, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := groupExists(ctx, tx, w.GroupID); err != nil {
		return nil, err
	}

	if w.CompleteSettlementID != "" {
		res, err := tx.ExecContext(ctx,
			`UPDATE settlements SET status = ?, updated_at = ?
			 WHERE id = ? AND group_id = ? AND status = ?`,
			models.StatusCompleted, now(), w.CompleteSettlementID, w.GroupID, models.StatusPending,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to complete settlement: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return nil, fmt.Errorf("failed to complete settlement: %w", err)
		} else if n == 0 {
			return nil, fmt.Errorf("settlement %s is not pending: %w", w.CompleteSettlementID, storage.ErrConflict)
		}
	}

	if err := applyDeltas(ctx, tx, w.GroupID, w.Deltas); err != nil {
		return nil, err
	}

	if w.RecordSettlement != nil {
		if err := insertSettlement(ctx, tx, w.RecordSettlement); err != nil {
			return nil, err
		}
	}

	if w.RecordExpense != nil {
		if err := insertGroupExpense(ctx, tx, w.RecordExpense); err != nil {
			return nil, err
		}
	}

	balances, err := queryBalances(ctx, tx, w.GroupID)
	if err != nil {
		return nil, err
	}
	if sum := money.Sum(balances); !sum.IsZero() {
		return nil, fmt.Errorf("group %s sums to %s: %w", w.GroupID, sum.String(), storage.ErrUnbalanced)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return balances, nil
}

// applyDeltas increments each member's balance in place.
// Members are visited in sorted order so concurrent writers lock rows consistently.
func applyDeltas(ctx context.Context, tx *sql.Tx, groupID string, deltas map[string]decimal.Decimal) error {
	members := make([]string, 0, len(deltas))
	for member := range deltas {
		members = append(members, member)
	}
	sort.Strings(members)

	for _, member := range members {
		res, err := tx.ExecContext(ctx,
			"UPDATE group_balances SET amount_cents = amount_cents + ? WHERE group_id = ? AND user_id = ?",
			money.ToCents(deltas[member]), groupID, member,
		)
		if err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("member %s in group %s: %w", member, groupID, storage.ErrUnknownMember)
		}
	}
	return nil
}

func insertGroupExpense(ctx context.Context, tx *sql.Tx, expense *models.GroupExpense) error {
	if expense.ID == "" {
		expense.ID = newID()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now()
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO group_expenses (id, group_id, paid_by, amount_cents, split_type, description, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.PaidBy, money.ToCents(expense.Amount),
		string(expense.SplitType), nullable(expense.Description), expense.CreatedBy, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group expense: %w", err)
	}

	for member, delta := range expense.Deltas {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_expense_deltas (expense_id, user_id, delta_cents) VALUES (?, ?, ?)",
			expense.ID, member, money.ToCents(delta),
		)
		if err != nil {
			return fmt.Errorf("failed to insert group expense delta: %w", err)
		}
	}
	return nil
}

// ListGroupExpenses returns the group's expense log, newest first.
func (s *SQLiteStore) ListGroupExpenses(ctx context.Context, groupID string) ([]*models.GroupExpense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, paid_by, amount_cents, split_type, description, created_by, created_at
		 FROM group_expenses WHERE group_id = ? ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.GroupExpense
	for rows.Next() {
		expense := &models.GroupExpense{}
		var cents int64
		var splitType string
		var description sql.NullString
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.PaidBy, &cents, &splitType,
			&description, &expense.CreatedBy, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group expense: %w", err)
		}
		expense.Amount = money.FromCents(cents)
		expense.SplitType = models.SplitType(splitType)
		if description.Valid {
			expense.Description = description.String
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group expenses: %w", err)
	}
	rows.Close()

	for _, expense := range expenses {
		if expense.Deltas, err = expenseDeltas(ctx, s.db, expense.ID); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

func expenseDeltas(ctx context.Context, q queryer, expenseID string) (map[string]decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT user_id, delta_cents FROM group_expense_deltas WHERE expense_id = ?",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group expense deltas: %w", err)
	}
	defer rows.Close()

	deltas := make(map[string]decimal.Decimal)
	for rows.Next() {
		var userID string
		var cents int64
		if err := rows.Scan(&userID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan group expense delta: %w", err)
		}
		deltas[userID] = money.FromCents(cents)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group expense deltas: %w", err)
	}
	return deltas, nil
}
