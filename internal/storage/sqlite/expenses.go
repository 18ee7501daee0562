package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateExpense persists a personal expense.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = newID()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now()
	}
	if expense.UpdatedAt == 0 {
		expense.UpdatedAt = expense.CreatedAt
	}
	if expense.Date == 0 {
		expense.Date = expense.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, owner_id, amount_cents, category, description, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.OwnerID, money.ToCents(expense.Amount), expense.Category,
		nullable(expense.Description), expense.Date, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var cents int64
	var description sql.NullString
	err := row.Scan(&expense.ID, &expense.OwnerID, &cents, &expense.Category, &description,
		&expense.Date, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}
	expense.Amount = money.FromCents(cents)
	if description.Valid {
		expense.Description = description.String
	}
	return expense, nil
}

// GetExpense retrieves one of ownerID's expenses.
// Another owner's expense is reported as not found.
func (s *SQLiteStore) GetExpense(ctx context.Context, ownerID, expenseID string) (*models.Expense, error) {
	expense, err := scanExpense(s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, amount_cents, category, description, date, created_at, updated_at
		 FROM expenses WHERE id = ? AND owner_id = ?`,
		expenseID, ownerID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns ownerID's most recent expenses by date.
func (s *SQLiteStore) ListExpenses(ctx context.Context, ownerID string, limit int) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, amount_cents, category, description, date, created_at, updated_at
		 FROM expenses WHERE owner_id = ?
		 ORDER BY date DESC, created_at DESC
		 LIMIT ?`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// UpdateExpense overwrites the mutable fields of an owner's expense.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = now()

	res, err := s.db.ExecContext(ctx,
		`UPDATE expenses SET amount_cents = ?, category = ?, description = ?, date = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		money.ToCents(expense.Amount), expense.Category, nullable(expense.Description),
		expense.Date, expense.UpdatedAt, expense.ID, expense.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	} else if n == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteExpense removes one of ownerID's expenses.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND owner_id = ?",
		expenseID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	} else if n == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}
