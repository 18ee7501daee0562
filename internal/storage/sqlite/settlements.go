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

const settlementColumns = `id, group_id, payer_id, receiver_id, amount_cents, method, status, created_by, created_at, updated_at`

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	return insertSettlement(ctx, s.db, settlement)
}

func insertSettlement(ctx context.Context, q queryer, settlement *models.Settlement) error {
	// Generate ID if not set
	if settlement.ID == "" {
		settlement.ID = newID()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = now()
	}
	if settlement.UpdatedAt == 0 {
		settlement.UpdatedAt = settlement.CreatedAt
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO settlements (`+settlementColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.GroupID, settlement.PayerID, settlement.ReceiverID,
		money.ToCents(settlement.Amount), string(settlement.Method), string(settlement.Status),
		settlement.CreatedBy, settlement.CreatedAt, settlement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSettlement(row rowScanner) (*models.Settlement, error) {
	settlement := &models.Settlement{}
	var cents int64
	var method, status string
	err := row.Scan(&settlement.ID, &settlement.GroupID, &settlement.PayerID, &settlement.ReceiverID,
		&cents, &method, &status, &settlement.CreatedBy, &settlement.CreatedAt, &settlement.UpdatedAt)
	if err != nil {
		return nil, err
	}
	settlement.Amount = money.FromCents(cents)
	settlement.Method = models.PaymentMethod(method)
	settlement.Status = models.SettlementStatus(status)
	return settlement, nil
}

// GetSettlement retrieves a settlement by ID.
func (s *SQLiteStore) GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error) {
	settlement, err := scanSettlement(s.db.QueryRowContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE id = ?`,
		settlementID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("settlement %s: %w", settlementID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return settlement, nil
}

// RejectSettlement moves a pending settlement to rejected.
func (s *SQLiteStore) RejectSettlement(ctx context.Context, settlementID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE settlements SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
		models.StatusRejected, now(), settlementID, models.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to reject settlement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reject settlement: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Tell a missing settlement apart from one that already left pending.
	if _, err := s.GetSettlement(ctx, settlementID); err != nil {
		return err
	}
	return fmt.Errorf("settlement %s is not pending: %w", settlementID, storage.ErrConflict)
}

// ListPendingSettlements returns pending settlements addressed to receiverID.
func (s *SQLiteStore) ListPendingSettlements(ctx context.Context, receiverID string) ([]*models.Settlement, error) {
	return s.listSettlements(ctx,
		`SELECT `+settlementColumns+` FROM settlements
		 WHERE receiver_id = ? AND status = ?
		 ORDER BY created_at DESC, rowid DESC`,
		receiverID, models.StatusPending,
	)
}

// ListSettlementsByGroup retrieves a group's settlements, optionally filtered by status.
func (s *SQLiteStore) ListSettlementsByGroup(ctx context.Context, groupID string, status models.SettlementStatus) ([]*models.Settlement, error) {
	if status == "" {
		return s.listSettlements(ctx,
			`SELECT `+settlementColumns+` FROM settlements
			 WHERE group_id = ? ORDER BY created_at DESC, rowid DESC`,
			groupID,
		)
	}
	return s.listSettlements(ctx,
		`SELECT `+settlementColumns+` FROM settlements
		 WHERE group_id = ? AND status = ? ORDER BY created_at DESC, rowid DESC`,
		groupID, status,
	)
}

func (s *SQLiteStore) listSettlements(ctx context.Context, query string, args ...any) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
