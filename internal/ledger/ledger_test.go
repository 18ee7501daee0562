package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	mock_ledger "github.com/mmynk/splitledger/internal/ledger/mocks"
	"github.com/mmynk/splitledger/internal/lock"
	mock_lock "github.com/mmynk/splitledger/internal/lock/mocks"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setup(t *testing.T, members ...string) (*ledger.Ledger, *sqlite.SQLiteStore, string) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	group := &models.Group{Name: "Flat", Members: members, CreatedBy: members[0]}
	require.NoError(t, store.CreateGroup(context.Background(), group))

	return ledger.New(store, lock.NewLocal()), store, group.ID
}

func requireZeroSum(t *testing.T, b models.Balances) {
	t.Helper()
	require.True(t, money.Sum(b).IsZero(), "balances %v do not sum to zero", b)
}

func TestApply(t *testing.T) {
	l, _, groupID := setup(t, "alice", "bob", "carol")
	ctx := context.Background()

	deltas, err := calculator.EqualSplit(dec("90"), "alice", []string{"alice", "bob", "carol"})
	require.NoError(t, err)

	balances, err := l.Apply(ctx, groupID, deltas)
	require.NoError(t, err)
	assert.True(t, balances["alice"].Equal(dec("60")))
	assert.True(t, balances["bob"].Equal(dec("-30")))
	assert.True(t, balances["carol"].Equal(dec("-30")))
	requireZeroSum(t, balances)

	snapshot, err := l.Snapshot(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, balances, snapshot)
}

func TestApplyRejectsUnknownMember(t *testing.T) {
	l, _, groupID := setup(t, "alice", "bob")
	ctx := context.Background()

	_, err := l.Apply(ctx, groupID, map[string]decimal.Decimal{"alice": dec("5"), "mallory": dec("-5")})
	assert.ErrorIs(t, err, apperr.ErrNotAGroupMember)

	snapshot, err := l.Snapshot(ctx, groupID)
	require.NoError(t, err)
	assert.True(t, snapshot["alice"].IsZero())
}

func TestApplyRejectsUnbalancedDeltas(t *testing.T) {
	reg := prometheus.NewRegistry()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer store.Close()

	group := &models.Group{Name: "Flat", Members: []string{"alice", "bob"}, CreatedBy: "alice"}
	require.NoError(t, store.CreateGroup(context.Background(), group))

	l := ledger.New(store, lock.NewLocal(), ledger.WithMetrics(metrics.New(reg)))

	_, err = l.Apply(context.Background(), group.ID, map[string]decimal.Decimal{"alice": dec("10"), "bob": dec("-9.99")})
	assert.ErrorIs(t, err, apperr.ErrInvariantViolation)
	assert.Equal(t, apperr.KindInvariant, apperr.KindOf(err))

	snapshot, _ := l.Snapshot(context.Background(), group.ID)
	assert.True(t, snapshot["alice"].IsZero())
}

func TestSnapshotUnknownGroup(t *testing.T) {
	l, _, _ := setup(t, "alice")
	_, err := l.Snapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrGroupNotFound)
}

func TestUpdateAbortLeavesLedgerUnchanged(t *testing.T) {
	l, _, groupID := setup(t, "alice", "bob")
	ctx := context.Background()

	abort := errors.New("abort")
	_, err := l.Update(ctx, groupID, func(models.Balances) (*ledger.Entry, error) {
		return nil, abort
	})
	assert.ErrorIs(t, err, abort)

	snapshot, _ := l.Snapshot(ctx, groupID)
	assert.True(t, snapshot["alice"].IsZero())
	assert.True(t, snapshot["bob"].IsZero())
}

func TestUpdateSeesPreviousWrites(t *testing.T) {
	l, _, groupID := setup(t, "alice", "bob")
	ctx := context.Background()

	_, err := l.Apply(ctx, groupID, map[string]decimal.Decimal{"alice": dec("12.5"), "bob": dec("-12.5")})
	require.NoError(t, err)

	_, err = l.Update(ctx, groupID, func(b models.Balances) (*ledger.Entry, error) {
		assert.True(t, b["alice"].Equal(dec("12.5")))
		b["alice"] = decimal.Zero // snapshot is a copy
		return nil, nil
	})
	require.NoError(t, err)

	snapshot, _ := l.Snapshot(ctx, groupID)
	assert.True(t, snapshot["alice"].Equal(dec("12.5")))
}

func TestUpdateRecordsGroupExpense(t *testing.T) {
	l, store, groupID := setup(t, "alice", "bob")
	ctx := context.Background()

	deltas := map[string]decimal.Decimal{"alice": dec("4"), "bob": dec("-4")}
	_, err := l.Update(ctx, groupID, func(models.Balances) (*ledger.Entry, error) {
		return &ledger.Entry{
			Kind:   "expense",
			Deltas: deltas,
			RecordExpense: &models.GroupExpense{
				GroupID: groupID, PaidBy: "alice", Amount: dec("8"),
				SplitType: models.SplitEqual, Deltas: deltas, CreatedBy: "alice",
			},
		}, nil
	})
	require.NoError(t, err)

	expenses, err := store.ListGroupExpenses(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Amount.Equal(dec("8")))
}

func TestConcurrentExpenses(t *testing.T) {
	members := []string{"alice", "bob", "carol"}
	l, _, groupID := setup(t, members...)
	ctx := context.Background()

	const workers = 30
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payer := members[i%len(members)]
			deltas, err := calculator.EqualSplit(dec("10"), payer, members)
			if !assert.NoError(t, err) {
				return
			}
			_, err = l.Apply(ctx, groupID, deltas)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Each member paid ten times: 10 × (+6.66) + 20 × (−3.33) = 0.
	snapshot, err := l.Snapshot(ctx, groupID)
	require.NoError(t, err)
	requireZeroSum(t, snapshot)
	for _, m := range members {
		assert.True(t, snapshot[m].IsZero(), "%s has %s", m, snapshot[m])
	}
}

func TestZeroSumAfterRandomSequence(t *testing.T) {
	members := []string{"a", "b", "c", "d"}
	l, _, groupID := setup(t, members...)
	ctx := context.Background()

	amounts := []string{"100", "33.33", "0.07", "12.345", "999.99", "1", "250"}
	for i, amount := range amounts {
		payer := members[i%len(members)]
		var deltas calculator.Deltas
		var err error
		if i%2 == 0 {
			deltas, err = calculator.EqualSplit(dec(amount), payer, members)
		} else {
			deltas, err = calculator.CustomSplit(dec(amount), payer, members, []calculator.Share{
				{Member: "a", Percentage: dec("12.5")},
				{Member: "b", Percentage: dec("37.5")},
				{Member: "d", Percentage: dec("50")},
			})
		}
		require.NoError(t, err, "step %d", i)

		balances, err := l.Apply(ctx, groupID, deltas)
		require.NoError(t, err, "step %d", i)
		requireZeroSum(t, balances)
	}
}

func TestUpdateGroupBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locker := mock_lock.NewMockLocker(ctrl)
	store := mock_ledger.NewMockStore(ctrl)
	locker.EXPECT().Lock(gomock.Any(), "ledger:g1").Return(nil, lock.ErrNotObtained)

	l := ledger.New(store, locker, ledger.WithLockTimeout(10*time.Millisecond))
	_, err := l.Apply(context.Background(), "g1", map[string]decimal.Decimal{"a": dec("1"), "b": dec("-1")})

	assert.ErrorIs(t, err, apperr.ErrGroupBusy)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateGroupBusyRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	group := &models.Group{Name: "Flat", Members: []string{"a", "b"}, CreatedBy: "a"}
	require.NoError(t, store.CreateGroup(context.Background(), group))

	locker := lock.NewRedis(rdb, time.Minute)
	unlock, err := locker.Lock(context.Background(), "ledger:"+group.ID)
	require.NoError(t, err)
	defer unlock()

	l := ledger.New(store, locker, ledger.WithLockTimeout(50*time.Millisecond))
	_, err = l.Apply(context.Background(), group.ID, map[string]decimal.Decimal{"a": dec("1"), "b": dec("-1")})

	assert.ErrorIs(t, err, apperr.ErrGroupBusy)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateTranslatesStoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     *apperr.Error
	}{
		{"unbalanced", fmt.Errorf("sum 0.01: %w", storage.ErrUnbalanced), apperr.ErrInvariantViolation},
		{"conflict", storage.ErrConflict, apperr.ErrInvalidState},
		{"unknown member", storage.ErrUnknownMember, apperr.ErrNotAGroupMember},
		{"other", errors.New("disk I/O error"), apperr.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock_ledger.NewMockStore(ctrl)
			store.EXPECT().GetBalances(gomock.Any(), "g1").
				Return(models.Balances{"a": decimal.Zero, "b": decimal.Zero}, nil)
			store.EXPECT().WriteLedger(gomock.Any(), gomock.Any()).Return(nil, tt.storeErr)

			l := ledger.New(store, lock.NewLocal())
			_, err := l.Apply(context.Background(), "g1", map[string]decimal.Decimal{"a": dec("1"), "b": dec("-1")})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateEmptyEntrySkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_ledger.NewMockStore(ctrl)
	store.EXPECT().GetBalances(gomock.Any(), "g1").Return(models.Balances{"a": decimal.Zero}, nil)

	l := ledger.New(store, lock.NewLocal())
	balances, err := l.Apply(context.Background(), "g1", map[string]decimal.Decimal{})
	require.NoError(t, err)
	assert.Len(t, balances, 1)
}
