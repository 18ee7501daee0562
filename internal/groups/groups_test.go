package groups_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/groups"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/lock"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	svc   *groups.Service
	store *sqlite.SQLiteStore
	users map[string]*models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "groups.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := make(map[string]*models.User)
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		u := models.NewUser(name+"@example.com", name, "hash")
		require.NoError(t, store.CreateUser(context.Background(), u))
		users[name] = u
	}

	l := ledger.New(store, lock.NewLocal())
	return &fixture{svc: groups.New(store, store, l), store: store, users: users}
}

func (f *fixture) id(name string) string {
	return f.users[name].ID
}

func (f *fixture) group(t *testing.T, names ...string) *models.Group {
	t.Helper()
	var ids []string
	for _, n := range names[1:] {
		ids = append(ids, f.id(n))
	}
	g, err := f.svc.CreateGroup(context.Background(), "Trip", ids, f.id(names[0]))
	require.NoError(t, err)
	return g
}

func balanceOf(rows []models.MemberBalance, userID string) decimal.Decimal {
	for _, r := range rows {
		if r.UserID == userID {
			return r.Amount
		}
	}
	return decimal.Zero
}

func TestCreateGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.svc.CreateGroup(ctx, "  Flat  ", []string{f.id("bob"), f.id("alice"), f.id("bob")}, f.id("alice"))
	require.NoError(t, err)
	assert.Equal(t, "Flat", g.Name)
	assert.Equal(t, []string{f.id("alice"), f.id("bob")}, g.Members)

	_, err = f.svc.CreateGroup(ctx, "   ", nil, f.id("alice"))
	assert.ErrorIs(t, err, apperr.ErrEmptyName)

	listed, err := f.svc.ListGroups(ctx, f.id("bob"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, g.ID, listed[0].ID)
}

func TestResolveEmails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ids, err := f.svc.ResolveEmails(ctx, []string{"BOB@example.com", "carol@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{f.id("bob"), f.id("carol")}, ids)

	_, err = f.svc.ResolveEmails(ctx, []string{"bob@example.com", "ghost@example.com"})
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	assert.Equal(t, "ghost@example.com", apperr.FieldsOf(err)["member_emails"])
}

func TestAddExpenseEqual(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob", "carol")

	_, err := f.svc.AddExpense(ctx, groups.ExpenseRequest{
		GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("90"), Description: "dinner",
	})
	require.NoError(t, err)

	rows, err := f.svc.GetBalances(ctx, g.ID, f.id("bob"))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, f.id("alice"), rows[0].UserID)
	assert.Equal(t, "alice", rows[0].Name)
	assert.Equal(t, "alice@example.com", rows[0].Email)
	assert.True(t, rows[0].Amount.Equal(dec("60")))
	assert.True(t, balanceOf(rows, f.id("bob")).Equal(dec("-30")))
	assert.True(t, balanceOf(rows, f.id("carol")).Equal(dec("-30")))

	expenses, err := f.svc.ListExpenses(ctx, g.ID, f.id("carol"))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "dinner", expenses[0].Description)
	assert.Equal(t, models.SplitEqual, expenses[0].SplitType)
}

func TestAddExpenseCustomRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob")

	for _, total := range []string{"49", "51"} {
		_, err := f.svc.AddExpense(ctx, groups.ExpenseRequest{
			GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("100"), SplitType: models.SplitCustom,
			Splits: []calculator.Share{
				{Member: f.id("alice"), Percentage: dec("50")},
				{Member: f.id("bob"), Percentage: dec(total)},
			},
		})
		assert.ErrorIs(t, err, apperr.ErrInvalidSplit)
	}

	rows, err := f.svc.GetBalances(ctx, g.ID, f.id("alice"))
	require.NoError(t, err)
	for _, r := range rows {
		assert.True(t, r.Amount.IsZero(), "ledger unchanged")
	}
	expenses, _ := f.svc.ListExpenses(ctx, g.ID, f.id("alice"))
	assert.Empty(t, expenses)
}

func TestAddExpenseCustom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob", "carol")

	balances, err := f.svc.AddExpense(ctx, groups.ExpenseRequest{
		GroupID: g.ID, ActorID: f.id("bob"), PaidBy: f.id("alice"), Amount: dec("200"),
		SplitType: models.SplitCustom,
		Splits: []calculator.Share{
			{Member: f.id("alice"), Percentage: dec("25")},
			{Member: f.id("bob"), Percentage: dec("75")},
		},
	})
	require.NoError(t, err)
	assert.True(t, balances[f.id("alice")].Equal(dec("150")))
	assert.True(t, balances[f.id("bob")].Equal(dec("-150")))
	assert.True(t, balances[f.id("carol")].IsZero())
}

func TestAddExpenseErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob")

	tests := []struct {
		name string
		req  groups.ExpenseRequest
		want *apperr.Error
	}{
		{"unknown group", groups.ExpenseRequest{GroupID: "missing", ActorID: f.id("alice"), Amount: dec("1")}, apperr.ErrGroupNotFound},
		{"actor outside group", groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("dave"), Amount: dec("1")}, apperr.ErrGroupNotFound},
		{"payer outside group", groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("alice"), PaidBy: f.id("dave"), Amount: dec("1")}, apperr.ErrNotAGroupMember},
		{"zero amount", groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("0")}, apperr.ErrInvalidAmount},
		{"negative amount", groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("-5")}, apperr.ErrInvalidAmount},
		{"unknown split type", groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("5"), SplitType: "shares"}, apperr.ErrInvalidSplit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.AddExpense(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob")

	_, err := f.svc.AddExpense(ctx, groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("10")})
	require.NoError(t, err)

	_, err = f.svc.AddMembers(ctx, g.ID, f.id("carol"), []string{f.id("dave")})
	assert.ErrorIs(t, err, apperr.ErrGroupNotFound)

	updated, err := f.svc.AddMembers(ctx, g.ID, f.id("bob"), []string{f.id("carol"), f.id("alice")})
	require.NoError(t, err)
	assert.Equal(t, []string{f.id("alice"), f.id("bob"), f.id("carol")}, updated.Members)

	rows, err := f.svc.GetBalances(ctx, g.ID, f.id("carol"))
	require.NoError(t, err)
	assert.True(t, balanceOf(rows, f.id("carol")).IsZero(), "joins at zero")
	assert.True(t, balanceOf(rows, f.id("alice")).Equal(dec("5")), "existing balances kept")

	// The next equal split includes the new member.
	_, err = f.svc.AddExpense(ctx, groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("carol"), Amount: dec("30")})
	require.NoError(t, err)
	rows, _ = f.svc.GetBalances(ctx, g.ID, f.id("carol"))
	assert.True(t, balanceOf(rows, f.id("carol")).Equal(dec("20")))
	assert.True(t, balanceOf(rows, f.id("bob")).Equal(dec("-15")))
}

func TestSuggestSettlements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob", "carol")

	_, err := f.svc.AddExpense(ctx, groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("alice"), Amount: dec("90")})
	require.NoError(t, err)
	_, err = f.svc.AddExpense(ctx, groups.ExpenseRequest{GroupID: g.ID, ActorID: f.id("bob"), Amount: dec("30")})
	require.NoError(t, err)

	edges, err := f.svc.SuggestSettlements(ctx, g.ID, f.id("carol"))
	require.NoError(t, err)

	rows, _ := f.svc.GetBalances(ctx, g.ID, f.id("carol"))
	owed := decimal.Zero
	net := make(map[string]decimal.Decimal)
	for _, r := range rows {
		if r.Amount.IsPositive() {
			owed = owed.Add(r.Amount)
		}
		net[r.UserID] = r.Amount
	}

	paid := decimal.Zero
	for _, e := range edges {
		paid = paid.Add(e.Amount)
		net[e.From] = net[e.From].Add(e.Amount)
		net[e.To] = net[e.To].Sub(e.Amount)
	}
	assert.True(t, paid.Equal(owed), "suggestions pay exactly what is owed")
	assert.True(t, money.Sum(net).IsZero())
	for id, v := range net {
		assert.True(t, v.IsZero(), "%s left with %s", id, v)
	}

	_, err = f.svc.SuggestSettlements(ctx, g.ID, f.id("dave"))
	assert.ErrorIs(t, err, apperr.ErrGroupNotFound)
}

func TestNonMemberSeesNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.group(t, "alice", "bob")

	_, missing := f.svc.GetBalances(ctx, "missing", f.id("dave"))
	_, existing := f.svc.GetBalances(ctx, g.ID, f.id("dave"))
	assert.ErrorIs(t, missing, apperr.ErrGroupNotFound)
	assert.ErrorIs(t, existing, apperr.ErrGroupNotFound)
	assert.Equal(t, apperr.KindOf(missing), apperr.KindOf(existing))

	_, err := f.svc.GetGroup(ctx, g.ID, f.id("dave"))
	assert.ErrorIs(t, err, apperr.ErrGroupNotFound)
	_, err = f.svc.ListExpenses(ctx, g.ID, f.id("dave"))
	assert.ErrorIs(t, err, apperr.ErrGroupNotFound)
}
