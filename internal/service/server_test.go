package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/groups"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/lock"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/settlement"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

type testServer struct {
	auth        protoconnect.AuthServiceClient
	groups      protoconnect.GroupServiceClient
	settlements protoconnect.SettlementServiceClient
	expenses    protoconnect.ExpenseServiceClient
	url         string
}

// setupTestServer runs every service over a temp database behind the real
// auth interceptor.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	l := ledger.New(store, lock.NewLocal())
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	interceptors := connect.WithInterceptors(middleware.RequireAuth(jwtManager, PublicProcedures))

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), interceptors))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(groups.New(store, store, l)), interceptors))
	mux.Handle(protoconnect.NewSettlementServiceHandler(NewSettlementService(settlement.New(store, l, nil)), interceptors))
	mux.Handle(protoconnect.NewExpenseServiceHandler(NewExpenseService(store), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{
		auth:        protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		groups:      protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		settlements: protoconnect.NewSettlementServiceClient(http.DefaultClient, server.URL),
		expenses:    protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		url:         server.URL,
	}
}

type testUser struct {
	ID    string
	Email string
	Token string
}

func (ts *testServer) register(t *testing.T, name string) testUser {
	t.Helper()
	resp, err := ts.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       name + "@example.com",
		DisplayName: name,
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return testUser{ID: resp.Msg.User.Id, Email: resp.Msg.User.Email, Token: resp.Msg.Token}
}

// as builds a request authenticated as u.
func as[T any](u testUser, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+u.Token)
	return req
}

func expectCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Fatalf("expected %v, got %v: %v", want, connectErr.Code(), connectErr.Message())
	}
	return connectErr
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balanceOf(rows []*pb.MemberBalance, userID string) decimal.Decimal {
	for _, r := range rows {
		if r.UserId == userID {
			return dec(r.Amount)
		}
	}
	return decimal.Zero
}

// trip registers alice, bob and carol and puts them in a group created by alice.
func (ts *testServer) trip(t *testing.T) (group *pb.Group, alice, bob, carol testUser) {
	t.Helper()
	alice = ts.register(t, "alice")
	bob = ts.register(t, "bob")
	carol = ts.register(t, "carol")

	resp, err := ts.groups.CreateGroup(context.Background(), as(alice, &pb.CreateGroupRequest{
		Name:         "Trip",
		MemberEmails: []string{bob.Email, carol.Email},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group, alice, bob, carol
}

// tripWithDinner adds a 90.00 dinner paid by alice split three ways:
// alice +60, bob -30, carol -30.
func (ts *testServer) tripWithDinner(t *testing.T) (group *pb.Group, alice, bob, carol testUser) {
	t.Helper()
	group, alice, bob, carol = ts.trip(t)
	_, err := ts.groups.AddGroupExpense(context.Background(), as(alice, &pb.AddGroupExpenseRequest{
		GroupId:     group.Id,
		Amount:      "90",
		Description: "Dinner",
	}))
	if err != nil {
		t.Fatalf("AddGroupExpense failed: %v", err)
	}
	return group, alice, bob, carol
}

func TestProtoJSONClient(t *testing.T) {
	ts := setupTestServer(t)
	group, alice, bob, _ := ts.trip(t)

	client := protoconnect.NewGroupServiceClient(http.DefaultClient, ts.url, connect.WithProtoJSON())
	resp, err := client.AddGroupExpense(context.Background(), as(bob, &pb.AddGroupExpenseRequest{
		GroupId: group.Id,
		Amount:  "45.5",
	}))
	if err != nil {
		t.Fatalf("AddGroupExpense over JSON failed: %v", err)
	}
	if got := balanceOf(resp.Msg.Balances, bob.ID); !got.Equal(dec("30.34")) {
		t.Errorf("bob: expected 30.34, got %s", got)
	}
	if got := balanceOf(resp.Msg.Balances, alice.ID); !got.Equal(dec("-15.17")) {
		t.Errorf("alice: expected -15.17, got %s", got)
	}

	groups, err := client.GetGroup(context.Background(), as(alice, &pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup over JSON failed: %v", err)
	}
	if !proto.Equal(groups.Msg.Group, group) {
		t.Errorf("JSON and binary clients disagree:\n%v\n%v", groups.Msg.Group, group)
	}
}
