package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	registered := ts.register(t, "alice")
	if registered.ID == "" || registered.Token == "" {
		t.Fatalf("expected user ID and token, got %+v", registered)
	}

	login, err := ts.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "ALICE@example.com",
		Password: "password123",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.User.Id != registered.ID {
		t.Errorf("login user: expected %s, got %s", registered.ID, login.Msg.User.Id)
	}

	current, err := ts.auth.GetCurrentUser(ctx, as(testUser{Token: login.Msg.Token}, &pb.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	u := current.Msg.User
	if u.Id != registered.ID || u.Email != "alice@example.com" || u.DisplayName != "alice" || u.CreatedAt == nil {
		t.Errorf("unexpected current user: %+v", u)
	}
}

func TestRegister_Errors(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "alice")

	tests := []struct {
		name string
		req  *pb.RegisterRequest
		code connect.Code
	}{
		{"duplicate email", &pb.RegisterRequest{Email: "alice@example.com", DisplayName: "Alice", Password: "password123"}, connect.CodeAlreadyExists},
		{"weak password", &pb.RegisterRequest{Email: "bob@example.com", DisplayName: "Bob", Password: "short"}, connect.CodeInvalidArgument},
		{"bad email", &pb.RegisterRequest{Email: "bob", DisplayName: "Bob", Password: "password123"}, connect.CodeInvalidArgument},
		{"missing name", &pb.RegisterRequest{Email: "bob@example.com", Password: "password123"}, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.auth.Register(context.Background(), connect.NewRequest(tt.req))
			expectCode(t, err, tt.code)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := setupTestServer(t)
	ts.register(t, "alice")

	for _, req := range []*pb.LoginRequest{
		{Email: "alice@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "password123"},
	} {
		_, err := ts.auth.Login(context.Background(), connect.NewRequest(req))
		expectCode(t, err, connect.CodeUnauthenticated)
	}
}

func TestGetCurrentUser_RequiresToken(t *testing.T) {
	ts := setupTestServer(t)

	_, err := ts.auth.GetCurrentUser(context.Background(), connect.NewRequest(&pb.GetCurrentUserRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = ts.auth.GetCurrentUser(context.Background(), as(testUser{Token: "garbage"}, &pb.GetCurrentUserRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)
}

func TestSearchUsers(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.register(t, "alice")
	ts.register(t, "alicia")
	ts.register(t, "bob")

	resp, err := ts.auth.SearchUsers(context.Background(), as(alice, &pb.SearchUsersRequest{Query: "ALI"}))
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if len(resp.Msg.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Msg.Users))
	}

	_, err = ts.auth.SearchUsers(context.Background(), as(alice, &pb.SearchUsersRequest{Query: " a "}))
	expectCode(t, err, connect.CodeInvalidArgument)
}
