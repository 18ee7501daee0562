package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

const searchUsersLimit = 10

// PublicProcedures may be called without a token.
var PublicProcedures = map[string]bool{
	protoconnect.AuthServiceRegisterProcedure: true,
	protoconnect.AuthServiceLoginProcedure:    true,
}

// UserDirectory looks up registered users.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error)
}

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	protoconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         UserDirectory
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users UserDirectory, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[pb.RegisterRequest]) (*connect.Response[pb.AuthResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	in := &registerInput{
		Email:       strings.TrimSpace(req.Msg.Email),
		DisplayName: strings.TrimSpace(req.Msg.DisplayName),
		Password:    req.Msg.Password,
	}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.authenticator.Register(ctx, in.Email, in.DisplayName, in.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", in.Email, "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, errors.New("registration failed"))
	}

	return s.issue(user)
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[pb.LoginRequest]) (*connect.Response[pb.AuthResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	in := &loginInput{Email: strings.TrimSpace(req.Msg.Email), Password: req.Msg.Password}
	if err := validateRequest(in); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*connect.Response[pb.AuthResponse], error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, errors.New("failed to issue token"))
	}

	s.logger.Info("Token issued", "user_id", user.ID)
	return connect.NewResponse(&pb.AuthResponse{
		User:  toProtoUser(user),
		Token: token,
	}), nil
}

// GetCurrentUser returns the currently authenticated user's information.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[pb.GetCurrentUserRequest]) (*connect.Response[pb.GetCurrentUserResponse], error) {
	userID, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Token outlived its account.
			return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
		}
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetCurrentUserResponse{User: toProtoUser(user)}), nil
}

// SearchUsers finds users whose e-mail or display name contains the query.
func (s *AuthService) SearchUsers(ctx context.Context, req *connect.Request[pb.SearchUsersRequest]) (*connect.Response[pb.SearchUsersResponse], error) {
	if _, err := actor(ctx); err != nil {
		return nil, err
	}
	in := &searchUsersInput{Query: strings.TrimSpace(req.Msg.Query)}
	if err := validateRequest(in); err != nil {
		return nil, toConnectError(err)
	}

	users, err := s.users.SearchUsers(ctx, in.Query, searchUsersLimit)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.User, len(users))
	for i, u := range users {
		out[i] = toProtoUser(u)
	}
	return connect.NewResponse(&pb.SearchUsersResponse{Users: out}), nil
}
