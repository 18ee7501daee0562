package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/models"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "u1", "a@example.com")
	assert.Equal(t, "u1", GetUserID(ctx))
	assert.Equal(t, "a@example.com", GetEmail(ctx))
	assert.Empty(t, GetUserID(context.Background()))
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Email: "a@example.com"})
	require.NoError(t, err)

	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetUserID(ctx)
		return nil, nil
	}
	interceptor := RequireAuth(jwtManager, map[string]bool{"": true})

	// connect.NewRequest has an empty procedure, which is listed as public.
	_, err = interceptor(next)(context.Background(), connect.NewRequest(&struct{}{}))
	require.NoError(t, err)
	assert.Empty(t, seen)

	strict := RequireAuth(jwtManager, nil)

	req := connect.NewRequest(&struct{}{})
	_, err = strict(next)(context.Background(), req)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req.Header().Set("Authorization", "Bearer "+token)
	_, err = strict(next)(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u1", seen)

	req.Header().Set("Authorization", "Bearer "+token+"x")
	_, err = strict(next)(context.Background(), req)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
