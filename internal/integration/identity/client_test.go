package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flight-booking/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func membershipServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/user_1/organization_memberships", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    auth.Role
		wantErr error
	}{
		{
			name:   "org admin",
			status: http.StatusOK,
			body:   `{"data":[{"id":"m1","role":"org:member"},{"id":"m2","role":"org:admin","organization":{"id":"org_1"}}],"total_count":2}`,
			want:   auth.RoleAdmin,
		},
		{
			name:   "plain admin label",
			status: http.StatusOK,
			body:   `{"data":[{"id":"m1","role":"admin"}],"total_count":1}`,
			want:   auth.RoleAdmin,
		},
		{
			name:   "member only",
			status: http.StatusOK,
			body:   `{"data":[{"id":"m1","role":"org:member"}],"total_count":1}`,
			want:   auth.RoleMember,
		},
		{
			name:   "no memberships",
			status: http.StatusOK,
			body:   `{"data":[],"total_count":0}`,
			want:   auth.RoleMember,
		},
		{
			name:    "provider error",
			status:  http.StatusInternalServerError,
			body:    `{"errors":[{"message":"boom"}]}`,
			want:    auth.RoleUnauthenticated,
			wantErr: ErrInvalidResponse,
		},
		{
			name:    "undecodable body",
			status:  http.StatusOK,
			body:    `<html>`,
			want:    auth.RoleUnauthenticated,
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := membershipServer(t, tt.status, tt.body)
			client := NewClient(srv.URL+"/", "sk_test", time.Second, zap.NewNop())

			role, err := client.ResolveRole(context.Background(), "user_1")

			assert.Equal(t, tt.want, role)
			assert.Equal(t, 1, *calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveRole_NotConfigured(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", time.Second, zap.NewNop())

	role, err := client.ResolveRole(context.Background(), "user_1")

	assert.Equal(t, auth.RoleUnauthenticated, role)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestResolveRole_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk_test", 20*time.Millisecond, zap.NewNop())

	role, err := client.ResolveRole(context.Background(), "user_1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, auth.RoleUnauthenticated, role)
}
