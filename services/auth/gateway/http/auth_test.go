package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/models"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func TestAuthGateway_ExchangeToken(t *testing.T) {
	tests := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		wantToken      string
		expectError    bool
	}{
		{
			name:           "successful exchange",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"access": "jwt-access-token"}`,
			wantToken:      "jwt-access-token",
		},
		{
			name:           "invalid credentials",
			mockStatusCode: http.StatusUnauthorized,
			mockBody:       `{"detail": "No active account found with the given credentials"}`,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/auth/token/", r.URL.Path)

				var creds models.Credentials
				require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "treasurer", creds.Username)

				w.WriteHeader(tt.mockStatusCode)
				w.Write([]byte(tt.mockBody))
			}))
			defer server.Close()

			gw := NewAuthGateway(httpclient.NewClient(server.URL, 5*time.Second, nil))
			token, err := gw.ExchangeToken(context.Background(), models.Credentials{
				Username: "treasurer",
				Password: "secret",
			})

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthGateway_VerifyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/token/verify/", r.URL.Path)

		if r.Header.Get("Authorization") == "Bearer good-token" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Token is invalid or expired"}`))
	}))
	defer server.Close()

	t.Run("valid token", func(t *testing.T) {
		gw := NewAuthGateway(httpclient.NewClient(server.URL, 5*time.Second, staticTokens{token: "good-token"}))
		assert.NoError(t, gw.VerifyToken(context.Background()))
	})

	t.Run("invalid token", func(t *testing.T) {
		gw := NewAuthGateway(httpclient.NewClient(server.URL, 5*time.Second, staticTokens{token: "bad-token"}))
		assert.Error(t, gw.VerifyToken(context.Background()))
	})
}

func TestAuthGateway_GetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/profile/", r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.User{
			ID:       3,
			Username: "treasurer",
			Role:     models.RoleAdmin,
			IsActive: true,
		})
	}))
	defer server.Close()

	gw := NewAuthGateway(httpclient.NewClient(server.URL, 5*time.Second, staticTokens{token: "good-token"}))
	user, err := gw.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
}
