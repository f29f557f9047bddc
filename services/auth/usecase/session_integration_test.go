package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waumini/sadaka/internal/pkg/constants"
	httpclient "github.com/waumini/sadaka/internal/pkg/http"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/internal/pkg/notify"
	gateway_http "github.com/waumini/sadaka/services/auth/gateway/http"
)

const stubSecret = "test-signing-secret"

// stubAuthAPI is an httptest server that behaves like the auth endpoints of
// the finance API: it signs real JWTs on token exchange and checks them on
// verify/profile.
func stubAuthAPI(t *testing.T, user models.User) *httptest.Server {
	t.Helper()

	mintToken := func() string {
		claims := jwt.MapClaims{
			"user_id": user.ID,
			"role":    string(user.Role),
			"exp":     time.Now().Add(time.Hour).Unix(),
			"iat":     time.Now().Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(stubSecret))
		require.NoError(t, err)
		return token
	}

	validBearer := func(r *http.Request) bool {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return false
		}
		parsed, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			return []byte(stubSecret), nil
		})
		return err == nil && parsed.Valid
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/token/", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "correct-horse" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found with the given credentials"})
			return
		}
		json.NewEncoder(w).Encode(models.TokenResponse{Access: mintToken()})
	})
	mux.HandleFunc("GET /api/auth/token/verify/", func(w http.ResponseWriter, r *http.Request) {
		if !validBearer(r) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired"})
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/auth/profile/", func(w http.ResponseWriter, r *http.Request) {
		if !validBearer(r) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Authentication credentials were not provided."})
			return
		}
		json.NewEncoder(w).Encode(user)
	})

	return httptest.NewServer(mux)
}

func TestSessionStore_LoginAgainstStubAPI(t *testing.T) {
	server := stubAuthAPI(t, models.User{ID: 9, Username: "treasurer", Role: models.RoleAdmin, IsActive: true})
	defer server.Close()

	client := httpclient.NewClient(server.URL, 5*time.Second, nil)
	store := NewSessionStore(gateway_http.NewAuthGateway(client), &memTokens{}, &notify.Recorder{})
	client.SetTokenSource(store)
	store.Restore(context.Background())

	route, err := store.Login(context.Background(), models.Credentials{
		Username: "treasurer",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.RouteAdmin, route)

	session := store.Current()
	require.True(t, session.Authenticated())
	assert.Equal(t, int64(9), session.Profile.ID)
	assert.NotEmpty(t, session.Token)
}

func TestSessionStore_RestoreWithForgedToken(t *testing.T) {
	server := stubAuthAPI(t, models.User{ID: 9, Username: "treasurer", Role: models.RoleAdmin})
	defer server.Close()

	// A token signed with the wrong key must not survive restore.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(9),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	tokens := &memTokens{token: forged}
	client := httpclient.NewClient(server.URL, 5*time.Second, nil)
	store := NewSessionStore(gateway_http.NewAuthGateway(client), tokens, &notify.Recorder{})
	client.SetTokenSource(store)

	store.Restore(context.Background())

	session := store.Current()
	assert.False(t, session.Loading)
	assert.False(t, session.Authenticated())
	assert.Empty(t, tokens.token)
}
