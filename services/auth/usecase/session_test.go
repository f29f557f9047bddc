package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waumini/sadaka/internal/pkg/constants"
	"github.com/waumini/sadaka/internal/pkg/models"
	"github.com/waumini/sadaka/internal/pkg/notify"
)

type fakeAuthGW struct {
	exchangeToken string
	exchangeErr   error
	verifyErr     error
	profile       *models.User
	profileErr    error

	verifyCalls  int
	profileCalls int
}

func (f *fakeAuthGW) ExchangeToken(ctx context.Context, creds models.Credentials) (string, error) {
	return f.exchangeToken, f.exchangeErr
}

func (f *fakeAuthGW) VerifyToken(ctx context.Context) error {
	f.verifyCalls++
	return f.verifyErr
}

func (f *fakeAuthGW) GetProfile(ctx context.Context) (*models.User, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

type memTokens struct {
	token   string
	loadErr error
}

func (m *memTokens) Load() (string, error) {
	return m.token, m.loadErr
}

func (m *memTokens) Save(token string) error {
	m.token = token
	return nil
}

func (m *memTokens) Clear() error {
	m.token = ""
	return nil
}

func adminProfile() *models.User {
	return &models.User{ID: 1, Username: "treasurer", Role: models.RoleAdmin, IsActive: true}
}

func financeProfile() *models.User {
	return &models.User{ID: 2, Username: "recorder", Role: models.RoleFinance, IsActive: true}
}

func TestSessionStore_Restore(t *testing.T) {
	tests := []struct {
		name          string
		tokens        *memTokens
		gw            *fakeAuthGW
		wantAuth      bool
		wantToken     string
		wantPersisted string
	}{
		{
			name:     "no persisted token resolves to logged out",
			tokens:   &memTokens{},
			gw:       &fakeAuthGW{},
			wantAuth: false,
		},
		{
			name:          "valid token restores the session",
			tokens:        &memTokens{token: "good"},
			gw:            &fakeAuthGW{profile: financeProfile()},
			wantAuth:      true,
			wantToken:     "good",
			wantPersisted: "good",
		},
		{
			name:     "failed verification clears the token without throwing",
			tokens:   &memTokens{token: "stale"},
			gw:       &fakeAuthGW{verifyErr: errors.New("token expired")},
			wantAuth: false,
		},
		{
			name:     "profile failure resets the session",
			tokens:   &memTokens{token: "good"},
			gw:       &fakeAuthGW{profileErr: errors.New("boom")},
			wantAuth: false,
		},
		{
			name:     "token storage failure resolves to logged out",
			tokens:   &memTokens{loadErr: errors.New("disk gone")},
			gw:       &fakeAuthGW{},
			wantAuth: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewSessionStore(tt.gw, tt.tokens, &notify.Recorder{})

			assert.True(t, store.Current().Loading)
			store.Restore(context.Background())

			session := store.Current()
			assert.False(t, session.Loading)
			assert.Equal(t, tt.wantAuth, session.Authenticated())
			assert.Equal(t, tt.wantToken, session.Token)
			assert.Equal(t, tt.wantPersisted, tt.tokens.token)
		})
	}
}

func TestSessionStore_Restore_SkipsVerifyWithoutToken(t *testing.T) {
	gw := &fakeAuthGW{}
	store := NewSessionStore(gw, &memTokens{}, &notify.Recorder{})

	store.Restore(context.Background())

	assert.Zero(t, gw.verifyCalls)
	assert.Zero(t, gw.profileCalls)
}

func TestSessionStore_Login(t *testing.T) {
	t.Run("admin lands on the admin route", func(t *testing.T) {
		tokens := &memTokens{}
		recorder := &notify.Recorder{}
		store := NewSessionStore(&fakeAuthGW{exchangeToken: "fresh", profile: adminProfile()}, tokens, recorder)

		route, err := store.Login(context.Background(), models.Credentials{Username: "treasurer", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, constants.RouteAdmin, route)
		assert.Equal(t, "fresh", tokens.token)
		assert.True(t, store.Current().IsAdmin())
		assert.Equal(t, []string{"Logged in successfully"}, recorder.Successes())
	})

	t.Run("finance lands on the transactions route", func(t *testing.T) {
		store := NewSessionStore(&fakeAuthGW{exchangeToken: "fresh", profile: financeProfile()}, &memTokens{}, &notify.Recorder{})

		route, err := store.Login(context.Background(), models.Credentials{Username: "recorder", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, constants.RouteTransactions, route)
	})

	t.Run("bad credentials notify and re-raise", func(t *testing.T) {
		recorder := &notify.Recorder{}
		store := NewSessionStore(&fakeAuthGW{exchangeErr: errors.New("401")}, &memTokens{}, recorder)

		_, err := store.Login(context.Background(), models.Credentials{Username: "x", Password: "y"})

		assert.Error(t, err)
		assert.False(t, store.Current().Authenticated())
		assert.Equal(t, []string{"Invalid credentials"}, recorder.Errors())
	})

	t.Run("profile failure after exchange resets the session", func(t *testing.T) {
		tokens := &memTokens{}
		store := NewSessionStore(&fakeAuthGW{exchangeToken: "fresh", profileErr: errors.New("boom")}, tokens, &notify.Recorder{})

		_, err := store.Login(context.Background(), models.Credentials{Username: "x", Password: "y"})

		assert.Error(t, err)
		assert.False(t, store.Current().Authenticated())
		assert.Empty(t, tokens.token)
	})
}

func TestSessionStore_Logout(t *testing.T) {
	tokens := &memTokens{token: "keep"}
	store := NewSessionStore(&fakeAuthGW{profile: adminProfile()}, tokens, &notify.Recorder{})
	store.Restore(context.Background())
	require.True(t, store.Current().Authenticated())

	store.Logout()

	session := store.Current()
	assert.False(t, session.Authenticated())
	assert.Empty(t, session.Token)
	assert.Empty(t, tokens.token)

	_, ok := store.Token()
	assert.False(t, ok)
}
