package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
)

type fakeAPI struct {
	mu           sync.Mutex
	token        string
	profile      *models.User
	profileErr   error
	loginResp    *models.AuthResponse
	loginErr     error
	profileCalls int
}

func (f *fakeAPI) Login(ctx context.Context, in models.LoginInput) (*models.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAPI) Register(ctx context.Context, in models.RegisterInput) (*models.AuthResponse, error) {
	return f.Login(ctx, models.LoginInput{Email: in.Email, Password: in.Password})
}

func (f *fakeAPI) Profile(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeAPI) Token(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, nil
}

func (f *fakeAPI) SetToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	return nil
}

func (f *fakeAPI) RemoveToken(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInit_NoToken(t *testing.T) {
	api := &fakeAPI{}
	s := New(api)
	assert.Equal(t, StateUnknown, s.State())

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Zero(t, api.profileCalls)
}

func TestInit_ValidToken(t *testing.T) {
	api := &fakeAPI{
		token:   signedToken(t, time.Now().Add(time.Hour)),
		profile: &models.User{ID: "u1", Role: models.RoleAdmin},
	}
	s := New(api)

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, StateAuthenticated, s.State())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "u1", s.User().ID)

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, 1, api.profileCalls)
}

func TestInit_ProfileFailureClearsToken(t *testing.T) {
	api := &fakeAPI{token: "opaque-token", profileErr: apperror.FromStatus(401, "Unauthorized")}
	s := New(api)

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, api.token)
	assert.Nil(t, s.User())
}

func TestInit_ExpiredTokenSkipsProfile(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeAPI{
		token:   signedToken(t, now.Add(-time.Minute)),
		profile: &models.User{ID: "u1"},
	}
	s := New(api, WithNow(func() time.Time { return now }))

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
	assert.Zero(t, api.profileCalls)
	assert.Empty(t, api.token)
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	api := &fakeAPI{loginErr: apperror.FromStatus(401, "Invalid credentials")}
	s := New(api)
	require.NoError(t, s.Init(context.Background()))

	_, err := s.Login(context.Background(), "a@b.ae", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", apperror.MessageOf(err, ""))
	assert.Equal(t, StateAnonymous, s.State())

	api.loginErr = nil
	api.loginResp = &models.AuthResponse{User: models.User{ID: "u2", Role: models.RoleUser}, AccessToken: "T2"}

	user, err := s.Login(context.Background(), "a@b.ae", "right")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, "T2", api.token)
	assert.False(t, s.IsAdmin())
}

func TestLogoutAndExpire(t *testing.T) {
	api := &fakeAPI{loginResp: &models.AuthResponse{User: models.User{ID: "u1"}, AccessToken: "T"}}
	s := New(api)

	_, err := s.Register(context.Background(), models.RegisterInput{Email: "a@b.ae", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, s.IsAuthenticated())

	s.Logout(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, api.token)
	assert.Nil(t, s.User())

	_, err = s.Login(context.Background(), "a@b.ae", "secret1")
	require.NoError(t, err)
	s.Expire(context.Background())
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, api.token)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	assert.False(t, tokenExpired("not-a-jwt", now))
	assert.False(t, tokenExpired(signedToken(t, now.Add(time.Minute)), now))
	assert.True(t, tokenExpired(signedToken(t, now.Add(-time.Minute)), now))
}

func TestInit_TokenStoreError(t *testing.T) {
	s := New(&brokenTokens{})
	err := s.Init(context.Background())
	assert.Error(t, err)
	assert.Equal(t, StateAnonymous, s.State())
}

type brokenTokens struct{ fakeAPI }

func (b *brokenTokens) Token(ctx context.Context) (string, error) {
	return "", errors.New("disk on fire")
}
