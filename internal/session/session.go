package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/models"
)

// State — состояние сессии посетителя.
type State string

const (
	StateUnknown       State = "unknown"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// API — часть apiclient.Client, которая нужна сессии.
type API interface {
	Login(ctx context.Context, in models.LoginInput) (*models.AuthResponse, error)
	Register(ctx context.Context, in models.RegisterInput) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context) error
}

// Session хранит текущего пользователя одного посетителя.
type Session struct {
	api API
	now func() time.Time

	initMu sync.Mutex

	mu    sync.RWMutex
	state State
	user  *models.User
}

// Option настраивает Session.
type Option func(*Session)

// WithNow подменяет часы (для проверки срока действия токена).
func WithNow(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func New(api API, opts ...Option) *Session {
	s := &Session{api: api, now: time.Now, state: StateUnknown}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User возвращает копию текущего пользователя или nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user.IsAdmin()
}

// Init проверяет сохранённый токен. Выполняется один раз: повторные вызовы
// после перехода в authenticated/anonymous ничего не делают.
func (s *Session) Init(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.State() != StateUnknown {
		return nil
	}

	token, err := s.api.Token(ctx)
	if err != nil {
		s.settle(StateAnonymous, nil)
		return err
	}
	if token == "" {
		s.settle(StateAnonymous, nil)
		return nil
	}

	if tokenExpired(token, s.now()) {
		logger.With("session").Info("токен истёк, профиль не запрашиваем")
		s.clearToken(ctx)
		s.settle(StateAnonymous, nil)
		return nil
	}

	s.settle(StateLoading, nil)

	user, err := s.api.Profile(ctx)
	if err != nil {
		logger.With("session").WithError(err).Info("профиль не получен, токен сброшен")
		s.clearToken(ctx)
		s.settle(StateAnonymous, nil)
		return nil
	}

	s.settle(StateAuthenticated, user)
	return nil
}

// Login входит по email и паролю. Ошибка API возвращается как есть,
// состояние при этом не меняется.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.api.Login(ctx, models.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.authenticate(ctx, resp)
}

// Register создаёт пользователя и сразу выполняет вход.
func (s *Session) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	resp, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.authenticate(ctx, resp)
}

func (s *Session) authenticate(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if err := s.api.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, err
	}
	user := resp.User
	s.settle(StateAuthenticated, &user)
	return s.User(), nil
}

// Logout сбрасывает токен и пользователя. Запрос к API не нужен.
func (s *Session) Logout(ctx context.Context) {
	s.clearToken(ctx)
	s.settle(StateAnonymous, nil)
}

// Expire вызывается при ответе 401: сессия считается истёкшей.
func (s *Session) Expire(ctx context.Context) {
	if s.State() == StateAuthenticated {
		logger.With("session").Info("API вернуло 401, сессия завершена")
	}
	s.clearToken(ctx)
	s.settle(StateAnonymous, nil)
}

func (s *Session) settle(state State, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}

func (s *Session) clearToken(ctx context.Context) {
	if err := s.api.RemoveToken(ctx); err != nil {
		logger.With("session").WithError(err).Warn("не удалось удалить токен")
	}
}

// tokenExpired читает exp без проверки подписи: подпись проверяет API.
// Непрозрачные (не JWT) токены и токены без exp считаются действующими.
func tokenExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
