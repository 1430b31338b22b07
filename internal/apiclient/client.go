package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
)

// TokenStore — долговременное хранилище bearer токена одного посетителя.
// Токен переживает перезагрузку страницы и перезапуск портала.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	RemoveToken(ctx context.Context) error
}

// Client — единственная точка доступа к REST API маркетплейса.
// Каждый метод выполняет ровно один HTTP запрос: без повторов и без дедупликации.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	mu             sync.RWMutex
	token          string
	tokenLoaded    bool
	onUnauthorized func(ctx context.Context)
}

// NewHTTPClient создаёт http.Client с явным таймаутом на весь запрос.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// New создаёт клиента. httpClient может разделяться между посетителями.
func New(baseURL string, httpClient *http.Client, tokens TokenStore) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
	}
}

// OnUnauthorized регистрирует обработчик ответа 401 на запрос с токеном.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// Token возвращает текущий токен, при первом обращении читая его из хранилища.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.tokenLoaded {
		token := c.token
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	if c.tokens == nil {
		return "", nil
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("apiclient: не удалось прочитать токен: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.tokenLoaded {
		c.token = token
		c.tokenLoaded = true
	}
	return c.token, nil
}

// SetToken сохраняет токен в памяти и в долговременном хранилище.
func (c *Client) SetToken(ctx context.Context, token string) error {
	c.mu.Lock()
	c.token = token
	c.tokenLoaded = true
	c.mu.Unlock()

	if c.tokens == nil {
		return nil
	}
	if err := c.tokens.SetToken(ctx, token); err != nil {
		return fmt.Errorf("apiclient: не удалось сохранить токен: %w", err)
	}
	return nil
}

// RemoveToken удаляет токен из памяти и из хранилища.
func (c *Client) RemoveToken(ctx context.Context) error {
	c.mu.Lock()
	c.token = ""
	c.tokenLoaded = true
	c.mu.Unlock()

	if c.tokens == nil {
		return nil
	}
	if err := c.tokens.RemoveToken(ctx); err != nil {
		return fmt.Errorf("apiclient: не удалось удалить токен: %w", err)
	}
	return nil
}

// errorBody — формат ошибок API. message бывает строкой или массивом строк.
type errorBody struct {
	Message json.RawMessage `json:"message"`
}

// request выполняет один запрос к API и декодирует JSON ответ в out (если out != nil).
// 401 на запрос с токеном завершает сессию через onUnauthorized.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	return c.send(ctx, method, endpoint, body, out, true)
}

// credentials — запрос с логином и паролем. Его 401 означает неверные данные,
// а не протухший токен, поэтому сессию он не трогает.
func (c *Client) credentials(ctx context.Context, endpoint string, body, out any) error {
	return c.send(ctx, http.MethodPost, endpoint, body, out, false)
}

func (c *Client) send(ctx context.Context, method, endpoint string, body, out any, expireOn401 bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: не удалось сериализовать тело запроса: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("apiclient: некорректный запрос %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	token, err := c.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	fields := logrus.Fields{"method": method, "endpoint": endpoint}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fields["duration"] = time.Since(started).String()
		logger.With("apiclient").WithFields(fields).WithError(err).Warn("API недоступно")
		return apperror.Network(err)
	}
	defer resp.Body.Close()

	fields["status"] = resp.StatusCode
	fields["duration"] = time.Since(started).String()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.With("apiclient").WithFields(fields).WithError(err).Warn("обрыв при чтении ответа")
		return apperror.Network(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := apperror.FromStatus(resp.StatusCode, parseErrorMessage(raw))
		logger.With("apiclient").WithFields(fields).Warn(appErr.Message)

		if expireOn401 && resp.StatusCode == http.StatusUnauthorized && token != "" {
			c.mu.RLock()
			hook := c.onUnauthorized
			c.mu.RUnlock()
			if hook != nil {
				hook(ctx)
			}
		}
		return appErr
	}

	logger.With("apiclient").WithFields(fields).Debug("запрос выполнен")

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeAPI, apperror.GenericMessage)
	}
	return nil
}

// parseErrorMessage достаёт message из тела ошибки.
// Тело не JSON — общий текст; JSON без message — пустая строка (FromStatus подставит HTTP <status>).
func parseErrorMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apperror.GenericMessage
	}
	if len(body.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(body.Message, &many); err == nil {
		return strings.Join(many, ", ")
	}

	return ""
}

// ErrEmptyID возвращается методами, которым передан пустой идентификатор.
var ErrEmptyID = errors.New("apiclient: пустой идентификатор")
