package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/homeservices-portal/internal/models"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
)

type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memTokens) SetToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memTokens) RemoveToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *memTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &memTokens{}
	return New(srv.URL+"/api/", NewHTTPClient(5*time.Second), tokens), tokens
}

func TestRequest_SendsBearerToken(t *testing.T) {
	var gotAuth, gotPath string
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Role: models.RoleAdmin})
	})
	tokens.token = "T1"

	user, err := client.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer T1", gotAuth)
	assert.Equal(t, "/api/auth/profile", gotPath)
	assert.True(t, user.IsAdmin())
}

func TestRequest_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListServices(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequest_ErrorMessageFromJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Slug already exists"}`))
	})

	_, err := client.CreateCategory(context.Background(), models.CategoryInput{Name: "AC", Slug: "ac"})
	require.Error(t, err)
	assert.Equal(t, "Slug already exists", apperror.MessageOf(err, ""))
	assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
}

func TestRequest_ErrorMessageArray(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":["name should not be empty","slug must be a string"]}`))
	})

	_, err := client.CreateCategory(context.Background(), models.CategoryInput{})
	require.Error(t, err)
	assert.Equal(t, "name should not be empty, slug must be a string", apperror.MessageOf(err, ""))
}

func TestRequest_NonJSONErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.ListCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.GenericMessage, apperror.MessageOf(err, ""))
}

func TestRequest_JSONWithoutMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"x"}`))
	})

	_, err := client.ListCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP 422", apperror.MessageOf(err, ""))
}

func TestRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(url, NewHTTPClient(time.Second), &memTokens{})
	_, err := client.ListCategories(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsNetwork(err))
}

func TestRequest_UnauthorizedHook(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
	})
	tokens.token = "expired"

	var calls int32
	client.OnUnauthorized(func(context.Context) { atomic.AddInt32(&calls, 1) })

	_, err := client.ListAllBookings(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRequest_UnauthorizedWithoutTokenSkipsHook(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	var calls int32
	client.OnUnauthorized(func(context.Context) { atomic.AddInt32(&calls, 1) })

	_, err := client.Login(context.Background(), models.LoginInput{Email: "a@b.ae", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", apperror.MessageOf(err, ""))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestLogin_WrongPasswordKeepsExistingSession(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	tokens.token = "live-token"

	var calls int32
	client.OnUnauthorized(func(context.Context) { atomic.AddInt32(&calls, 1) })

	_, err := client.Login(context.Background(), models.LoginInput{Email: "a@b.ae", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err))

	_, err = client.Register(context.Background(), models.RegisterInput{Name: "A", Email: "a@b.ae", Password: "wrong"})
	require.Error(t, err)

	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.Equal(t, "live-token", tokens.token)
}

func TestDelete_EmptyBody(t *testing.T) {
	var method, path string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteService(context.Background(), "s1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/services/s1", path)
}

func TestUpdateBookingStatus_UsesStatusEndpoint(t *testing.T) {
	var path string
	var body models.BookingStatusUpdate
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"id":"b1","status":"confirmed"}`))
	})

	booking, err := client.UpdateBookingStatus(context.Background(), "b1", models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, "/api/bookings/b1/status", path)
	assert.Equal(t, models.BookingStatusConfirmed, body.Status)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestListAllBookings_Query(t *testing.T) {
	var query string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListAllBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "all=true", query)
}

func TestSearchSuggestions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ac", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"suggestions":["AC Repair","AC Cleaning"]}`))
	})

	got, err := client.SearchSuggestions(context.Background(), "ac")
	require.NoError(t, err)
	assert.Equal(t, []string{"AC Repair", "AC Cleaning"}, got)
}

func TestSetAndRemoveToken_Persist(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	require.NoError(t, client.SetToken(ctx, "T2"))
	assert.Equal(t, "T2", tokens.token)

	got, err := client.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", got)

	require.NoError(t, client.RemoveToken(ctx))
	assert.Empty(t, tokens.token)
}

func TestEmptyID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})

	assert.ErrorIs(t, client.DeleteBooking(context.Background(), ""), ErrEmptyID)
}
