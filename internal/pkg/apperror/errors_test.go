package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus_MapsCodes(t *testing.T) {
	assert.True(t, IsUnauthorized(FromStatus(http.StatusUnauthorized, "expired")))
	assert.True(t, IsNotFound(FromStatus(http.StatusNotFound, "missing")))
	assert.True(t, IsForbidden(FromStatus(http.StatusForbidden, "")))

	err := FromStatus(http.StatusUnprocessableEntity, "")
	assert.Equal(t, ErrCodeAPI, err.Code)
	assert.Equal(t, "HTTP 422", err.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
}

func TestNetwork_WrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Network(cause)

	assert.True(t, IsNetwork(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("admin: %w", FromStatus(http.StatusBadRequest, "Slug already exists"))
	assert.Equal(t, "Slug already exists", MessageOf(wrapped, "Operation failed"))
	assert.Equal(t, "Operation failed", MessageOf(errors.New("boom"), "Operation failed"))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
