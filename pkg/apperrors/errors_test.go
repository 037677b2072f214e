package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("row missing")
	err := ErrNotFound(cause)

	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.ErrorIs(t, err, cause)
}

func TestSentinelErrorsMatchWithErrorsIs(t *testing.T) {
	var err error = ErrDuplicateApplication
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.NotErrorIs(t, err, ErrDuplicateReview)
}

func TestAsAppError(t *testing.T) {
	wrapped := InternalError(errors.New("boom"))

	var appErr *AppError
	require.True(t, As(wrapped, &appErr))
	assert.Equal(t, CodeInternalError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestMarshalHidesInternals(t *testing.T) {
	err := Wrap(errors.New("pq: secret detail"), CodeDatabaseError, "system", "Something went wrong", http.StatusInternalServerError)

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Something went wrong", out["message"])
	assert.NotContains(t, string(data), "secret detail")
	assert.NotContains(t, string(data), "HTTPCode")
}

func TestWithDetails(t *testing.T) {
	err := ValidationError(map[string]string{"email": "Must be a valid email address"})

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.Contains(t, string(data), "Must be a valid email address")
}

func TestErrorStringIncludesDomainAndCode(t *testing.T) {
	err := New(CodeForbidden, "auth", "Not allowed", http.StatusForbidden)
	assert.Contains(t, err.Error(), "auth")
	assert.Contains(t, err.Error(), string(CodeForbidden))

	withCause := Wrap(errors.New("underlying"), CodeForbidden, "auth", "Not allowed", http.StatusForbidden)
	assert.Contains(t, withCause.Error(), "underlying")
}
