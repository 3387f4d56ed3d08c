package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

	for _, in := range []string{"2025-10-15T09:30", "2025-10-15T09:30:59", "2025-10-15T09:30:12.345"} {
		got, err := ParseDateTime("start", in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s -> %s", in, got)
	}

	_, err := ParseDateTime("start", "2025-10-15 09:30")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.EqualError(t, err, "start must be in YYYY-MM-DDTHH:MM format")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.Errorf(domain.ErrValidation, "x"), http.StatusBadRequest},
		{domain.Errorf(domain.ErrNotFound, "x"), http.StatusNotFound},
		{domain.Errorf(domain.ErrInvalidState, "x"), http.StatusUnprocessableEntity},
		{domain.Errorf(domain.ErrSchedulingConflict, "x"), http.StatusUnprocessableEntity},
		{domain.Errorf(domain.ErrOutOfHours, "x"), http.StatusUnprocessableEntity},
		{domain.Errorf(domain.ErrPastDate, "x"), http.StatusUnprocessableEntity},
		{domain.Errorf(domain.ErrDuplicatePayment, "x"), http.StatusUnprocessableEntity},
		{domain.Errorf(domain.ErrAlreadyExists, "x"), http.StatusConflict},
		{errors.New("db is gone"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestRespondDomainError(t *testing.T) {
	t.Run("taxonomy message is surfaced", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondDomainError(rec, domain.Errorf(domain.ErrPastDate, "cannot book an appointment in the past"))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "PAST_DATE", body.Code)
		assert.Equal(t, "cannot book an appointment in the past", body.Message)
		_, err := time.Parse(time.RFC3339, body.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondDomainError(rec, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
		assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	})
}

func TestValidate(t *testing.T) {
	type payload struct {
		Name  string  `json:"name" validate:"required,max=5"`
		Email string  `json:"email" validate:"omitempty,email"`
		Price float64 `json:"price" validate:"gt=0"`
	}

	tests := []struct {
		in      payload
		wantMsg string
	}{
		{payload{Name: "Ana", Price: 1}, ""},
		{payload{Price: 1}, "name is required"},
		{payload{Name: "Gabriela", Price: 1}, "name must be at most 5 characters"},
		{payload{Name: "Ana", Email: "nope", Price: 1}, "email must be a valid email"},
		{payload{Name: "Ana"}, "price must be greater than 0"},
	}

	for _, tt := range tests {
		err := Validate(&tt.in)
		if tt.wantMsg == "" {
			assert.NoError(t, err)
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.EqualError(t, err, tt.wantMsg)
	}
}
