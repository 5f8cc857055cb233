package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bundle-storefront/internal/apperror"
	"bundle-storefront/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   dto.ErrorResponse
	}{
		{
			name:   "validation",
			err:    apperror.Validation("slug is required"),
			status: http.StatusBadRequest,
			body:   dto.ErrorResponse{Error: "validation error: slug is required"},
		},
		{
			name:   "not found",
			err:    fmt.Errorf("resolve package: %w", apperror.NotFound("package with slug %q", "x")),
			status: http.StatusNotFound,
			body:   dto.ErrorResponse{Error: "Package not found"},
		},
		{
			name:   "payment not completed",
			err:    &apperror.PaymentNotCompletedError{Status: "requires_payment_method"},
			status: http.StatusBadRequest,
			body:   dto.ErrorResponse{Error: "Payment not completed", PaymentStatus: "requires_payment_method"},
		},
		{
			name:   "data integrity",
			err:    fmt.Errorf("%w: no metadata", apperror.ErrDataIntegrity),
			status: http.StatusInternalServerError,
			body:   dto.ErrorResponse{Error: internalErrorMessage},
		},
		{
			name:   "upstream",
			err:    apperror.Upstream("create payment intent", errors.New("sk_live_leak: card_declined")),
			status: http.StatusInternalServerError,
			body:   dto.ErrorResponse{Error: internalErrorMessage},
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   dto.ErrorResponse{Error: internalErrorMessage},
		},
		{
			name:   "echo client error",
			err:    echo.NewHTTPError(http.StatusBadRequest, "invalid request body"),
			status: http.StatusBadRequest,
			body:   dto.ErrorResponse{Error: "invalid request body"},
		},
		{
			name:   "echo server error",
			err:    echo.NewHTTPError(http.StatusServiceUnavailable, "db down at 10.0.0.3"),
			status: http.StatusServiceUnavailable,
			body:   dto.ErrorResponse{Error: internalErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body)
		})
	}
}

func TestHTTPErrorHandlerWritesJSON(t *testing.T) {
	e := echo.New()
	logger := log.New("test")
	logger.SetOutput(io.Discard)
	h := NewHTTPErrorHandler(logger)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/verify-payment/pi_1", nil), rec)
	h(apperror.Upstream("retrieve payment intent", errors.New("secret detail")), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"error": internalErrorMessage}, body)
}

func TestHTTPErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	logger := log.New("test")
	logger.SetOutput(io.Discard)
	h := NewHTTPErrorHandler(logger)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	h(errors.New("late"), c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
