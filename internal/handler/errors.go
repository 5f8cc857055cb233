package handler

import (
	"errors"
	"fmt"
	"net/http"

	"bundle-storefront/internal/apperror"
	"bundle-storefront/internal/dto"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// NewHTTPErrorHandler maps application errors onto status codes and
// {"error": ...} bodies. Details of 5xx failures are logged, never returned.
func NewHTTPErrorHandler(logger echo.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Errorf("write error response: %v", err)
		}
	}
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var notCompleted *apperror.PaymentNotCompletedError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &notCompleted):
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:         "Payment not completed",
			PaymentStatus: notCompleted.Status,
		}
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Error: "Package not found"}
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, dto.ErrorResponse{Error: internalErrorMessage}
		}
		return httpErr.Code, dto.ErrorResponse{Error: fmt.Sprint(httpErr.Message)}
	default:
		// ErrUpstream, ErrDataIntegrity and anything unclassified
		return http.StatusInternalServerError, dto.ErrorResponse{Error: internalErrorMessage}
	}
}
