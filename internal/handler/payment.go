package handler

import (
	"net/http"

	"bundle-storefront/internal/dto"
	"bundle-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	publishableKey string
}

func NewPaymentHandler(paymentService service.PaymentService, publishableKey string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		publishableKey: publishableKey,
	}
}

// StripeConfig hands the browser the publishable key for the payment widget.
// The secret key stays on the server.
func (h *PaymentHandler) StripeConfig(c echo.Context) error {
	if h.publishableKey == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "payments are not configured")
	}

	return c.JSON(http.StatusOK, &dto.StripeConfigResponse{
		PublishableKey: h.publishableKey,
	})
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.paymentService.CreatePaymentIntent(ctx, req.Slug)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.paymentService.VerifyPayment(ctx, c.Param("paymentIntentId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
