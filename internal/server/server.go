package server

import (
	"context"
	"net/http"
	"strings"

	"bundle-storefront/internal/handler"
	"bundle-storefront/internal/metrics"
	appmiddleware "bundle-storefront/internal/middleware"
	"bundle-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

type Options struct {
	PublishableKey string
	StaticDir      string // built frontend; not served when empty
}

type Server struct {
	echo           *echo.Echo
	packageHandler *handler.PackageHandler
	paymentHandler *handler.PaymentHandler
	metrics        *metrics.Metrics
}

func NewServer(
	packageService service.PackageService,
	paymentService service.PaymentService,
	m *metrics.Metrics,
	logger *log.Logger,
	opts Options,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger = logger
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)

	e.Use(appmiddleware.Metrics(m))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if opts.StaticDir != "" {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  opts.StaticDir,
			HTML5: true, // client-side routes fall back to index.html
			Skipper: func(c echo.Context) bool {
				path := c.Request().URL.Path
				return strings.HasPrefix(path, "/api/") || path == "/metrics"
			},
		}))
	}

	s := &Server{
		echo:           e,
		packageHandler: handler.NewPackageHandler(packageService),
		paymentHandler: handler.NewPaymentHandler(paymentService, opts.PublishableKey),
		metrics:        m,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/packages", s.packageHandler.ListPackages)
	api.GET("/packages/:slug", s.packageHandler.GetPackage)
	api.POST("/packages", s.packageHandler.CreatePackage)

	// -------- checkout --------
	api.GET("/stripe/config", s.paymentHandler.StripeConfig)
	api.POST("/create-payment-intent", s.paymentHandler.CreatePaymentIntent)
	api.GET("/verify-payment/:paymentIntentId", s.paymentHandler.VerifyPayment)
	api.GET("/verify-payment/", s.paymentHandler.VerifyPayment) // missing id, answered with 400
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
