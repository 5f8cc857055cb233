package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	StaticDir   string `env:"STATIC_DIR"` // built frontend, served from "/" when set

	Catalog Catalog `envPrefix:"CATALOG_"`
	Stripe  Stripe  `envPrefix:"STRIPE_"`
}

type Catalog struct {
	Driver      string `env:"DRIVER" envDefault:"memory"` // memory, sqlite, mysql
	DatabaseURL string `env:"DATABASE_URL"`
	SeedFile    string `env:"SEED_FILE"` // overrides the embedded seed when set
}

type Stripe struct {
	BaseApiURL     string        `env:"BASE_API_URL"`
	SecretKey      string        `env:"SECRET_KEY,notEmpty"`
	PublishableKey string        `env:"PUBLISHABLE_KEY"`
	Currency       string        `env:"CURRENCY" envDefault:"usd"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}
