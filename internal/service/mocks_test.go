package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"bundle-storefront/internal/client"
	"bundle-storefront/internal/config"
	"bundle-storefront/internal/logger"
	"bundle-storefront/internal/metrics"
	"bundle-storefront/internal/model"
	"bundle-storefront/internal/repository"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var errProviderDown = errors.New("provider unavailable")

// MockPaymentClient records created intents and serves them back by id,
// standing in for the provider.
type MockPaymentClient struct {
	mu      sync.Mutex
	intents map[string]*model.PaymentIntent
	created []*model.CreatePaymentIntentParams

	CreateErr error
	GetErr    error
}

var _ client.PaymentClient = (*MockPaymentClient)(nil)

func NewMockPaymentClient() *MockPaymentClient {
	return &MockPaymentClient{intents: make(map[string]*model.PaymentIntent)}
}

func (m *MockPaymentClient) CreatePaymentIntent(_ context.Context, params *model.CreatePaymentIntentParams) (*model.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created = append(m.created, params)
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	id := fmt.Sprintf("pi_%d", len(m.created))
	intent := &model.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		Amount:       params.Amount,
		Currency:     params.Currency,
		Status:       model.PaymentIntentStatusRequiresPaymentMethod,
		Metadata:     params.Metadata,
	}
	m.intents[id] = intent
	return intent, nil
}

func (m *MockPaymentClient) GetPaymentIntent(_ context.Context, id string) (*model.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}
	intent, ok := m.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment_intent: %s", id)
	}
	c := *intent
	return &c, nil
}

// Put stores an intent as the provider would report it.
func (m *MockPaymentClient) Put(intent *model.PaymentIntent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents[intent.ID] = intent
}

func (m *MockPaymentClient) SetStatus(id string, status model.PaymentIntentStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents[id].Status = status
}

func (m *MockPaymentClient) Created() []*model.CreatePaymentIntentParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.CreatePaymentIntentParams(nil), m.created...)
}

type fixture struct {
	payments *MockPaymentClient
	repo     repository.PackageRepository
	metrics  *metrics.Metrics
	logs     *bytes.Buffer
	service  PaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryPackageRepository()
	seed, err := repository.DefaultSeed()
	require.NoError(t, err)
	require.NoError(t, repo.Seed(context.Background(), seed))

	f := &fixture{
		payments: NewMockPaymentClient(),
		repo:     repo,
		metrics:  metrics.New(prometheus.NewRegistry()),
		logs:     &bytes.Buffer{},
	}
	f.service = NewPaymentService(f.payments, repo, "usd", f.metrics, f.logger())
	return f
}

func (f *fixture) logger() *log.Logger {
	return logger.NewWithOutput(config.Log{Level: "debug", Format: "text"}, f.logs)
}
