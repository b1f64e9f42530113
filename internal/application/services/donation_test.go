package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/donation"
	"content-manager-api/internal/infrastructure/cache"
	"content-manager-api/internal/infrastructure/mq"
)

type fakeRabbit struct{ ch chan mq.Event }

func (f *fakeRabbit) Connect(context.Context, string) error { return nil }
func (f *fakeRabbit) Init() error                           { return nil }
func (f *fakeRabbit) PublisherWorker(context.Context)       {}
func (f *fakeRabbit) GetInputChan() chan mq.Event           { return f.ch }
func (f *fakeRabbit) GetConn() *amqp091.Connection          { return nil }

type FakeDonationRepo struct {
	CreateFunc   func(ctx context.Context, d domain.Donation) (*domain.Donation, error)
	UpdateFunc   func(ctx context.Context, d domain.Donation) (*domain.Donation, error)
	FetchByIDFunc func(ctx context.Context, id domain.UUID) (*domain.Donation, error)
}

func (f *FakeDonationRepo) Fetch(context.Context, int, int) (domain.Donations, int, error) {
	return nil, 0, errors.New("not used")
}
func (f *FakeDonationRepo) FetchByID(ctx context.Context, id domain.UUID) (*domain.Donation, error) {
	if f.FetchByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByIDFunc(ctx, id)
}
func (f *FakeDonationRepo) Create(ctx context.Context, d domain.Donation) (*domain.Donation, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, d)
}
func (f *FakeDonationRepo) Update(ctx context.Context, d domain.Donation) (*domain.Donation, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, d)
}
func (f *FakeDonationRepo) Delete(context.Context, domain.UUID) (*domain.Donation, error) {
	return nil, errors.New("not used")
}

type FakePayment struct {
	InitiateFunc func(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentInitiation, error)
}

func (f *FakePayment) Initiate(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentInitiation, error) {
	if f.InitiateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.InitiateFunc(ctx, req)
}

func newDonationService(repo domain.Repository, pay ports.PaymentInitiator) ports.DonationService {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "donation_test_counters"}, []string{"result"})
	return NewDonationService(
		repo, pay, zap.NewNop(), "https://example.org/callback",
		&fakeRabbit{ch: make(chan mq.Event, 8)}, counter, cache.Noop{},
	)
}

func TestCreateDonation_InitiatesPayment(t *testing.T) {
	repo := &FakeDonationRepo{
		CreateFunc: func(_ context.Context, d domain.Donation) (*domain.Donation, error) {
			assert.Equal(t, domain.StatusPending, d.Status)
			d.UUID = uuid.New()
			return &d, nil
		},
		UpdateFunc: func(_ context.Context, d domain.Donation) (*domain.Donation, error) {
			return &d, nil
		},
	}
	pay := &FakePayment{
		InitiateFunc: func(_ context.Context, req ports.PaymentRequest) (*ports.PaymentInitiation, error) {
			assert.Equal(t, "25.50", req.Amount)
			assert.Equal(t, "https://example.org/callback", req.CallbackURL)
			return &ports.PaymentInitiation{
				TransactionID: "txn-42",
				PaymentURL:    "https://pay.example.org/txn-42",
			}, nil
		},
	}
	s := newDonationService(repo, pay)

	d, err := s.Create(context.Background(), domain.Donation{
		Amount: "25.50", FirstName: "Jane", LastName: "Doe", Email: "jane@example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInitiated, d.Status)
	assert.Equal(t, "txn-42", d.TransactionID)
	assert.Equal(t, "https://pay.example.org/txn-42", d.PaymentURL)
}

func TestCreateDonation_FailedInitiationStaysPending(t *testing.T) {
	repo := &FakeDonationRepo{
		CreateFunc: func(_ context.Context, d domain.Donation) (*domain.Donation, error) {
			d.UUID = uuid.New()
			return &d, nil
		},
		UpdateFunc: func(context.Context, domain.Donation) (*domain.Donation, error) {
			t.Fatal("no update when initiation fails")
			return nil, nil
		},
	}
	pay := &FakePayment{
		InitiateFunc: func(context.Context, ports.PaymentRequest) (*ports.PaymentInitiation, error) {
			return nil, errors.New("gateway down")
		},
	}
	s := newDonationService(repo, pay)

	d, err := s.Create(context.Background(), domain.Donation{Amount: "10"})
	require.NoError(t, err, "a stored donation survives a payment outage")
	assert.Equal(t, domain.StatusPending, d.Status)
	assert.Empty(t, d.TransactionID)
}
