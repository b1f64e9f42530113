package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	domain "content-manager-api/internal/domain/donation"
	"content-manager-api/internal/infrastructure/mq"
)

const kindDonation = "donation"

type DonationService struct {
	repo        domain.Repository
	payment     ports.PaymentInitiator
	log         *zap.Logger
	callbackURL string
	notifier
}

func NewDonationService(
	repo domain.Repository,
	payment ports.PaymentInitiator,
	logger *zap.Logger,
	callbackURL string,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	cache ports.ListCache,
) ports.DonationService {
	return &DonationService{
		repo:        repo,
		payment:     payment,
		log:         logger,
		callbackURL: callbackURL,
		notifier:    notifier{mq: rabbit, mCounter: mCounter, cache: cache},
	}
}

func (s *DonationService) Find(ctx context.Context, page, limit int) (domain.Donations, int, error) {
	return s.repo.Fetch(ctx, page, limit)
}

func (s *DonationService) FindByID(ctx context.Context, uuid domain.UUID) (*domain.Donation, error) {
	return s.repo.FetchByID(ctx, uuid)
}

// Create stores the donation in pending state, then asks the payment
// provider for a checkout session. A failed initiation keeps the stored
// record pending so it can be retried or reconciled by hand.
func (s *DonationService) Create(ctx context.Context, d domain.Donation) (*domain.Donation, error) {
	d.Status = domain.StatusPending

	ret, err := s.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}

	init, err := s.payment.Initiate(ctx, ports.PaymentRequest{
		Amount:      ret.Amount,
		Email:       ret.Email,
		Phone:       ret.Phone,
		CallbackURL: s.callbackURL,
	})
	if err != nil {
		s.log.Error("payment initiation failed",
			zap.String("donation", ret.UUID.String()),
			zap.Error(err),
		)
	} else {
		ret.Status = domain.StatusInitiated
		ret.TransactionID = init.TransactionID
		ret.PaymentURL = init.PaymentURL

		if ret, err = s.repo.Update(ctx, *ret); err != nil {
			return nil, err
		}
	}

	s.notify(ctx, kindDonation, mq.ActionCreated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *DonationService) Update(ctx context.Context, uuid domain.UUID, upd domain.Update) (*domain.Donation, error) {
	existing, err := s.repo.FetchByID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	existing.Apply(upd)

	ret, err := s.repo.Update(ctx, *existing)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, kindDonation, mq.ActionUpdated, ret.UUID.String(), ret)

	return ret, nil
}

func (s *DonationService) Delete(ctx context.Context, uuid domain.UUID) (bool, error) {
	ret, err := s.repo.Delete(ctx, uuid)
	if err != nil {
		return false, err
	}
	if ret == nil {
		return false, nil
	}

	s.notify(ctx, kindDonation, mq.ActionDeleted, ret.UUID.String(), ret)

	return true, nil
}
