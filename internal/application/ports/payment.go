package ports

import "context"

type (
	PaymentRequest struct {
		Amount      string
		Email       string
		Phone       string
		CallbackURL string
	}
	PaymentInitiation struct {
		TransactionID string
		PaymentURL    string
	}
)

// PaymentInitiator starts a payment with the external provider. A failed
// initiation leaves the donation stored in "pending" state.
type PaymentInitiator interface {
	Initiate(ctx context.Context, req PaymentRequest) (*PaymentInitiation, error)
}
