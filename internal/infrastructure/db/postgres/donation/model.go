package donation

import (
	"time"

	"github.com/google/uuid"
)

type (
	Donation struct {
		ID        uint64
		UUID      uuid.UUID
		Amount    string
		FirstName string
		LastName  string
		Email     string
		Status    string
		Address   string
		ContactOk bool
		City      string
		Country   string
		Phone     string

		TransactionID string
		PaymentURL    string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Donations []*Donation
)
