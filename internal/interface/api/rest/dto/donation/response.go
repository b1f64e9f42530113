package donation

import (
	"time"

	"github.com/google/uuid"
)

type (
	Donation struct {
		UUID          uuid.UUID `json:"uuid"`
		Amount        string    `json:"amount"`
		FirstName     string    `json:"first_name"`
		LastName      string    `json:"last_name"`
		Email         string    `json:"email"`
		Status        string    `json:"status"`
		Address       string    `json:"address,omitempty"`
		ContactOk     bool      `json:"contact_ok"`
		City          string    `json:"city,omitempty"`
		Country       string    `json:"country,omitempty"`
		Phone         string    `json:"phone,omitempty"`
		TransactionID string    `json:"transaction_id,omitempty"`
		PaymentURL    string    `json:"payment_url,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
	Donations []Donation

	Request struct {
		Amount    string `json:"amount"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Address   string `json:"address"`
		ContactOk bool   `json:"contact_ok"`
		City      string `json:"city"`
		Country   string `json:"country"`
		Phone     string `json:"phone"`
	}

	UpdateRequest struct {
		Amount    *string `json:"amount"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Status    *string `json:"status"`
		Address   *string `json:"address"`
		ContactOk *bool   `json:"contact_ok"`
		City      *string `json:"city"`
		Country   *string `json:"country"`
		Phone     *string `json:"phone"`
	}
)
