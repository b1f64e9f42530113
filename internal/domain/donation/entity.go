package donation

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusInitiated = "initiated"
)

type (
	UUID     = uuid.UUID
	Donation struct {
		UUID UUID
		// Amount is kept as the donor entered it; currency handling happens
		// on the payment provider side.
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

	Update struct {
		Amount    *string
		FirstName *string
		LastName  *string
		Email     *string
		Status    *string
		Address   *string
		ContactOk *bool
		City      *string
		Country   *string
		Phone     *string
	}
)

func (d *Donation) Apply(u Update) {
	if u.Amount != nil {
		d.Amount = *u.Amount
	}
	if u.FirstName != nil {
		d.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		d.LastName = *u.LastName
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
	if u.Address != nil {
		d.Address = *u.Address
	}
	if u.ContactOk != nil {
		d.ContactOk = *u.ContactOk
	}
	if u.City != nil {
		d.City = *u.City
	}
	if u.Country != nil {
		d.Country = *u.Country
	}
	if u.Phone != nil {
		d.Phone = *u.Phone
	}
}
