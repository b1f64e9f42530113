package donation

import (
	"content-manager-api/internal/domain/donation"
)

func ToResponseDonation(d donation.Donation) Donation {
	return Donation{
		UUID:          d.UUID,
		Amount:        d.Amount,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		Status:        d.Status,
		Address:       d.Address,
		ContactOk:     d.ContactOk,
		City:          d.City,
		Country:       d.Country,
		Phone:         d.Phone,
		TransactionID: d.TransactionID,
		PaymentURL:    d.PaymentURL,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToResponseDonations(ds donation.Donations) Donations {
	out := make(Donations, len(ds))
	for idx, d := range ds {
		out[idx] = ToResponseDonation(*d)
	}

	return out
}

func ToDomainDonation(r Request) donation.Donation {
	return donation.Donation{
		Amount:    r.Amount,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Address:   r.Address,
		ContactOk: r.ContactOk,
		City:      r.City,
		Country:   r.Country,
		Phone:     r.Phone,
	}
}

func ToDomainUpdate(r UpdateRequest) donation.Update {
	return donation.Update{
		Amount:    r.Amount,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Status:    r.Status,
		Address:   r.Address,
		ContactOk: r.ContactOk,
		City:      r.City,
		Country:   r.Country,
		Phone:     r.Phone,
	}
}
