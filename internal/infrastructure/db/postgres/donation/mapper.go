package donation

import (
	domain "content-manager-api/internal/domain/donation"
)

func fromDBModel(model *Donation) *domain.Donation {
	return &domain.Donation{
		UUID:      model.UUID,
		Amount:    model.Amount,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Status:    model.Status,
		Address:   model.Address,
		ContactOk: model.ContactOk,
		City:      model.City,
		Country:   model.Country,
		Phone:     model.Phone,

		TransactionID: model.TransactionID,
		PaymentURL:    model.PaymentURL,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models Donations) domain.Donations {
	ds := make(domain.Donations, len(models))
	for idx, m := range models {
		ds[idx] = fromDBModel(m)
	}

	return ds
}
