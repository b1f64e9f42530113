package donation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"content-manager-api/internal/domain/donation"
	"content-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) donation.Repository {
	return &Repository{db: db}
}

func (r *Repository) Fetch(ctx context.Context, page, limit int) (donation.Donations, int, error) {
	rows, err := r.db.Query(ctx, SelectDonations, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ds Donations
	for rows.Next() {
		d := new(Donation)

		if err = scanInto(rows.Scan, d); err != nil {
			return nil, 0, err
		}

		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRow(ctx, CountDonations).Scan(&total); err != nil {
		return nil, 0, err
	}

	return fromDBModels(ds), total, nil
}

func (r *Repository) FetchByID(ctx context.Context, uuid donation.UUID) (*donation.Donation, error) {
	return r.scanRow(r.db.QueryRow(ctx, SelectDonationByID, uuid.String()))
}

func (r *Repository) Create(ctx context.Context, req donation.Donation) (*donation.Donation, error) {
	return r.scanRow(r.db.QueryRow(
		ctx,
		InsertDonation,
		req.Amount, req.FirstName, req.LastName, req.Email, req.Status, req.Address,
		req.ContactOk, req.City, req.Country, req.Phone, req.TransactionID, req.PaymentURL,
	))
}

func (r *Repository) Update(ctx context.Context, req donation.Donation) (*donation.Donation, error) {
	return r.scanRow(r.db.QueryRow(
		ctx,
		UpdateDonationByUUID,
		req.Amount, req.FirstName, req.LastName, req.Email, req.Status, req.Address,
		req.ContactOk, req.City, req.Country, req.Phone, req.TransactionID, req.PaymentURL,
		req.UUID,
	))
}

func (r *Repository) Delete(ctx context.Context, uuid donation.UUID) (*donation.Donation, error) {
	return r.scanRow(r.db.QueryRow(ctx, DeleteDonationByUUID, uuid.String()))
}

func (r *Repository) scanRow(row pgx.Row) (*donation.Donation, error) {
	d := new(Donation)
	if err := scanInto(row.Scan, d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func scanInto(scan func(dest ...any) error, d *Donation) error {
	return scan(
		&d.ID,
		&d.UUID,
		&d.Amount,
		&d.FirstName,
		&d.LastName,
		&d.Email,
		&d.Status,
		&d.Address,
		&d.ContactOk,
		&d.City,
		&d.Country,
		&d.Phone,
		&d.TransactionID,
		&d.PaymentURL,

		&d.CreatedAt,
		&d.UpdatedAt,
	)
}
