package donation

const (
	SelectDonations = `
		SELECT id, uuid, amount, first_name, last_name, email, status, address,
		       contact_ok, city, country, phone, transaction_id, payment_url,
		       created_at, updated_at
		FROM donations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	CountDonations = `
		SELECT count(*) FROM donations
	`
	SelectDonationByID = `
		SELECT id, uuid, amount, first_name, last_name, email, status, address,
		       contact_ok, city, country, phone, transaction_id, payment_url,
		       created_at, updated_at
		FROM donations
		WHERE uuid = $1
	`
	InsertDonation = `
		INSERT INTO donations (amount, first_name, last_name, email, status, address,
		                       contact_ok, city, country, phone, transaction_id, payment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING
		  id, uuid, amount, first_name, last_name, email, status, address,
		  contact_ok, city, country, phone, transaction_id, payment_url,
		  created_at, updated_at
	`
	UpdateDonationByUUID = `
		UPDATE donations
		SET amount = $1,
		    first_name = $2,
		    last_name = $3,
		    email = $4,
		    status = $5,
		    address = $6,
		    contact_ok = $7,
		    city = $8,
		    country = $9,
		    phone = $10,
		    transaction_id = $11,
		    payment_url = $12,
		    updated_at = now()
		WHERE uuid = $13
		RETURNING
		  id, uuid, amount, first_name, last_name, email, status, address,
		  contact_ok, city, country, phone, transaction_id, payment_url,
		  created_at, updated_at
	`
	DeleteDonationByUUID = `
		DELETE FROM donations
		WHERE uuid = $1
		RETURNING
		  id, uuid, amount, first_name, last_name, email, status, address,
		  contact_ok, city, country, phone, transaction_id, payment_url,
		  created_at, updated_at
	`
)
