package contact

const (
	SelectMessages = `
		SELECT id, uuid, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	CountMessages = `
		SELECT count(*) FROM contact_messages
	`
	InsertMessage = `
		INSERT INTO contact_messages (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, name, email, phone, message, created_at
	`
)
