package event

const (
	SelectEvents = `
		SELECT id, uuid, title, short_description, link, event_date, attachments, created_at, updated_at
		FROM events
		WHERE ($1::timestamptz IS NULL OR event_date >= $1)
		  AND ($2::timestamptz IS NULL OR event_date <= $2)
		ORDER BY event_date ASC NULLS LAST
		LIMIT $3 OFFSET $4
	`
	CountEvents = `
		SELECT count(*) FROM events
		WHERE ($1::timestamptz IS NULL OR event_date >= $1)
		  AND ($2::timestamptz IS NULL OR event_date <= $2)
	`
	SelectEventByID = `
		SELECT id, uuid, title, short_description, link, event_date, attachments, created_at, updated_at
		FROM events
		WHERE uuid = $1
	`
	InsertEvent = `
		INSERT INTO events (title, short_description, link, event_date, attachments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, uuid, title, short_description, link, event_date, attachments, created_at, updated_at
	`
	UpdateEventByUUID = `
		UPDATE events
		SET title = $1,
		    short_description = $2,
		    link = $3,
		    event_date = $4,
		    attachments = $5,
		    updated_at = now()
		WHERE uuid = $6
		RETURNING
		  id, uuid, title, short_description, link, event_date, attachments, created_at, updated_at
	`
	DeleteEventByUUID = `
		DELETE FROM events
		WHERE uuid = $1
		RETURNING
		  id, uuid, title, short_description, link, event_date, attachments, created_at, updated_at
	`
)
