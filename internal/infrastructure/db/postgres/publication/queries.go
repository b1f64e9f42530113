package publication

const (
	SelectPublications = `
		SELECT id, uuid, title, short_description, category, is_ongoing, disclaimer, attachments, created_at, updated_at
		FROM publications
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	CountPublications = `
		SELECT count(*) FROM publications WHERE ($1 = '' OR category = $1)
	`
	SelectPublicationByID = `
		SELECT id, uuid, title, short_description, category, is_ongoing, disclaimer, attachments, created_at, updated_at
		FROM publications
		WHERE uuid = $1
	`
	InsertPublication = `
		INSERT INTO publications (title, short_description, category, is_ongoing, disclaimer, attachments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, uuid, title, short_description, category, is_ongoing, disclaimer, attachments, created_at, updated_at
	`
	UpdatePublicationByUUID = `
		UPDATE publications
		SET title = $1,
		    short_description = $2,
		    category = $3,
		    is_ongoing = $4,
		    disclaimer = $5,
		    attachments = $6,
		    updated_at = now()
		WHERE uuid = $7
		RETURNING
		  id, uuid, title, short_description, category, is_ongoing, disclaimer, attachments, created_at, updated_at
	`
	DeletePublicationByUUID = `
		DELETE FROM publications
		WHERE uuid = $1
		RETURNING
		  id, uuid, title, short_description, category, is_ongoing, disclaimer, attachments, created_at, updated_at
	`
)
