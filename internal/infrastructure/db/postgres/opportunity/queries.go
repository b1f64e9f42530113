package opportunity

const (
	SelectOpportunities = `
		SELECT id, uuid, title, short_description, link, attachments, created_at, updated_at
		FROM opportunities
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	CountOpportunities = `
		SELECT count(*) FROM opportunities
	`
	SelectOpportunityByID = `
		SELECT id, uuid, title, short_description, link, attachments, created_at, updated_at
		FROM opportunities
		WHERE uuid = $1
	`
	InsertOpportunity = `
		INSERT INTO opportunities (title, short_description, link, attachments)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, title, short_description, link, attachments, created_at, updated_at
	`
	UpdateOpportunityByUUID = `
		UPDATE opportunities
		SET title = $1,
		    short_description = $2,
		    link = $3,
		    attachments = $4,
		    updated_at = now()
		WHERE uuid = $5
		RETURNING
		  id, uuid, title, short_description, link, attachments, created_at, updated_at
	`
	DeleteOpportunityByUUID = `
		DELETE FROM opportunities
		WHERE uuid = $1
		RETURNING
		  id, uuid, title, short_description, link, attachments, created_at, updated_at
	`
)
