package announcement

const (
	SelectAnnouncements = `
		SELECT id, uuid, title, short_description, link, category, attachments, created_at, updated_at
		FROM announcements
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	CountAnnouncements = `
		SELECT count(*) FROM announcements WHERE ($1 = '' OR category = $1)
	`
	SelectAnnouncementByID = `
		SELECT id, uuid, title, short_description, link, category, attachments, created_at, updated_at
		FROM announcements
		WHERE uuid = $1
	`
	InsertAnnouncement = `
		INSERT INTO announcements (title, short_description, link, category, attachments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, uuid, title, short_description, link, category, attachments, created_at, updated_at
	`
	UpdateAnnouncementByUUID = `
		UPDATE announcements
		SET title = $1,
		    short_description = $2,
		    link = $3,
		    category = $4,
		    attachments = $5,
		    updated_at = now()
		WHERE uuid = $6
		RETURNING
		  id, uuid, title, short_description, link, category, attachments, created_at, updated_at
	`
	DeleteAnnouncementByUUID = `
		DELETE FROM announcements
		WHERE uuid = $1
		RETURNING
		  id, uuid, title, short_description, link, category, attachments, created_at, updated_at
	`
)
