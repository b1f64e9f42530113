package teammember

const (
	SelectTeamMembers = `
		SELECT id, uuid, name, role, short_description, category, year, attachments, created_at, updated_at
		FROM team_members
		WHERE ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	CountTeamMembers = `
		SELECT count(*) FROM team_members WHERE ($1 = '' OR category = $1)
	`
	SelectTeamMemberByID = `
		SELECT id, uuid, name, role, short_description, category, year, attachments, created_at, updated_at
		FROM team_members
		WHERE uuid = $1
	`
	InsertTeamMember = `
		INSERT INTO team_members (name, role, short_description, category, year, attachments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, uuid, name, role, short_description, category, year, attachments, created_at, updated_at
	`
	UpdateTeamMemberByUUID = `
		UPDATE team_members
		SET name = $1,
		    role = $2,
		    short_description = $3,
		    category = $4,
		    year = $5,
		    attachments = $6,
		    updated_at = now()
		WHERE uuid = $7
		RETURNING
		  id, uuid, name, role, short_description, category, year, attachments, created_at, updated_at
	`
	DeleteTeamMemberByUUID = `
		DELETE FROM team_members
		WHERE uuid = $1
		RETURNING
		  id, uuid, name, role, short_description, category, year, attachments, created_at, updated_at
	`
)
