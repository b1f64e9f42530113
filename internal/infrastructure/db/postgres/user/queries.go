package user

const (
	SelectUserByEmail = `
		SELECT id, uuid, name, email, password_hash, role, reset_token_hash, reset_expires, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, name, email, password_hash, role, reset_token_hash, reset_expires, created_at, updated_at
	`
	SetResetTokenByUUID = `
		UPDATE users
		SET reset_token_hash = $1,
		    reset_expires = $2,
		    updated_at = now()
		WHERE uuid = $3
	`
	SelectUserByResetToken = `
		SELECT id, uuid, name, email, password_hash, role, reset_token_hash, reset_expires, created_at, updated_at
		FROM users
		WHERE reset_token_hash = $1
		  AND reset_expires > now()
	`
	ClearResetTokenByUUID = `
		UPDATE users
		SET reset_token_hash = NULL,
		    reset_expires = NULL,
		    updated_at = now()
		WHERE uuid = $1
	`
	UpdatePasswordByUUID = `
		UPDATE users
		SET password_hash = $1,
		    reset_token_hash = NULL,
		    reset_expires = NULL,
		    updated_at = now()
		WHERE uuid = $2
	`
)
