package blog

const (
	SelectBlogs = `
		SELECT id, uuid, title, content, attachments, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	CountBlogs = `
		SELECT count(*) FROM blogs
	`
	SelectBlogByID = `
		SELECT id, uuid, title, content, attachments, created_at, updated_at
		FROM blogs
		WHERE uuid = $1
	`
	InsertBlog = `
		INSERT INTO blogs (title, content, attachments)
		VALUES ($1, $2, $3)
		RETURNING
		  id, uuid, title, content, attachments, created_at, updated_at
	`
	UpdateBlogByUUID = `
		UPDATE blogs
		SET title = $1,
		    content = $2,
		    attachments = $3,
		    updated_at = now()
		WHERE uuid = $4
		RETURNING
		  id, uuid, title, content, attachments, created_at, updated_at
	`
	DeleteBlogByUUID = `
		DELETE FROM blogs
		WHERE uuid = $1
		RETURNING
		  id, uuid, title, content, attachments, created_at, updated_at
	`
)
