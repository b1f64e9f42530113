package blog

import (
	"content-manager-api/internal/domain/attachment"
	"content-manager-api/internal/domain/blog"
)

func ToResponseBlog(d blog.Blog) Blog {
	return Blog{
		UUID:      d.UUID,
		Title:     d.Title,
		Content:   d.Content,
		Image:     d.Attachments.URL(attachment.SlotImage),
		Video:     d.Attachments.URL(attachment.SlotVideo),
		PDF:       d.Attachments.URL(attachment.SlotPDF),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToResponseBlogs(ds blog.Blogs) Blogs {
	bs := make(Blogs, len(ds))
	for idx, d := range ds {
		bs[idx] = ToResponseBlog(*d)
	}

	return bs
}

func ToDomainBlog(r Request) blog.Blog {
	return blog.Blog{
		Title:   r.Title,
		Content: r.Content,
	}
}

func ToDomainUpdate(r UpdateRequest) blog.Update {
	return blog.Update{
		Title:   r.Title,
		Content: r.Content,
	}
}
