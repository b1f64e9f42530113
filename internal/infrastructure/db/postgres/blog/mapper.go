package blog

import (
	domain "content-manager-api/internal/domain/blog"
	"content-manager-api/internal/infrastructure/db/postgres"
)

func fromDBModel(model *Blog) (*domain.Blog, error) {
	atts, err := postgres.UnmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, err
	}

	return &domain.Blog{
		UUID:        model.UUID,
		Title:       model.Title,
		Content:     model.Content,
		Attachments: atts,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func fromDBModels(models Blogs) (domain.Blogs, error) {
	bs := make(domain.Blogs, len(models))
	for idx, m := range models {
		b, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		bs[idx] = b
	}

	return bs, nil
}
