package teammember

import (
	domain "content-manager-api/internal/domain/teammember"
	"content-manager-api/internal/infrastructure/db/postgres"
)

func fromDBModel(model *TeamMember) (*domain.TeamMember, error) {
	atts, err := postgres.UnmarshalAttachments(model.Attachments)
	if err != nil {
		return nil, err
	}

	return &domain.TeamMember{
		UUID:             model.UUID,
		Name:             model.Name,
		Role:             model.Role,
		ShortDescription: model.ShortDescription,
		Category:         model.Category,
		Year:             model.Year,
		Attachments:      atts,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func fromDBModels(models TeamMembers) (domain.TeamMembers, error) {
	ms := make(domain.TeamMembers, len(models))
	for idx, m := range models {
		tm, err := fromDBModel(m)
		if err != nil {
			return nil, err
		}
		ms[idx] = tm
	}

	return ms, nil
}
