package teammember

import (
	"content-manager-api/internal/domain/attachment"
	"content-manager-api/internal/domain/teammember"
)

func ToResponseTeamMember(d teammember.TeamMember) TeamMember {
	return TeamMember{
		UUID:             d.UUID,
		Name:             d.Name,
		Role:             d.Role,
		ShortDescription: d.ShortDescription,
		Category:         d.Category,
		Year:             d.Year,
		Image:            d.Attachments.URL(attachment.SlotImage),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToResponseTeamMembers(ds teammember.TeamMembers) TeamMembers {
	ms := make(TeamMembers, len(ds))
	for idx, d := range ds {
		ms[idx] = ToResponseTeamMember(*d)
	}

	return ms
}

func ToDomainTeamMember(r Request) teammember.TeamMember {
	return teammember.TeamMember{
		Name:             r.Name,
		Role:             r.Role,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Year:             r.Year,
	}
}

func ToDomainUpdate(r UpdateRequest) teammember.Update {
	return teammember.Update{
		Name:             r.Name,
		Role:             r.Role,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Year:             r.Year,
	}
}
