package opportunity

import (
	"content-manager-api/internal/domain/attachment"
	"content-manager-api/internal/domain/opportunity"
)

func ToResponseOpportunity(d opportunity.Opportunity) Opportunity {
	return Opportunity{
		UUID:             d.UUID,
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		Link:             d.Link,
		Image:            d.Attachments.URL(attachment.SlotImage),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToResponseOpportunities(ds opportunity.Opportunities) Opportunities {
	os := make(Opportunities, len(ds))
	for idx, d := range ds {
		os[idx] = ToResponseOpportunity(*d)
	}

	return os
}

func ToDomainOpportunity(r Request) opportunity.Opportunity {
	return opportunity.Opportunity{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Link:             r.Link,
	}
}

func ToDomainUpdate(r UpdateRequest) opportunity.Update {
	return opportunity.Update{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Link:             r.Link,
	}
}
