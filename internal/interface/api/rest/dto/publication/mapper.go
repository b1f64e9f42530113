package publication

import (
	"content-manager-api/internal/domain/attachment"
	"content-manager-api/internal/domain/publication"
)

func ToResponsePublication(d publication.Publication) Publication {
	return Publication{
		UUID:             d.UUID,
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		Category:         d.Category,
		IsOngoing:        d.IsOngoing,
		Disclaimer:       d.Disclaimer,
		Image:            d.Attachments.URL(attachment.SlotImage),
		PDF:              d.Attachments.URL(attachment.SlotPDF),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToResponsePublications(ds publication.Publications) Publications {
	ps := make(Publications, len(ds))
	for idx, d := range ds {
		ps[idx] = ToResponsePublication(*d)
	}

	return ps
}

func ToDomainPublication(r Request) publication.Publication {
	return publication.Publication{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		IsOngoing:        r.IsOngoing,
		Disclaimer:       r.Disclaimer,
	}
}

func ToDomainUpdate(r UpdateRequest) publication.Update {
	return publication.Update{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		IsOngoing:        r.IsOngoing,
		Disclaimer:       r.Disclaimer,
	}
}
