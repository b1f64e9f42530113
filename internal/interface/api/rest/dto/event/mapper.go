package event

import (
	"content-manager-api/internal/domain/attachment"
	"content-manager-api/internal/domain/event"
)

func ToResponseEvent(d event.Event) Event {
	return Event{
		UUID:             d.UUID,
		Title:            d.Title,
		ShortDescription: d.ShortDescription,
		Link:             d.Link,
		EventDate:        d.EventDate,
		Image:            d.Attachments.URL(attachment.SlotImage),
		Video:            d.Attachments.URL(attachment.SlotVideo),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToResponseEvents(ds event.Events) Events {
	es := make(Events, len(ds))
	for idx, d := range ds {
		es[idx] = ToResponseEvent(*d)
	}

	return es
}

func ToDomainEvent(r Request) event.Event {
	return event.Event{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Link:             r.Link,
		EventDate:        r.EventDate,
	}
}

func ToDomainUpdate(r UpdateRequest) event.Update {
	return event.Update{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Link:             r.Link,
		EventDate:        r.EventDate,
	}
}
