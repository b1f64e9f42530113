package attachments

import (
	"content-manager-api/internal/domain/attachment"
)

// Plan decides, per slot, what an update does with the attachment state.
// Slots with a freshly resolved descriptor become Replace (with an empty Old
// when the slot was vacant); slots only present in the existing state stay
// Keep. An omitted slot never clears: there is no implicit removal.
//
// The descriptors in resolved are already durably stored remotely, and the
// caller must persist the merged state in the database before reclaiming the
// plan, so a crash in between never leaves a record pointing at a deleted
// object.
func Plan(
	existing attachment.Attachments,
	resolved map[attachment.Slot]attachment.Descriptor,
) attachment.Plan {
	plan := make(attachment.Plan, len(existing)+len(resolved))

	for slot, d := range resolved {
		plan[slot] = attachment.Action{
			Type: attachment.Replace,
			Old:  existing[slot],
			New:  d,
		}
	}
	for slot, old := range existing {
		if _, ok := resolved[slot]; ok {
			continue
		}
		plan[slot] = attachment.Action{Type: attachment.Keep, Old: old}
	}

	return plan
}

// Merge returns the attachment state after applying resolved descriptors on
// top of the existing slots.
func Merge(
	existing attachment.Attachments,
	resolved map[attachment.Slot]attachment.Descriptor,
) attachment.Attachments {
	merged := make(attachment.Attachments, len(existing)+len(resolved))
	for slot, a := range existing {
		merged[slot] = a
	}
	for slot, d := range resolved {
		merged[slot] = d.Attachment()
	}
	return merged
}
