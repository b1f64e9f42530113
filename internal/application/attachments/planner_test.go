package attachments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-manager-api/internal/domain/attachment"
)

func storedImage(id string) attachment.Attachment {
	return attachment.Attachment{
		Slot:         attachment.SlotImage,
		ExternalRef:  "https://cdn.example.org/" + id,
		ExternalID:   id,
		ResourceKind: attachment.KindImage,
	}
}

func resolvedDescriptor(slot attachment.Slot, id string) attachment.Descriptor {
	return attachment.Descriptor{
		Slot:         slot,
		ExternalRef:  "https://cdn.example.org/" + id,
		ExternalID:   id,
		ResourceKind: attachment.KindForSlot(slot),
	}
}

func TestPlan_ReplaceOccupiedSlot(t *testing.T) {
	existing := attachment.Attachments{attachment.SlotImage: storedImage("old")}
	resolved := map[attachment.Slot]attachment.Descriptor{
		attachment.SlotImage: resolvedDescriptor(attachment.SlotImage, "new"),
	}

	plan := Plan(existing, resolved)
	require.Len(t, plan, 1)

	action := plan[attachment.SlotImage]
	assert.Equal(t, attachment.Replace, action.Type)
	assert.Equal(t, "old", action.Old.ExternalID)
	assert.Equal(t, "new", action.New.ExternalID)
}

func TestPlan_ReplaceVacantSlot(t *testing.T) {
	resolved := map[attachment.Slot]attachment.Descriptor{
		attachment.SlotPDF: resolvedDescriptor(attachment.SlotPDF, "doc"),
	}

	plan := Plan(nil, resolved)
	require.Len(t, plan, 1)

	action := plan[attachment.SlotPDF]
	assert.Equal(t, attachment.Replace, action.Type)
	assert.True(t, action.Old.Empty())
}

func TestPlan_OmittedSlotStaysKept(t *testing.T) {
	existing := attachment.Attachments{
		attachment.SlotImage: storedImage("img"),
		attachment.SlotPDF: {
			Slot:         attachment.SlotPDF,
			ExternalRef:  "https://cdn.example.org/doc",
			ExternalID:   "doc",
			ResourceKind: attachment.KindRaw,
		},
	}
	resolved := map[attachment.Slot]attachment.Descriptor{
		attachment.SlotImage: resolvedDescriptor(attachment.SlotImage, "img2"),
	}

	plan := Plan(existing, resolved)
	require.Len(t, plan, 2)

	assert.Equal(t, attachment.Replace, plan[attachment.SlotImage].Type)
	assert.Equal(t, attachment.Keep, plan[attachment.SlotPDF].Type)
	assert.Equal(t, "doc", plan[attachment.SlotPDF].Old.ExternalID)
}

func TestMerge(t *testing.T) {
	existing := attachment.Attachments{
		attachment.SlotImage: storedImage("img"),
		attachment.SlotPDF: {
			Slot:        attachment.SlotPDF,
			ExternalRef: "https://cdn.example.org/doc",
			ExternalID:  "doc",
		},
	}
	resolved := map[attachment.Slot]attachment.Descriptor{
		attachment.SlotImage: resolvedDescriptor(attachment.SlotImage, "img2"),
	}

	merged := Merge(existing, resolved)
	require.Len(t, merged, 2)
	assert.Equal(t, "img2", merged[attachment.SlotImage].ExternalID)
	assert.Equal(t, "doc", merged[attachment.SlotPDF].ExternalID)

	// inputs untouched
	assert.Equal(t, "img", existing[attachment.SlotImage].ExternalID)
}
