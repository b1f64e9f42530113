package attachment

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file too large or empty")
	ErrTooManyFiles         = errors.New("too many files in request")
	ErrUploadFailed         = errors.New("media upload failed")
)

// Slot is a named attachment position on a resource. Each resource kind
// declares which slots it accepts and holds at most one file per slot.
type Slot string

const (
	SlotImage    Slot = "image"
	SlotVideo    Slot = "video"
	SlotPDF      Slot = "pdf"
	SlotDocument Slot = "document"
	SlotAudio    Slot = "audio"
)

// ResourceKind is the remote store's internal category for an object. It is
// recorded at upload time and threaded through to deletion: deleting a video
// with a raw-mode call silently fails on the remote side, and the original
// MIME type is no longer available at delete time.
type ResourceKind string

const (
	KindImage ResourceKind = "image"
	KindVideo ResourceKind = "video"
	KindRaw   ResourceKind = "raw"
)

// KindForSlot maps a slot to the store-side category. Documents and audio
// are filed as raw.
func KindForSlot(s Slot) ResourceKind {
	switch s {
	case SlotImage:
		return KindImage
	case SlotVideo:
		return KindVideo
	default:
		return KindRaw
	}
}

type (
	// Attachment is one stored binary bound to a resource slot.
	// ExternalRef and ExternalID are always set and cleared together.
	Attachment struct {
		Slot         Slot         `json:"slot"`
		ExternalRef  string       `json:"external_ref"`
		ExternalID   string       `json:"external_id"`
		ResourceKind ResourceKind `json:"resource_kind"`
	}

	// Attachments holds the current slot state of a resource. A missing key
	// means the slot is empty.
	Attachments map[Slot]Attachment

	// Descriptor is the result of resolving one uploaded file: the object is
	// already durably stored remotely when a Descriptor exists.
	Descriptor struct {
		Slot         Slot
		ExternalRef  string
		ExternalID   string
		ResourceKind ResourceKind
		FileName     string
		MimeType     string
		SizeBytes    int64
	}
)

func (a Attachment) Empty() bool { return a.ExternalRef == "" }

// URL returns the external reference in the given slot, empty if the slot
// holds nothing.
func (as Attachments) URL(s Slot) string { return as[s].ExternalRef }

func (d Descriptor) Attachment() Attachment {
	return Attachment{
		Slot:         d.Slot,
		ExternalRef:  d.ExternalRef,
		ExternalID:   d.ExternalID,
		ResourceKind: d.ResourceKind,
	}
}

type ActionType int

const (
	Keep ActionType = iota
	Replace
)

type (
	// Action is the planner's per-slot decision. For Replace, Old may be an
	// empty Attachment (pure add, nothing to delete afterwards).
	Action struct {
		Type ActionType
		Old  Attachment
		New  Descriptor
	}
	Plan map[Slot]Action
)

// ReclaimResult reports one remote deletion attempt. A failed reclaim is a
// logged degradation, never an error for the caller's request.
type ReclaimResult struct {
	Slot       Slot
	ExternalID string
	Err        error
}

func (r ReclaimResult) Failed() bool { return r.Err != nil }
