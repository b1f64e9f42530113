package attachment

var (
	imageMimes = []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
	}
	videoMimes = []string{
		"video/mp4",
		"video/quicktime",
		"video/x-msvideo",
		"video/webm",
	}
	pdfMimes = []string{
		"application/pdf",
	}
	documentMimes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	audioMimes = []string{
		"audio/mpeg",
		"audio/wav",
		"audio/ogg",
	}

	slotMimes = map[Slot][]string{
		SlotImage:    imageMimes,
		SlotVideo:    videoMimes,
		SlotPDF:      pdfMimes,
		SlotDocument: documentMimes,
		SlotAudio:    audioMimes,
	}
)

// Policy enumerates the slots a resource kind accepts. MIME sets per slot are
// fixed globally, only the slot list varies per kind.
type Policy struct {
	slots []Slot
}

func NewPolicy(slots ...Slot) Policy { return Policy{slots: slots} }

func (p Policy) Slots() []Slot { return p.slots }

func (p Policy) HasSlot(s Slot) bool {
	for _, slot := range p.slots {
		if slot == s {
			return true
		}
	}
	return false
}

func (p Policy) Allows(s Slot, mimeType string) bool {
	if !p.HasSlot(s) {
		return false
	}
	for _, m := range slotMimes[s] {
		if m == mimeType {
			return true
		}
	}
	return false
}
