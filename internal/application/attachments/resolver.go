package attachments

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/attachment"
)

// Manager owns the attachment lifecycle shared by every resource kind:
// resolving uploads against a slot policy, planning per-slot replacement and
// reclaiming superseded remote objects. One Manager serves all services.
type Manager struct {
	store       ports.MediaStore
	log         *zap.Logger
	maxFileSize int64
	maxFiles    int
}

func NewManager(store ports.MediaStore, logger *zap.Logger, maxFileSize int64, maxFiles int) *Manager {
	return &Manager{
		store:       store,
		log:         logger,
		maxFileSize: maxFileSize,
		maxFiles:    maxFiles,
	}
}

// Resolve validates the multipart payload against the policy and uploads one
// file per present slot. Validation runs for the whole payload before any
// upload starts, so a rejected request never touches the store.
//
// Atomicity is per call: on a failed upload no descriptors are returned and
// objects stored earlier in the same call are logged as orphans (the remote
// store is reclaimed out of band, see ReclaimResult).
func (m *Manager) Resolve(
	ctx context.Context,
	files ports.UploadPayload,
	pol attachment.Policy,
) (map[attachment.Slot]attachment.Descriptor, error) {
	type pending struct {
		slot attachment.Slot
		fh   *multipart.FileHeader
	}

	var queue []pending
	for name, fhs := range files {
		if len(fhs) == 0 {
			continue
		}
		slot := attachment.Slot(name)
		if !pol.HasSlot(slot) {
			return nil, fmt.Errorf("%w: unexpected upload field %q", attachment.ErrUnsupportedMediaType, name)
		}
		// maxCount:1 per slot, extra files are silently dropped
		fh := fhs[0]
		mimeType := fh.Header.Get("Content-Type")
		if !pol.Allows(slot, mimeType) {
			return nil, fmt.Errorf("%w: %s not allowed in slot %q", attachment.ErrUnsupportedMediaType, mimeType, slot)
		}
		if fh.Size <= 0 || (m.maxFileSize > 0 && fh.Size > m.maxFileSize) {
			return nil, fmt.Errorf("%w: %s", attachment.ErrFileTooLarge, fh.Filename)
		}
		queue = append(queue, pending{slot: slot, fh: fh})
	}
	if m.maxFiles > 0 && len(queue) > m.maxFiles {
		return nil, fmt.Errorf("%w: got %d, limit %d", attachment.ErrTooManyFiles, len(queue), m.maxFiles)
	}
	if len(queue) == 0 {
		return nil, nil
	}

	resolved := make(map[attachment.Slot]attachment.Descriptor, len(queue))
	for _, p := range queue {
		d, err := m.upload(ctx, p.slot, p.fh)
		if err != nil {
			for _, orphan := range resolved {
				m.log.Warn("orphaned remote object after partial resolve",
					zap.String("slot", string(orphan.Slot)),
					zap.String("external_id", orphan.ExternalID),
				)
			}
			return nil, fmt.Errorf("%w: slot %q: %v", attachment.ErrUploadFailed, p.slot, err)
		}
		resolved[p.slot] = d
	}

	return resolved, nil
}

func (m *Manager) upload(ctx context.Context, slot attachment.Slot, fh *multipart.FileHeader) (attachment.Descriptor, error) {
	f, err := fh.Open()
	if err != nil {
		return attachment.Descriptor{}, err
	}
	defer f.Close()

	kind := attachment.KindForSlot(slot)
	mimeType := fh.Header.Get("Content-Type")
	key := storageKey(slot, fh.Filename, mimeType)

	obj, err := m.store.Put(ctx, ports.Upload{
		Key:      key,
		FileName: fh.Filename,
		MimeType: mimeType,
		Size:     fh.Size,
		Kind:     kind,
		Body:     f,
	})
	if err != nil {
		return attachment.Descriptor{}, err
	}

	return attachment.Descriptor{
		Slot:         slot,
		ExternalRef:  obj.URL,
		ExternalID:   obj.PublicID,
		ResourceKind: obj.Kind,
		FileName:     fh.Filename,
		MimeType:     mimeType,
		SizeBytes:    fh.Size,
	}, nil
}
