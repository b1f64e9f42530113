package attachments

import (
	"context"

	"go.uber.org/zap"

	"content-manager-api/internal/domain/attachment"
)

// Reclaim deletes the remote objects superseded by a plan. It runs after the
// database write committed the new state. Individual failures are logged and
// reported, never returned: an orphaned remote object is an accepted
// degradation, a rolled-back mutation is not.
func (m *Manager) Reclaim(ctx context.Context, plan attachment.Plan) []attachment.ReclaimResult {
	var results []attachment.ReclaimResult
	for slot, action := range plan {
		if action.Type != attachment.Replace || action.Old.Empty() {
			continue
		}
		results = append(results, m.remove(ctx, slot, action.Old))
	}
	return results
}

// ReclaimAll deletes every non-empty slot of a removed resource.
func (m *Manager) ReclaimAll(ctx context.Context, atts attachment.Attachments) []attachment.ReclaimResult {
	var results []attachment.ReclaimResult
	for slot, a := range atts {
		if a.Empty() {
			continue
		}
		results = append(results, m.remove(ctx, slot, a))
	}
	return results
}

func (m *Manager) remove(ctx context.Context, slot attachment.Slot, a attachment.Attachment) attachment.ReclaimResult {
	// deletion mode comes from the recorded ResourceKind, never re-derived
	err := m.store.Delete(ctx, a.ExternalID, a.ResourceKind)
	if err != nil {
		m.log.Error("remote reclaim failed",
			zap.String("slot", string(slot)),
			zap.String("external_id", a.ExternalID),
			zap.String("resource_kind", string(a.ResourceKind)),
			zap.Error(err),
		)
	}
	return attachment.ReclaimResult{Slot: slot, ExternalID: a.ExternalID, Err: err}
}
