package service

import (
	"context"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// LeadNotifier receives stored leads for best-effort notification.
// Implementations must not block; the submission response never waits on
// delivery.
type LeadNotifier interface {
	NotifyNewLead(lead *model.Lead) bool
}

// LeadService defines the business operations over the lead collection.
type LeadService interface {
	// Submit stores a new lead and hands it to the notifier. Notification
	// failure or drop does not affect the result.
	Submit(ctx context.Context, l *model.Lead) (*model.Lead, error)

	// List returns every lead, unordered.
	List(ctx context.Context) ([]*model.Lead, error)

	// MarkAsRead flips isRead to true and returns the updated record.
	MarkAsRead(ctx context.Context, id string) (*model.Lead, error)

	// Delete removes the lead. Idempotent.
	Delete(ctx context.Context, id string) error
}
