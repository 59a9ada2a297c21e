package service

import (
	"context"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// InquiryService defines the business operations over the inquiry collection.
type InquiryService interface {
	// Submit stores a new inquiry. ID and CreatedAt are assigned during
	// persistence; the returned record is what was stored.
	Submit(ctx context.Context, in *model.Inquiry) (*model.Inquiry, error)

	// List returns every inquiry, unordered.
	List(ctx context.Context) ([]*model.Inquiry, error)

	// MarkAsRead flips isRead to true and returns the updated record.
	MarkAsRead(ctx context.Context, id string) (*model.Inquiry, error)

	// Delete removes the inquiry. Idempotent.
	Delete(ctx context.Context, id string) error
}
