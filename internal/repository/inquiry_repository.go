package repository

import (
	"context"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// InquiryRepository defines the persistence interface for inquiries.
type InquiryRepository interface {
	// GetAll returns every inquiry in the collection, in store scan order.
	GetAll(ctx context.Context) ([]*model.Inquiry, error)

	// GetByID returns the inquiry with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)

	// Add assigns id and createdAt, persists the record, and returns
	// exactly what was stored.
	Add(ctx context.Context, in *model.Inquiry) (*model.Inquiry, error)

	// MarkAsRead sets isRead=true on the named record and returns the
	// updated record, or ErrNotFound if no such record exists.
	MarkAsRead(ctx context.Context, id string) (*model.Inquiry, error)

	// Delete removes the record by key. Deleting an absent id is not an
	// error.
	Delete(ctx context.Context, id string) error
}
