package repository

import (
	"context"

	"github.com/clearpath-mortgage/backend/internal/model"
)

// LeadRepository defines the persistence interface for leads.
// Semantics match InquiryRepository: the two collections are independent
// and share no keys.
type LeadRepository interface {
	GetAll(ctx context.Context) ([]*model.Lead, error)
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	Add(ctx context.Context, l *model.Lead) (*model.Lead, error)
	MarkAsRead(ctx context.Context, id string) (*model.Lead, error)
	Delete(ctx context.Context, id string) error
}
