package service

import (
	"context"

	"github.com/clearpath-mortgage/backend/internal/model"
	"github.com/clearpath-mortgage/backend/internal/repository"
)

// leadServiceImpl is the production implementation of LeadService.
type leadServiceImpl struct {
	repo     repository.LeadRepository
	notifier LeadNotifier
}

// NewLeadService creates a LeadService backed by the given repository.
// notifier may be nil, in which case no notifications are sent.
func NewLeadService(repo repository.LeadRepository, notifier LeadNotifier) LeadService {
	return &leadServiceImpl{repo: repo, notifier: notifier}
}

func (s *leadServiceImpl) Submit(ctx context.Context, l *model.Lead) (*model.Lead, error) {
	stored, err := s.repo.Add(ctx, l)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyNewLead(stored)
	}
	return stored, nil
}

func (s *leadServiceImpl) List(ctx context.Context) ([]*model.Lead, error) {
	return s.repo.GetAll(ctx)
}

func (s *leadServiceImpl) MarkAsRead(ctx context.Context, id string) (*model.Lead, error) {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *leadServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
