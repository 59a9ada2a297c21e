package service

import (
	"context"

	"github.com/clearpath-mortgage/backend/internal/model"
	"github.com/clearpath-mortgage/backend/internal/repository"
)

// inquiryServiceImpl is the production implementation of InquiryService.
type inquiryServiceImpl struct {
	repo repository.InquiryRepository
}

// NewInquiryService creates an InquiryService backed by the given repository.
func NewInquiryService(repo repository.InquiryRepository) InquiryService {
	return &inquiryServiceImpl{repo: repo}
}

func (s *inquiryServiceImpl) Submit(ctx context.Context, in *model.Inquiry) (*model.Inquiry, error) {
	return s.repo.Add(ctx, in)
}

func (s *inquiryServiceImpl) List(ctx context.Context) ([]*model.Inquiry, error) {
	return s.repo.GetAll(ctx)
}

func (s *inquiryServiceImpl) MarkAsRead(ctx context.Context, id string) (*model.Inquiry, error) {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *inquiryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
