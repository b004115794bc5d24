package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

const defaultNoticeAuthor = "Admin"

// NoticeService handles campus notices. Reads are open to any authenticated
// user; writes stay with admins.
type NoticeService struct {
	noticeRepo *repositories.NoticeRepository
	logger     zerolog.Logger
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeRepo *repositories.NoticeRepository, logger zerolog.Logger) *NoticeService {
	return &NoticeService{noticeRepo: noticeRepo, logger: logger}
}

// Create publishes a notice.
func (s *NoticeService) Create(ctx context.Context, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	postedBy := strings.TrimSpace(req.PostedBy)
	if postedBy == "" {
		postedBy = defaultNoticeAuthor
	}

	notice := &models.Notice{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		PostedBy:    postedBy,
	}
	if strings.TrimSpace(req.EventDate) != "" {
		eventDate, err := helpers.ParseDate(req.EventDate)
		if err != nil {
			return nil, apperrors.NewValidationError("eventDate must be RFC 3339 or YYYY-MM-DD").WithField("eventDate")
		}
		notice.EventDate = &eventDate
	}

	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("noticeID", notice.ID).Msg("Notice published")
	return notice, nil
}

// List returns all notices, newest first.
func (s *NoticeService) List(ctx context.Context) ([]*models.Notice, error) {
	return s.noticeRepo.List(ctx)
}

// Get returns one notice.
func (s *NoticeService) Get(ctx context.Context, noticeID int64) (*models.Notice, error) {
	return s.noticeRepo.GetByID(ctx, noticeID)
}

// Update applies a partial patch to a notice.
func (s *NoticeService) Update(ctx context.Context, noticeID int64, req *dto.UpdateNoticeRequest) (*models.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, noticeID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		notice.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		notice.Description = strings.TrimSpace(*req.Description)
	}
	if req.PostedBy != nil && strings.TrimSpace(*req.PostedBy) != "" {
		notice.PostedBy = strings.TrimSpace(*req.PostedBy)
	}
	if req.EventDate != nil {
		if strings.TrimSpace(*req.EventDate) == "" {
			notice.EventDate = nil
		} else {
			eventDate, err := helpers.ParseDate(*req.EventDate)
			if err != nil {
				return nil, apperrors.NewValidationError("eventDate must be RFC 3339 or YYYY-MM-DD").WithField("eventDate")
			}
			notice.EventDate = &eventDate
		}
	}

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, noticeID int64) error {
	return s.noticeRepo.Delete(ctx, noticeID)
}
