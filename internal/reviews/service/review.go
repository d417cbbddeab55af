package service

import (
	"context"
	"time"

	"splendico/internal/events"
	reviewserrors "splendico/internal/reviews/errors"
	"splendico/internal/reviews/repository"
	"splendico/internal/reviews/validator"
	"splendico/pkg/config"
	apperrors "splendico/pkg/errors"
	"splendico/pkg/logger"
	"splendico/pkg/model"
	"splendico/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) error
	ListByRoom(ctx context.Context, roomID string) ([]*model.Review, error)
	Recent(ctx context.Context) ([]*model.Review, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	validator *validator.ReviewValidator
	publisher events.Publisher
	log       *logger.Logger
	now       func() time.Time
}

func NewReviewService(
	repo repository.ReviewRepository,
	validator *validator.ReviewValidator,
	publisher events.Publisher,
	log *logger.Logger,
) ReviewService {
	return &reviewService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) error {
	s.sanitize(review)
	if err := s.validate(review); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return apperrors.Internal("Failed to create review", err)
	}

	s.log.Info("Review created successfully",
		"id", review.ID,
		"room_id", review.RoomID,
		"rating", review.Rating,
	)
	s.publisher.Publish(ctx, events.ReviewCreated, review.ID, review)
	return nil
}

func (s *reviewService) ListByRoom(ctx context.Context, roomID string) ([]*model.Review, error) {
	if !primitive.IsValidObjectID(roomID) {
		return nil, apperrors.InvalidInput(reviewserrors.ErrInvalidRoomID.Error())
	}

	reviews, err := s.repo.FindByRoom(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to list room reviews", logger.REQUEST_ID, logger.RequestID(ctx), "room_id", roomID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve reviews", err)
	}
	return reviews, nil
}

func (s *reviewService) Recent(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.repo.FindRecent(ctx, config.RecentReviewsLimit)
	if err != nil {
		s.log.Error("Failed to list recent reviews", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return nil, apperrors.Internal("Failed to retrieve reviews", err)
	}
	return reviews, nil
}

// sanitize strips markup from free text, drops any client-supplied id and
// stamps the review with the current time when no date was sent.
func (s *reviewService) sanitize(r *model.Review) {
	r.ID = ""
	r.RoomID = sanitizer.TrimAndNormalize(r.RoomID)
	r.Name = sanitizer.NormalizeName(r.Name)
	r.Email = sanitizer.NormalizeEmail(r.Email)
	r.Comment = sanitizer.SanitizeComment(r.Comment)
	if r.Date.IsZero() {
		r.Date = s.now().UTC().Truncate(time.Millisecond)
	}
}

func (s *reviewService) validate(review *model.Review) error {
	if err := s.validator.Validate(review); err != nil {
		s.log.Warn("Review validation failed", "error", err)
		return apperrors.Validation("Review validation failed", map[string]any{"errors": err})
	}
	return nil
}
