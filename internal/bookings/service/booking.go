package service

import (
	"context"
	"errors"

	bookingserrors "splendico/internal/bookings/errors"
	"splendico/internal/bookings/repository"
	"splendico/internal/bookings/validator"
	"splendico/internal/events"
	apperrors "splendico/pkg/errors"
	"splendico/pkg/logger"
	"splendico/pkg/model"
	"splendico/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	log       *logger.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.log.Info("Booking created successfully",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"date", booking.Date,
	)
	s.publisher.Publish(ctx, events.BookingCreated, booking.ID, booking)
	return nil
}

func (s *bookingService) ListByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	bookings, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to list bookings", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrInvalidID):
			return apperrors.InvalidInput("Invalid booking ID format")
		case errors.Is(err, bookingserrors.ErrNotFound):
			return apperrors.NotFoundWithID("Booking", id)
		default:
			s.log.Error("Failed to delete booking", logger.REQUEST_ID, logger.RequestID(ctx), "id", id, "error", err)
			return apperrors.Internal("Failed to delete booking", err)
		}
	}

	s.log.Info("Booking deleted successfully", "id", id)
	s.publisher.Publish(ctx, events.BookingDeleted, id, map[string]string{"id": id})
	return nil
}

// sanitize also drops any client-supplied identifier or timestamp; both are
// assigned by the store.
func (s *bookingService) sanitize(b *model.Booking) {
	b.ID = ""
	b.Email = sanitizer.NormalizeEmail(b.Email)
	b.Name = sanitizer.NormalizeName(b.Name)
	b.RoomID = sanitizer.TrimAndNormalize(b.RoomID)
	b.Date = sanitizer.TrimAndNormalize(b.Date)
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"errors": err})
	}
	return nil
}
