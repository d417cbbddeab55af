package service

import (
	"context"
	"errors"

	roomserrors "splendico/internal/rooms/errors"
	"splendico/internal/rooms/query"
	"splendico/internal/rooms/repository"
	"splendico/internal/rooms/validator"
	"splendico/pkg/config"
	apperrors "splendico/pkg/errors"
	"splendico/pkg/logger"
	"splendico/pkg/model"
)

type RoomService interface {
	List(ctx context.Context, q query.RoomQuery) ([]*model.Room, error)
	Count(ctx context.Context, filter query.Filter) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	Update(ctx context.Context, id string, update *model.RoomUpdate) (*model.Room, error)
	Suites(ctx context.Context) ([]*model.Room, error)
}

type roomService struct {
	repo      repository.RoomRepository
	validator *validator.RoomValidator
	log       *logger.Logger
}

func NewRoomService(repo repository.RoomRepository, validator *validator.RoomValidator, log *logger.Logger) RoomService {
	return &roomService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *roomService) List(ctx context.Context, q query.RoomQuery) ([]*model.Room, error) {
	rooms, err := s.repo.Find(ctx, q.Filter, q.Window)
	if err != nil {
		s.log.Error("Failed to list rooms", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	return rooms, nil
}

func (s *roomService) Count(ctx context.Context, filter query.Filter) (int64, error) {
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count rooms", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return 0, apperrors.Internal("Failed to count rooms", err)
	}
	return count, nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(ctx, err, id, "Failed to retrieve room")
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, id string, update *model.RoomUpdate) (*model.Room, error) {
	if err := s.validator.ValidateUpdate(update); err != nil {
		s.log.Warn("Room update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Room update validation failed", map[string]any{"errors": err})
	}

	room, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, s.mapError(ctx, err, id, "Failed to update room")
	}

	s.log.Info("Room updated successfully", "id", id)
	return room, nil
}

func (s *roomService) Suites(ctx context.Context) ([]*model.Room, error) {
	filter := query.SuiteShowcase(config.SuiteCategory, config.AvailableStatus)
	rooms, err := s.repo.Find(ctx, filter, query.Window{Limit: config.SuiteShowcaseLimit})
	if err != nil {
		s.log.Error("Failed to list suites", logger.REQUEST_ID, logger.RequestID(ctx), "error", err)
		return nil, apperrors.Internal("Failed to retrieve suites", err)
	}
	return rooms, nil
}

func (s *roomService) mapError(ctx context.Context, err error, id, message string) error {
	switch {
	case errors.Is(err, roomserrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid room ID format")
	case errors.Is(err, roomserrors.ErrNotFound):
		return apperrors.NotFoundWithID("Room", id)
	default:
		s.log.Error(message, logger.REQUEST_ID, logger.RequestID(ctx), "id", id, "error", err)
		return apperrors.Internal(message, err)
	}
}
