package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/repository"
	"frontdesk/internal/domains/housekeeping/traffic"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/metrics"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheToggle = "housekeeping:toggle"

type Housekeeping interface {
	GetAll(ctx context.Context) (dto.GetCleaningStatusesResponse, error)
	RequestToggle(ctx context.Context, roomID int, req dto.ToggleRequest) (dto.ToggleResponse, error)
	ConfirmToggle(ctx context.Context, roomID int, req dto.ConfirmToggleRequest) (dto.CleaningStatusResponse, error)
	Rollover(ctx context.Context, now time.Time) (dto.RolloverResponse, error)
}

type serviceImpl struct {
	repo        repository.CleaningStatus
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel
}

func New(repo repository.CleaningStatus, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafka,
		otel:        otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCleaningStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := stay.Date(timezone.Now())

	statuses, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldRoomID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning statuses")

		return res, fmt.Errorf("failed to get cleaning statuses: %w", err)
	}

	bookings, err := s.bookingsAround(ctx, today)
	if err != nil {
		return res, err
	}

	labels := make(map[int]traffic.Labels, len(statuses))
	for _, status := range statuses {
		labels[status.RoomID] = traffic.For(bookings, status.RoomID, today)
	}

	res.Date = stay.FormatDate(today)
	res.FromModels(statuses, labels)

	return res, nil
}

// RequestToggle records the wanted change under a one-time token. Nothing is written until ConfirmToggle.
func (s *serviceImpl) RequestToggle(ctx context.Context, roomID int, req dto.ToggleRequest) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestToggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.Get(ctx, shared.FilterByID(roomID, model.FieldRoomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning status")

		return res, fmt.Errorf("failed to get cleaning status: %w", err)
	}

	if current.RoomID == 0 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	target := req.Status
	if target == constant.Empty {
		target = model.Flipped(current.Status)
	}

	token := uuid.NewString()
	pending := dto.PendingToggle{RoomID: roomID, Status: target}

	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheToggle, token), pending, s.cfg.Housekeeping.ConfirmationTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save toggle confirmation")

		return res, fmt.Errorf("failed to save toggle confirmation: %w", err)
	}

	res = dto.ToggleResponse{
		Token:         token,
		RoomID:        roomID,
		CurrentStatus: current.Status,
		TargetStatus:  target,
		ExpiresIn:     s.cfg.Housekeeping.ConfirmationTTLSeconds,
	}

	return res, nil
}

func (s *serviceImpl) ConfirmToggle(ctx context.Context, roomID int, req dto.ConfirmToggleRequest) (res dto.CleaningStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmToggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var pending dto.PendingToggle

	err = s.cache.Take(ctx, shared.BuildCacheKey(cacheToggle, req.Token), &pending)
	if errors.Is(err, redis.Nil) {
		return res, failure.BadRequestFromString("confirmation token is unknown or expired") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to read toggle confirmation")

		return res, fmt.Errorf("failed to read toggle confirmation: %w", err)
	}

	if pending.RoomID != roomID {
		return res, failure.BadRequestFromString("confirmation token was issued for another room") // nolint:wrapcheck
	}

	status, found, err := s.repo.UpdateStatus(ctx, roomID, pending.Status, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to update cleaning status")

		return res, fmt.Errorf("failed to update cleaning status: %w", err)
	}

	if !found {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	metrics.IncCleaningToggled(status.Status)

	res.FromModel(status)
	s.publish(ctx, event.TypeCleaningStatusChanged, fmt.Sprint(roomID), res)

	return res, nil
}

// Rollover marks every room occupied on now's local day as Needs Cleaning.
// Rooms are flipped at most once per day, so repeating it the same day is a no-op.
func (s *serviceImpl) Rollover(ctx context.Context, now time.Time) (res dto.RolloverResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rollover")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := stay.Date(timezone.ToAppTime(now))

	bookings, err := s.bookingsAround(ctx, today)
	if err != nil {
		return res, err
	}

	occupied := traffic.OccupiedRooms(bookings, today)

	flipped, err := s.repo.MarkNeedsCleaning(ctx, occupied, now, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark rooms as needing cleaning")

		return res, fmt.Errorf("failed to mark rooms as needing cleaning: %w", err)
	}

	metrics.AddRolloverRooms(int(flipped))

	res = dto.RolloverResponse{
		Date:     stay.FormatDate(today),
		Occupied: occupied,
		Flipped:  flipped,
	}

	log.Info().Str("date", res.Date).Ints("occupied", occupied).Int64("flipped", flipped).Msg("housekeeping rollover done")
	s.publish(ctx, event.TypeRolloverCompleted, res.Date, res)

	return res, nil
}

// bookingsAround returns the bookings that arrive, stay or depart on day.
func (s *serviceImpl) bookingsAround(ctx context.Context, day time.Time) ([]bookingModel.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "day_start", Field: bookingModel.FieldCheckInDate, Table: bookingModel.TableName, Operator: gDto.FilterOperatorLessEq, Value: day},
			gDto.Filter{ArgName: "day_end", Field: bookingModel.FieldCheckOutDate, Table: bookingModel.TableName, Operator: gDto.FilterOperatorGreaterEq, Value: day},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for today")

		return nil, fmt.Errorf("failed to get bookings for today: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType, key string, data any) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event.Publish(c, s.kafka, s.cfg.Kafka.Topics.Housekeeping, key, eventType, data)
	}()
}
