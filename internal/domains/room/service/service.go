package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/availability"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	housekeepingRepo "frontdesk/internal/domains/housekeeping/repository"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	Status(ctx context.Context, date time.Time) (dto.RoomStatusBoardResponse, error)
	Provision(ctx context.Context, rooms []model.Room) error
}

type serviceImpl struct {
	repo             repository.Room
	bookingRepo      bookingRepo.Booking
	housekeepingRepo housekeepingRepo.CleaningStatus
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepo.Booking, housekeepingRepo housekeepingRepo.CleaningStatus, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:             repo,
		bookingRepo:      bookingRepo,
		housekeepingRepo: housekeepingRepo,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

func byID() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, byID(), gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, byID(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// Status builds the room-status board for date from a fresh read of its bookings.
func (s *serviceImpl) Status(ctx context.Context, date time.Time) (res dto.RoomStatusBoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.GetAll(ctx)
	if err != nil {
		return res, err
	}

	day := stay.Date(date)
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "day_start", Field: bookingModel.FieldCheckInDate, Table: bookingModel.TableName, Operator: gDto.FilterOperatorLessEq, Value: day},
			gDto.Filter{ArgName: "day_end", Field: bookingModel.FieldCheckOutDate, Table: bookingModel.TableName, Operator: gDto.FilterOperatorGreaterEq, Value: day},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for date")

		return res, fmt.Errorf("failed to get bookings for date: %w", err)
	}

	res.Date = stay.FormatDate(day)
	res.Rooms = make([]dto.RoomStatusResponse, len(rooms.Rooms))

	for i, room := range rooms.Rooms {
		row := dto.RoomStatusResponse{RoomResponse: room, Status: string(availability.Vacant)}

		if booking, ok := availability.OnDate(bookings, room.ID, day); ok {
			row.Status = string(availability.Booked)
			row.BookingID = &booking.ID
			row.CustomerName = &booking.CustomerName
			res.Booked++
		} else {
			res.Vacant++
		}

		res.Rooms[i] = row
	}

	return res, nil
}

// Provision upserts the rooms and gives each new room a Clean status, all or nothing.
func (s *serviceImpl) Provision(ctx context.Context, rooms []model.Room) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Provision")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(rooms) == 0 {
		return failure.BadRequestFromString("no rooms to provision") // nolint:wrapcheck
	}

	ids := make([]int, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}

	err = s.repo.Transaction(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.UpsertTx(ctx, sqltx, rooms); err != nil {
			return err
		}

		return s.housekeepingRepo.EnsureTx(ctx, sqltx, ids, timezone.Now())
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to provision rooms")

		return fmt.Errorf("failed to provision rooms: %w", err)
	}

	log.Info().Int("rooms", len(rooms)).Msg("rooms provisioned")

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllRoom)

	return nil
}
