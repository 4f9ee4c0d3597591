package service

import (
	"context"
	"fmt"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/dashboard/model/dto"
	"frontdesk/internal/domains/dashboard/occupancy"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/stay"

	"github.com/rs/zerolog/log"
)

const (
	minYear   = 2000
	maxYear   = 2100
	maxLimit  = 100
	monthForm = "2006-01"
)

type Dashboard interface {
	DailyOccupancy(ctx context.Context, date time.Time) (dto.DailyOccupancyResponse, error)
	MonthlyOccupancy(ctx context.Context, year int) (dto.MonthlyOccupancyResponse, error)
	TopRooms(ctx context.Context, limit int) (dto.TopRoomsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	cfg         *config.Config
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) DailyOccupancy(ctx context.Context, date time.Time) (res dto.DailyOccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailyOccupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	days := stay.MonthDays(date)

	roomCount, bookings, err := s.snapshot(ctx, days[0], days[len(days)-1])
	if err != nil {
		return res, err
	}

	res.Month = days[0].Format(monthForm)
	res.RoomCount = roomCount
	res.Points = occupancy.DailyOccupancy(bookings, roomCount, date)

	return res, nil
}

func (s *serviceImpl) MonthlyOccupancy(ctx context.Context, year int) (res dto.MonthlyOccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthlyOccupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if year < minYear || year > maxYear {
		return res, failure.BadRequestFromString(fmt.Sprintf("year must be between %d and %d", minYear, maxYear)) // nolint:wrapcheck
	}

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	roomCount, bookings, err := s.snapshot(ctx, first, last)
	if err != nil {
		return res, err
	}

	res.Year = year
	res.RoomCount = roomCount
	res.Points = occupancy.MonthlyOccupancy(bookings, roomCount, year)

	return res, nil
}

func (s *serviceImpl) TopRooms(ctx context.Context, limit int) (res dto.TopRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TopRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if limit <= 0 {
		limit = s.cfg.Hotel.TopRooms
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, bookingModel.FieldID, bookingModel.FieldRoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.Rooms = occupancy.TopBookedRooms(bookings, rooms, limit)

	return res, nil
}

// snapshot reads the room count and every booking touching [from, to].
func (s *serviceImpl) snapshot(ctx context.Context, from, to time.Time) (int, []bookingModel.Booking, error) {
	roomCount, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "range_end", Field: bookingModel.FieldCheckInDate, Table: bookingModel.TableName, Operator: gDto.FilterOperatorLessEq, Value: to},
			gDto.Filter{ArgName: "range_start", Field: bookingModel.FieldCheckOutDate, Table: bookingModel.TableName, Operator: gDto.FilterOperatorGreaterEq, Value: from},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return 0, nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return roomCount, bookings, nil
}
