package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/availability"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	customerModel "frontdesk/internal/domains/customer/model"
	customerRepo "frontdesk/internal/domains/customer/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/metrics"
	"frontdesk/shared/phone"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	idAttempts      = 3
	primaryKeyIndex = "bookings_pkey"
	searchArg       = "search"
)

var errInvalidStay = failure.BadRequestFromString("check_out_date must be after check_in_date")

type Booking interface {
	Create(ctx context.Context, req dto.BookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.BookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	OnDate(ctx context.Context, date string) (dto.GetBookingsResponse, error)
	Search(ctx context.Context, query string) (dto.GetBookingsResponse, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	cfg          *config.Config
	kafka        kafka.Client
	otel         otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, customerRepo customerRepo.Customer, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
		kafka:        kafka,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.BookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := parseStay(req)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	customer := req.ToCustomer(phone.Normalize(req.Phone, s.cfg.Hotel.PhoneRegion), now)

	var booking model.Booking

	for attempt := 1; ; attempt++ {
		id, err := model.GenerateID(now)
		if err != nil {
			log.Error().Err(err).Msg("failed to generate booking id")

			return res, err
		}

		booking, err = s.save(ctx, req.ToModel(id, 0, checkIn, checkOut, now), customer, false)
		if err == nil {
			break
		}

		if !isDuplicateID(err) || attempt == idAttempts {
			return res, s.translate(err, "create")
		}

		log.Warn().Str("id", id).Int("attempt", attempt).Msg("booking id already taken, generating another")
	}

	metrics.IncBookingCreated(booking.Status)
	s.publish(ctx, event.TypeBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.BookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := parseStay(req)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	customer := req.ToCustomer(phone.Normalize(req.Phone, s.cfg.Hotel.PhoneRegion), now)

	booking, err := s.save(ctx, req.ToModel(id, 0, checkIn, checkOut, now), customer, true)
	if err != nil {
		return res, s.translate(err, "update")
	}

	metrics.IncBookingUpdated(booking.Status)
	s.publish(ctx, event.TypeBookingUpdated, booking)

	res.FromModel(booking)

	return res, nil
}

// save re-checks availability against the room's bookings while holding the room row lock,
// then upserts the customer and writes the booking in the same transaction.
func (s *serviceImpl) save(ctx context.Context, booking model.Booking, customer customerModel.Customer, existing bool) (model.Booking, error) {
	excludeID := constant.Empty

	err := s.repo.Transaction(ctx, func(sqltx *sqlx.Tx) error {
		if existing {
			current, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
			if err != nil {
				return fmt.Errorf("failed to get booking: %w", err)
			}

			if current.ID == constant.Empty {
				return failure.NotFound("booking not found")
			}

			booking.CreatedAt = current.CreatedAt
			excludeID = current.ID
		}

		room, err := s.roomRepo.LockTx(ctx, sqltx, booking.RoomID)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == 0 {
			return failure.NotFound("room not found")
		}

		bookings, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, roomStayFilter(room.ID, booking.CheckInDate))
		if err != nil {
			return fmt.Errorf("failed to get room bookings: %w", err)
		}

		if err := availability.Check(bookings, room.ID, booking.CheckInDate, booking.CheckOutDate, excludeID); err != nil {
			return err
		}

		booking.CustomerID, err = s.customerRepo.UpsertByPhoneTx(ctx, sqltx, customer)
		if err != nil {
			return fmt.Errorf("failed to upsert customer: %w", err)
		}

		if existing {
			err = s.repo.UpdateTx(ctx, sqltx, dto.ToUpdateFields(booking), shared.FilterByID(booking.ID, model.FieldID, model.TableName))
		} else {
			err = s.repo.InsertTx(ctx, sqltx, booking)
		}

		if err != nil {
			return fmt.Errorf("failed to write booking: %w", err)
		}

		booking.RoomNumber = room.Number

		return nil
	})
	if err != nil {
		return booking, err
	}

	booking.CustomerName = customer.Name
	booking.Phone = customer.Phone
	booking.Email = customer.Email
	booking.Address = customer.Address
	booking.TaxID = customer.TaxID

	return booking, nil
}

func (s *serviceImpl) translate(err error, action string) error {
	var conflict *availability.ConflictError
	if errors.As(err, &conflict) {
		metrics.IncBookingConflict()
		log.Warn().Str("booking", conflict.Booking.ID).Int("room", conflict.Booking.RoomID).Msg("booking conflicts with an existing stay")

		return failure.Conflict(conflict.Error())
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeExclusionViolation {
		metrics.IncBookingConflict()
		log.Warn().Err(err).Msg("booking rejected by overlap constraint")

		return failure.Conflict("room is already booked for the requested dates")
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	log.Error().Err(err).Msgf("failed to %s booking", action)

	return fmt.Errorf("failed to %s booking: %w", action, err)
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	var payload dto.BookingResponse
	payload.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		event.Publish(c, s.kafka, s.cfg.Kafka.Topics.Booking, booking.ID, eventType, payload)
	}()
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, gDto.FilterGroup{}, "get")
}

func (s *serviceImpl) OnDate(ctx context.Context, date string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OnDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := stay.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "day_start", Field: model.FieldCheckInDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Value: day},
			gDto.Filter{ArgName: "day_end", Field: model.FieldCheckOutDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Value: day},
		},
	}

	bookings, err := s.repo.GetAll(ctx, newestFirst(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings on date")

		return res, fmt.Errorf("failed to get bookings on date: %w", err)
	}

	res.FromModels(availability.Occupied(bookings, day))

	return res, nil
}

// Search matches customer name, phone, booking id or check-in date, ignoring case.
func (s *serviceImpl) Search(ctx context.Context, query string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query = strings.TrimSpace(query)
	if query == constant.Empty {
		return s.list(ctx, gDto.FilterGroup{}, "search")
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: searchArg, Field: model.FieldCustomerName, Table: customerModel.TableName, Operator: gDto.FilterOperatorLike, Value: query},
			gDto.Filter{ArgName: searchArg, Field: model.FieldPhone, Table: customerModel.TableName, Operator: gDto.FilterOperatorLike, Value: query},
			gDto.Filter{ArgName: searchArg, Field: model.FieldID, Table: model.TableName, Operator: gDto.FilterOperatorLike, Value: query},
			gDto.Filter{Operator: gDto.FilterPlainQuery, Value: "TO_CHAR(bookings.check_in_date, 'YYYY-MM-DD') LIKE :" + searchArg},
		},
	}

	return s.list(ctx, filter, "search")
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup, action string) (res dto.GetBookingsResponse, err error) {
	bookings, err := s.repo.GetAll(ctx, newestFirst(), filter)
	if err != nil {
		log.Error().Err(err).Msgf("failed to %s bookings", action)

		return res, fmt.Errorf("failed to %s bookings: %w", action, err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := parseDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, roomStayFilter(req.RoomID, checkIn))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	res.RoomID = req.RoomID
	res.CheckIn = stay.FormatDate(checkIn)
	res.CheckOut = stay.FormatDate(checkOut)
	res.Available = true

	if conflict, found := availability.FindConflict(bookings, req.RoomID, checkIn, checkOut, req.ExcludeID); found {
		res.Available = false
		res.Conflict = &dto.BookingResponse{}
		res.Conflict.FromModel(conflict)
	}

	return res, nil
}

func parseStay(req dto.BookingRequest) (checkIn, checkOut time.Time, err error) {
	return parseDates(req.CheckInDate, req.CheckOutDate)
}

func parseDates(checkInValue, checkOutValue string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = stay.ParseDate(checkInValue)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(err) // nolint:wrapcheck
	}

	checkOut, err = stay.ParseDate(checkOutValue)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !stay.Valid(checkIn, checkOut) {
		return checkIn, checkOut, errInvalidStay
	}

	return checkIn, checkOut, nil
}

// roomStayFilter selects the room's bookings that have not checked out before from.
func roomStayFilter(roomID int, from time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomID, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: roomID},
			gDto.Filter{ArgName: "stay_from", Field: model.FieldCheckOutDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Value: from},
		},
	}
}

func newestFirst() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}
}

func isDuplicateID(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation && pqErr.Constraint == primaryKeyIndex
}
