package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/receipt/model"
	"frontdesk/internal/domains/receipt/model/dto"
	"frontdesk/internal/domains/receipt/render"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"
)

const archiveDirectory = "receipts"

type Receipt interface {
	Build(ctx context.Context, req dto.ReceiptRequest) (dto.ReceiptResponse, error)
	Export(ctx context.Context, req dto.ReceiptRequest) (dto.ExportResult, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	s3          s3.S3
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, cfg *config.Config, s3 s3.S3, otel otel.Otel) Receipt {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		cfg:         cfg,
		s3:          s3,
		otel:        otel,
	}
}

func (s *serviceImpl) Build(ctx context.Context, req dto.ReceiptRequest) (res dto.ReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Build")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	receipt, err := s.receipt(ctx, req)
	if err != nil {
		return res, err
	}

	res.FromModel(receipt)

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ReceiptRequest) (res dto.ExportResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Archive && !s.s3.Enabled() {
		return res, failure.BadRequestFromString("receipt archive is not configured") // nolint:wrapcheck
	}

	receipt, err := s.receipt(ctx, req)
	if err != nil {
		return res, err
	}

	content, err := render.XLSX(receipt)
	if err != nil {
		log.Error().Err(err).Str("receipt", receipt.Number).Msg("failed to render receipt")

		return res, fmt.Errorf("failed to render receipt: %w", err)
	}

	res.FileName = render.FileName(receipt)

	if !req.Archive {
		res.Content = content

		return res, nil
	}

	directory := archiveDirectory + "/" + receipt.IssuedOn.Format(stay.CompactLayout)

	res.URL, err = s.s3.Upload(ctx, directory, res.FileName, constant.ContentTypeXLSX, content)
	if err != nil {
		return res, fmt.Errorf("failed to archive receipt: %w", err)
	}

	log.Info().Str("receipt", receipt.Number).Str("url", res.URL).Msg("receipt archived")

	return res, nil
}

// receipt loads the bookings in request order and assembles the receipt from them.
func (s *serviceImpl) receipt(ctx context.Context, req dto.ReceiptRequest) (model.Receipt, error) {
	ids := unique(req.BookingIDs)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldID, Table: bookingModel.TableName, Operator: gDto.FilterOperatorIn, Value: ids},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for receipt")

		return model.Receipt{}, fmt.Errorf("failed to get bookings for receipt: %w", err)
	}

	byID := make(map[string]bookingModel.Booking, len(bookings))
	for _, booking := range bookings {
		byID[booking.ID] = booking
	}

	ordered := make([]bookingModel.Booking, 0, len(ids))

	for _, id := range ids {
		booking, ok := byID[id]
		if !ok {
			return model.Receipt{}, failure.NotFound("booking " + id + " not found") // nolint:wrapcheck
		}

		ordered = append(ordered, booking)
	}

	language := req.Lang()

	return model.Build(ordered, s.hotel(language), language, stay.Date(timezone.Now())), nil
}

func (s *serviceImpl) hotel(language string) model.Hotel {
	hotel := s.cfg.Hotel

	if language == model.LanguageTH {
		return model.Hotel{Name: hotel.NameTh, Address: hotel.AddressTh, Phone: hotel.Phone, TaxID: hotel.TaxID}
	}

	return model.Hotel{Name: hotel.NameEn, Address: hotel.AddressEn, Phone: hotel.Phone, TaxID: hotel.TaxID}
}

func unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	res := make([]string, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}

		seen[id] = true
		res = append(res, id)
	}

	return res
}
