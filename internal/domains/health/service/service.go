package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/health/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

const (
	checkDatabase = "database"
	checkTimeout  = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Health interface {
	Check(ctx context.Context) dto.HealthResponse
}

type serviceImpl struct {
	db   Pinger
	otel otel.Otel
}

func New(db Pinger, otel otel.Otel) Health {
	return &serviceImpl{
		db:   db,
		otel: otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context) dto.HealthResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()

	res := dto.HealthResponse{
		Status:    dto.StatusOK,
		CheckedAt: timezone.Now().Format(time.RFC3339),
		Checks:    map[string]dto.CheckResponse{},
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	check := dto.CheckResponse{Status: dto.StatusOK}

	if err := s.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database health check failed")

		check = dto.CheckResponse{Status: dto.StatusDown, Error: err.Error()}
		res.Status = dto.StatusDown
	}

	res.Checks[checkDatabase] = check

	return res
}
