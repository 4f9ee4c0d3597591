package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/health/model/dto"
	"frontdesk/internal/domains/health/service"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

func TestHealthService_Check(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		wantHealthy bool
		wantStatus  string
	}{
		{name: "database answers", wantHealthy: true, wantStatus: dto.StatusOK},
		{name: "database down", pingErr: errors.New("connection refused"), wantStatus: dto.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(pinger{err: tt.pingErr}, mocks.NewOtel())

			res := svc.Check(context.Background())

			assert.Equal(t, tt.wantHealthy, res.Healthy())
			assert.Equal(t, tt.wantStatus, res.Checks["database"].Status)
			assert.NotEmpty(t, res.CheckedAt)

			if tt.pingErr != nil {
				assert.Equal(t, tt.pingErr.Error(), res.Checks["database"].Error)
			}
		})
	}
}
