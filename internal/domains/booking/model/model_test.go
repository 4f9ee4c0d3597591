package model_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/booking/model"
)

var idPattern = regexp.MustCompile(`^SRH-\d{8}-[0-9A-Z]{6}$`)

func TestGenerateID(t *testing.T) {
	createdAt := time.Date(2024, 5, 10, 22, 15, 0, 0, time.UTC)

	seen := map[string]struct{}{}
	for range 200 {
		id, err := model.GenerateID(createdAt)
		require.NoError(t, err)

		assert.Regexp(t, idPattern, id)
		assert.Equal(t, "SRH-20240510-", id[:13])

		seen[id] = struct{}{}
	}

	assert.Greater(t, len(seen), 190)
}

func TestNormalizeDeposit(t *testing.T) {
	tests := []struct {
		status   string
		deposit  float64
		expected float64
	}{
		{status: model.StatusUnpaid, deposit: 500, expected: 0},
		{status: model.StatusPaid, deposit: 500, expected: 0},
		{status: model.StatusDeposit, deposit: 500, expected: 500},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			booking := model.Booking{Status: tt.status, Deposit: tt.deposit}
			booking.NormalizeDeposit()

			assert.InDelta(t, tt.expected, booking.Deposit, 0)
		})
	}
}

func TestNights(t *testing.T) {
	booking := model.Booking{
		CheckInDate:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 3, booking.Nights())
}
