package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingCreated.WithLabelValues("Deposit"))
	IncBookingCreated("Deposit")
	assert.InDelta(t, before+1, testutil.ToFloat64(bookingCreated.WithLabelValues("Deposit")), 0.0001)

	beforeRooms := testutil.ToFloat64(rolloverRooms)
	AddRolloverRooms(3)
	assert.InDelta(t, beforeRooms+3, testutil.ToFloat64(rolloverRooms), 0.0001)

	beforeConflict := testutil.ToFloat64(bookingConflict)
	IncBookingConflict()
	assert.InDelta(t, beforeConflict+1, testutil.ToFloat64(bookingConflict), 0.0001)
}
