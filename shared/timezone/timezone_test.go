package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "empty falls back to utc", zone: "", want: "UTC"},
		{name: "unknown falls back to utc", zone: "Mars/Olympus", want: "UTC"},
		{name: "iana name", zone: "Asia/Jakarta", want: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.zone).String())
		})
	}
}

func TestFormatUsesHotelClock(t *testing.T) {
	instant := time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, instant.In(GetLocation()).Format(time.DateOnly), Format(instant, time.DateOnly))
	assert.Equal(t, GetLocation(), Now().Location())
	assert.True(t, ToAppTime(instant).Equal(instant))
}
