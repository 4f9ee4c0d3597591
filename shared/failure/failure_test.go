package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("check_out_date must be after check_in_date")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "check_out_date must be after check_in_date",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("confirmation token is invalid or expired"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "confirmation token is invalid or expired",
		},
		{name: "unauthorized", err: failure.Unauthorized("Invalid token"), wantCode: http.StatusUnauthorized, wantMsg: "Invalid token"},
		{name: "forbidden", err: failure.Forbidden("account is disabled"), wantCode: http.StatusForbidden, wantMsg: "account is disabled"},
		{name: "forbidden sentinel", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
		{name: "not found", err: failure.NotFound("room not found"), wantCode: http.StatusNotFound, wantMsg: "room not found"},
		{
			name:     "conflict",
			err:      failure.Conflict("room 102 is booked by SRH-20240510-ABC123"),
			wantCode: http.StatusConflict,
			wantMsg:  "room 102 is booked by SRH-20240510-ABC123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to create booking: %w", failure.Conflict("overlap"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("connection reset")))
}
