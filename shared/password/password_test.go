package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/shared/password"
)

func TestHash(t *testing.T) {
	hashed, err := password.Hash("front-desk-2024")
	require.NoError(t, err)

	assert.NotEqual(t, "front-desk-2024", hashed)
	assert.NoError(t, password.Verify("front-desk-2024", hashed))

	again, err := password.Hash("front-desk-2024")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again)

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmpty)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("front-desk-2024")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "front-desk-2024", hash: hashed},
		{name: "wrong password", plain: "front-desk-2025", hash: hashed, wantErr: password.ErrMismatch},
		{name: "empty password", plain: "", hash: hashed, wantErr: password.ErrMismatch},
		{name: "empty hash", plain: "front-desk-2024", hash: "", wantErr: password.ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	assert.Error(t, password.Verify("front-desk-2024", "not-a-bcrypt-hash"))
}
