package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/shared/constant"
)

func newJWT(accessMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newJWT(15)

	pair, err := svc.GenerateTokenPair("user-1", "desk@sunriver.example", constant.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, constant.RoleStaff, claims.Role)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, refreshed.AccessToken)
}

func TestJWT_Expired(t *testing.T) {
	svc := newJWT(-1)

	pair, err := svc.GenerateTokenPair("user-1", "desk@sunriver.example", constant.RoleStaff)
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestJWT_WrongType(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "shared"
	cfg.JWT.RefreshSecret = "shared"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 5

	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("user-1", "desk@sunriver.example", constant.RoleManager)
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)

	_, err = svc.ValidateToken("not.a.token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def", want: "abc.def"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty bearer", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
