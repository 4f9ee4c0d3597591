package dto

import (
	"time"

	"github.com/google/uuid"

	"frontdesk/infras/jwt"
	userModel "frontdesk/internal/domains/user/model"
	userDto "frontdesk/internal/domains/user/model/dto"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
)

// StaffAccount describes the account cmd/provision creates for the front desk.
type StaffAccount struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=manager staff"`
	FullName string
}

func (a *StaffAccount) ToUserModel(hashedPassword string, now time.Time) userModel.User {
	user := userModel.User{
		ID:       uuid.NewString(),
		Email:    a.Email,
		Password: hashedPassword,
		Role:     a.Role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}

	if a.FullName != "" {
		user.FullName = &a.FullName
	}

	return user
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	TokenType    string               `json:"token_type"`
	ExpiresIn    int64                `json:"expires_in"`
	User         userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
