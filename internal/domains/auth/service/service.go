package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	userModel "frontdesk/internal/domains/user/model"
	userDto "frontdesk/internal/domains/user/model/dto"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
)

const invalidCredentials = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	Me(ctx context.Context) (userDto.UserResponse, error)
	EnsureStaff(ctx context.Context, account dto.StaffAccount) (created bool, err error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func byEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, byEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	updatedFields := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, byEmail(user.Email)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
	}

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.current(ctx)
	if err != nil {
		return err
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, user.ID)

	if err = s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

// EnsureStaff creates the account unless a user with its email already exists.
func (s *serviceImpl) EnsureStaff(ctx context.Context, account dto.StaffAccount) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureStaff")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err := validator.ValidateStruct(&account); err != nil {
		return false, failure.BadRequest(err) // nolint:wrapcheck
	}

	exists, err := s.userRepo.Exist(ctx, byEmail(account.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return false, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return false, nil
	}

	hashedPassword, err := password.Hash(account.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, account.ToUserModel(hashedPassword, timezone.Now())); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return false, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("email", account.Email).Str("role", account.Role).Msg("staff account created")

	return true, nil
}

func (s *serviceImpl) current(ctx context.Context) (userModel.User, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return userModel.User{}, failure.Unauthorized("missing user in context") // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}
