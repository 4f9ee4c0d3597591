// Package jwt issues and verifies the HS256 access and refresh tokens used by
// front desk accounts. The two token types are signed with separate secrets.
package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const bearerPrefix = "Bearer "

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{config: cfg}
}

// signing returns the secret and lifetime of tokenType.
func (s *Service) signing(tokenType TokenType) ([]byte, time.Duration, error) {
	cfg := s.config.JWT

	switch tokenType {
	case AccessToken:
		return []byte(cfg.AccessSecret), time.Duration(cfg.AccessExpireMin) * time.Minute, nil
	case RefreshToken:
		return []byte(cfg.RefreshSecret), time.Duration(cfg.RefreshExpireMin) * time.Minute, nil
	default:
		return nil, 0, fmt.Errorf("unknown token type: %s", tokenType)
	}
}

func (s *Service) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	now := timezone.Now()
	pair := &TokenPair{TokenType: strings.TrimSpace(bearerPrefix)}

	for _, target := range []struct {
		tokenType TokenType
		dest      *string
	}{
		{AccessToken, &pair.AccessToken},
		{RefreshToken, &pair.RefreshToken},
	} {
		token, err := s.sign(userID, email, role, target.tokenType, now)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s token: %w", target.tokenType, err)
		}

		*target.dest = token
	}

	_, accessTTL, _ := s.signing(AccessToken)
	pair.ExpiresIn = int64(accessTTL / time.Second)

	return pair, nil
}

func (s *Service) sign(userID, email, role string, tokenType TokenType, issuedAt time.Time) (string, error) {
	secret, ttl, err := s.signing(tokenType)
	if err != nil {
		return "", err
	}

	tokenID := uuid.NewString()

	claims := Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		TokenID: tokenID,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID,
			Issuer:    s.config.App.Name,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken maps every parse failure onto ErrExpiredToken or ErrInvalidToken.
// A well-signed token of the other type yields ErrInvalidClaim.
func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	secret, _, err := s.signing(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
}

func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must be a bearer token")
	}

	return token, nil
}
