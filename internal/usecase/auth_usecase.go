package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Dweirii/Learnify-Landing-Page/internal/config"
	"github.com/Dweirii/Learnify-Landing-Page/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// Auth authenticates the single administrative principal configured through
// the environment. There is no user table behind this; the subject id is
// derived deterministically from the admin email.
type Auth struct {
	admin   config.AdminConfig
	jwt     jwt.Service
	adminID uuid.UUID
}

func NewAuthUsecase(admin config.AdminConfig, jwtSvc jwt.Service) *Auth {
	return &Auth{
		admin:   admin,
		jwt:     jwtSvc,
		adminID: uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+strings.ToLower(admin.Email))),
	}
}

func (u *Auth) Login(_ context.Context, email, password string) (string, string, error) {
	if !strings.EqualFold(strings.TrimSpace(email), u.admin.Email) {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err := u.jwt.GenerateAccessToken(u.adminID, u.admin.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(u.adminID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) Refresh(_ context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrInvalidRefreshToken
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) || claims.SubjectID != u.adminID {
		return "", "", ErrInvalidRefreshToken
	}

	access, err := u.jwt.GenerateAccessToken(u.adminID, u.admin.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(u.adminID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
