package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/auth"
	"github.com/spec-kit/commerce-api/internal/domain"
	"github.com/spec-kit/commerce-api/internal/repository"
	"github.com/spec-kit/commerce-api/internal/response"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

// ErrBadCredentials is the uniform verification failure. An unknown username
// and a wrong secret are deliberately indistinguishable so callers cannot
// probe which accounts exist.
var ErrBadCredentials = errors.New("invalid username or password")

// CredentialService verifies username/secret pairs and exchanges them for
// access tokens. No session is created; the token is the whole state.
type CredentialService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewCredentialService builds the service.
func NewCredentialService(users repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *CredentialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialService{users: users, tokens: tokens, logger: logger}
}

// Verify checks the pair against stored records and returns the matching
// account. Unknown user and wrong secret both return ErrBadCredentials; an
// unreachable store is reported separately.
func (s *CredentialService) Verify(ctx context.Context, userName, secret string) (*domain.User, error) {
	if userName == "" || secret == "" {
		return nil, ErrBadCredentials
	}

	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBadCredentials
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if err := auth.CompareSecret(user.PasswordHash, secret); err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// Login verifies credentials and issues a signed access token. Bad
// credentials come back as a failure envelope; only store faults are
// returned as errors.
func (s *CredentialService) Login(ctx context.Context, req dto.LoginRequest) (response.Response[dto.AuthResponse], error) {
	user, err := s.Verify(ctx, req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			return response.Fail[dto.AuthResponse](ErrBadCredentials.Error()), nil
		}
		return response.Fail[dto.AuthResponse](""), err
	}

	token, expiresAt, err := s.tokens.Issue(user.UserID, user.UserName)
	if err != nil {
		return response.Fail[dto.AuthResponse](""), apperrors.NewInternalError(err)
	}

	s.logger.Info("user authenticated", zap.String("user_id", user.UserID))
	return response.Ok(dto.AuthResponse{
		UserID:    user.UserID,
		UserName:  user.UserName,
		Token:     token,
		ExpiresAt: expiresAt,
	}, "authenticated"), nil
}
