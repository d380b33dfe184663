package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/auth"
	"github.com/spec-kit/commerce-api/internal/domain"
	"github.com/spec-kit/commerce-api/internal/events"
	"github.com/spec-kit/commerce-api/internal/repository"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

// UserService is the dispatcher instantiation for user accounts.
type UserService = CrudService[dto.UserDTO, domain.User]

// NewUserService wires the generic dispatcher for the user entity. The
// plaintext password carried by the DTO is hashed before any write.
func NewUserService(repo repository.UserRepository, bcryptCost int, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return NewCrudService(CrudConfig[dto.UserDTO, domain.User]{
		Entity:   "user",
		Repo:     repo,
		ToEntity: dto.UserToEntity,
		ToDTO:    dto.UserFromEntity,
		Key:      func(u *domain.User) string { return u.UserID },
		Validate: validateUser,
		Prepare: func(_ context.Context, u *domain.User) error {
			hash, err := auth.HashSecret(u.PasswordHash, bcryptCost)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			return nil
		},
		Events: dispatcher,
		Logger: logger,
	})
}

func validateUser(d dto.UserDTO) error {
	if d.UserName == "" {
		return apperrors.NewValidationError("user name is required")
	}
	if d.Password == "" {
		return apperrors.NewValidationError("password is required")
	}
	return nil
}
