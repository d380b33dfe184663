package service

import (
	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/domain"
	"github.com/spec-kit/commerce-api/internal/events"
	"github.com/spec-kit/commerce-api/internal/repository"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

// CustomerService is the dispatcher instantiation for customers.
type CustomerService = CrudService[dto.CustomerDTO, domain.Customer]

// NewCustomerService wires the generic dispatcher for the customer entity.
func NewCustomerService(repo repository.Crud[domain.Customer], dispatcher events.Dispatcher, logger *zap.Logger) *CustomerService {
	return NewCrudService(CrudConfig[dto.CustomerDTO, domain.Customer]{
		Entity:   "customer",
		Repo:     repo,
		ToEntity: dto.CustomerToEntity,
		ToDTO:    dto.CustomerFromEntity,
		Key:      func(c *domain.Customer) string { return c.CustomerID },
		Validate: validateCustomer,
		Events:   dispatcher,
		Logger:   logger,
	})
}

func validateCustomer(d dto.CustomerDTO) error {
	if d.CustomerID == "" {
		return apperrors.NewValidationError("customer id is required")
	}
	if d.CompanyName == "" {
		return apperrors.NewValidationError("company name is required")
	}
	return nil
}
