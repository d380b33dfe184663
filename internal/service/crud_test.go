package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/domain"
	"github.com/spec-kit/commerce-api/internal/events"
	"github.com/spec-kit/commerce-api/internal/service"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

type fakeCustomerRepo struct {
	insertErr error
	updateErr error
	deleteErr error
	getResult *domain.Customer
	getErr    error
	all       []domain.Customer
	allErr    error

	insertCalls int
	deleteCalls int
}

func (f *fakeCustomerRepo) Insert(context.Context, *domain.Customer) error {
	f.insertCalls++
	return f.insertErr
}

func (f *fakeCustomerRepo) Update(context.Context, *domain.Customer) error { return f.updateErr }

func (f *fakeCustomerRepo) Delete(context.Context, string) error {
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeCustomerRepo) Get(context.Context, string) (*domain.Customer, error) {
	return f.getResult, f.getErr
}

func (f *fakeCustomerRepo) GetAll(context.Context) ([]domain.Customer, error) {
	return f.all, f.allErr
}

func validDTO() dto.CustomerDTO {
	return dto.CustomerDTO{CustomerID: "CUST-1", CompanyName: "Acme Traders"}
}

func newService(repo *fakeCustomerRepo, dispatcher events.Dispatcher) *service.CustomerService {
	return service.NewCustomerService(repo, dispatcher, zap.NewNop())
}

func TestInsertSuccessPublishesEvent(t *testing.T) {
	repo := &fakeCustomerRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	var published []events.Event
	dispatcher.Subscribe(events.EventEntityInserted, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	resp, err := newService(repo, dispatcher).Insert(context.Background(), validDTO())
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess)
	assert.True(t, resp.Data)
	assert.Equal(t, "customer inserted", resp.Message)
	require.Len(t, published, 1)
	assert.Equal(t, "customer", published[0].Entity)
	assert.Equal(t, "CUST-1", published[0].EntityKey)
}

func TestInsertValidationFailureSkipsStore(t *testing.T) {
	tests := []struct {
		name    string
		input   dto.CustomerDTO
		wantMsg string
	}{
		{"missing id", dto.CustomerDTO{CompanyName: "Acme"}, "customer id is required"},
		{"missing company", dto.CustomerDTO{CustomerID: "CUST-1"}, "company name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCustomerRepo{}
			resp, err := newService(repo, nil).Insert(context.Background(), tt.input)
			require.NoError(t, err)

			assert.False(t, resp.IsSuccess)
			assert.False(t, resp.Data)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Zero(t, repo.insertCalls)
		})
	}
}

func TestInsertDuplicateKeyIsBusinessFailure(t *testing.T) {
	repo := &fakeCustomerRepo{insertErr: &pgconn.PgError{Code: "23505"}}

	resp, err := newService(repo, nil).Insert(context.Background(), validDTO())
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "customer already exists", resp.Message)
}

func TestInsertStoreFaultPropagates(t *testing.T) {
	repo := &fakeCustomerRepo{insertErr: errors.New("dial tcp: refused")}

	resp, err := newService(repo, nil).Insert(context.Background(), validDTO())
	require.Error(t, err)

	assert.False(t, resp.IsSuccess)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}

func TestUpdateNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{updateErr: pgx.ErrNoRows}

	resp, err := newService(repo, nil).Update(context.Background(), validDTO())
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess)
	assert.False(t, resp.Data)
	assert.Equal(t, "customer not found", resp.Message)
}

func TestDeleteRequiresKey(t *testing.T) {
	repo := &fakeCustomerRepo{}

	resp, err := newService(repo, nil).Delete(context.Background(), "")
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "customer id is required", resp.Message)
	assert.Zero(t, repo.deleteCalls)
}

func TestDeleteNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{deleteErr: pgx.ErrNoRows}

	resp, err := newService(repo, nil).Delete(context.Background(), "CUST-404")
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "customer not found", resp.Message)
}

func TestGetNotFoundHasZeroPayload(t *testing.T) {
	repo := &fakeCustomerRepo{getErr: pgx.ErrNoRows}

	resp, err := newService(repo, nil).Get(context.Background(), "cust-42")
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "customer not found", resp.Message)
	assert.Equal(t, dto.CustomerDTO{}, resp.Data)
}

func TestGetSuccess(t *testing.T) {
	repo := &fakeCustomerRepo{getResult: &domain.Customer{CustomerID: "CUST-1", CompanyName: "Acme Traders"}}

	resp, err := newService(repo, nil).Get(context.Background(), "CUST-1")
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess)
	assert.Equal(t, "CUST-1", resp.Data.CustomerID)
	assert.Equal(t, "Acme Traders", resp.Data.CompanyName)
}

func TestGetAllEmptyStoreIsSuccess(t *testing.T) {
	repo := &fakeCustomerRepo{all: []domain.Customer{}}

	resp, err := newService(repo, nil).GetAll(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestGetAllStoreFault(t *testing.T) {
	repo := &fakeCustomerRepo{allErr: errors.New("connection reset")}

	resp, err := newService(repo, nil).GetAll(context.Background())
	require.Error(t, err)

	assert.False(t, resp.IsSuccess)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}
