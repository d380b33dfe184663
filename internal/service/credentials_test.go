package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/commerce-api/internal/api/dto"
	"github.com/spec-kit/commerce-api/internal/auth"
	"github.com/spec-kit/commerce-api/internal/domain"
	"github.com/spec-kit/commerce-api/internal/service"
	apperrors "github.com/spec-kit/commerce-api/pkg/util"
)

type fakeUserRepo struct {
	fakeCrudUser
	byUserName map[string]*domain.User
	lookupErr  error
}

type fakeCrudUser struct{}

func (fakeCrudUser) Insert(context.Context, *domain.User) error { return nil }
func (fakeCrudUser) Update(context.Context, *domain.User) error { return nil }
func (fakeCrudUser) Delete(context.Context, string) error       { return nil }
func (fakeCrudUser) Get(context.Context, string) (*domain.User, error) {
	return nil, pgx.ErrNoRows
}
func (fakeCrudUser) GetAll(context.Context) ([]domain.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByUserName(_ context.Context, userName string) (*domain.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	user, ok := f.byUserName[userName]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func newCredentialFixture(t *testing.T, ttl time.Duration) (*service.CredentialService, *auth.TokenManager) {
	t.Helper()

	hash, err := auth.HashSecret("correct horse", 4)
	require.NoError(t, err)

	repo := &fakeUserRepo{byUserName: map[string]*domain.User{
		"alice": {UserID: "u-1", UserName: "alice", FirstName: "Alice", PasswordHash: hash},
	}}
	tokens := auth.NewTokenManager("test-secret", "commerce-api", "commerce-clients", ttl)
	return service.NewCredentialService(repo, tokens, zap.NewNop()), tokens
}

func TestVerifyUniformFailure(t *testing.T) {
	svc, _ := newCredentialFixture(t, time.Hour)

	tests := []struct {
		name     string
		userName string
		secret   string
	}{
		{"unknown user", "bob", "correct horse"},
		{"wrong secret", "alice", "wrong"},
		{"empty user", "", "correct horse"},
		{"empty secret", "alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tt.userName, tt.secret)
			assert.ErrorIs(t, err, service.ErrBadCredentials)
		})
	}
}

func TestVerifySuccess(t *testing.T) {
	svc, _ := newCredentialFixture(t, time.Hour)

	user, err := svc.Verify(context.Background(), "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, "alice", user.UserName)
}

func TestVerifyStoreUnavailableIsDistinct(t *testing.T) {
	repo := &fakeUserRepo{lookupErr: errors.New("dial tcp: refused")}
	tokens := auth.NewTokenManager("test-secret", "commerce-api", "commerce-clients", time.Hour)
	svc := service.NewCredentialService(repo, tokens, zap.NewNop())

	_, err := svc.Verify(context.Background(), "alice", "correct horse")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrBadCredentials)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}

func TestLoginBadCredentialsEnvelope(t *testing.T) {
	svc, _ := newCredentialFixture(t, time.Hour)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{UserName: "alice", Password: "wrong"})
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "invalid username or password", resp.Message)
	assert.Empty(t, resp.Data.Token)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	ttl := 30 * time.Minute
	svc, tokens := newCredentialFixture(t, ttl)

	before := time.Now()
	resp, err := svc.Login(context.Background(), dto.LoginRequest{UserName: "alice", Password: "correct horse"})
	require.NoError(t, err)

	require.True(t, resp.IsSuccess)
	assert.Equal(t, "u-1", resp.Data.UserID)
	assert.Equal(t, "alice", resp.Data.UserName)
	assert.WithinDuration(t, before.Add(ttl), resp.Data.ExpiresAt, 2*time.Second)

	identity, err := tokens.Verify(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.SubjectID)
	assert.Equal(t, "alice", identity.UserName)
}

func TestLoginStoreFaultPropagates(t *testing.T) {
	repo := &fakeUserRepo{lookupErr: errors.New("connection reset")}
	tokens := auth.NewTokenManager("test-secret", "commerce-api", "commerce-clients", time.Hour)
	svc := service.NewCredentialService(repo, tokens, zap.NewNop())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{UserName: "alice", Password: "x"})
	require.Error(t, err)
	assert.False(t, resp.IsSuccess)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}
