package util_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/spec-kit/commerce-api/pkg/util"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"validation", util.NewValidationError("bad input"), util.CodeValidationFailed, http.StatusBadRequest},
		{"not found", util.NewNotFound("customer"), util.CodeNotFound, http.StatusBadRequest},
		{"auth failed", util.NewAuthenticationFailed("invalid token"), util.CodeAuthenticationFailed, http.StatusUnauthorized},
		{"token expired", util.NewTokenExpired(), util.CodeTokenExpired, http.StatusUnauthorized},
		{"store unavailable", util.NewStoreUnavailable(errors.New("dial refused")), util.CodeStoreUnavailable, http.StatusServiceUnavailable},
		{"internal", util.NewInternalError(errors.New("boom")), util.CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domainErr := util.ToDomainError(tt.err)
			require.NotNil(t, domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
			assert.True(t, util.HasCode(tt.err, tt.wantCode))
		})
	}
}

func TestStoreUnavailableHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")
	err := util.NewStoreUnavailable(cause)

	domainErr := util.ToDomainError(err)
	assert.Equal(t, "storage temporarily unavailable", domainErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	err := errors.New("something odd")
	domainErr := util.ToDomainError(err)

	assert.Equal(t, util.CodeInternalError, domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestToDomainErrorUnwrapsWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", util.NewTokenExpired())

	domainErr := util.ToDomainError(wrapped)
	assert.Equal(t, util.CodeTokenExpired, domainErr.Code)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, util.ToDomainError(nil))
}
