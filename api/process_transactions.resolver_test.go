package api

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"roboadvisor/internal/service"
	mock_service "roboadvisor/internal/service/mocks"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_processTransactions(t *testing.T) {
	userToken := func(t *testing.T, admin bool) string {
		t.Helper()
		return signTestToken(t, jwt.MapClaims{
			"sub":   uuid.New().String(),
			"exp":   time.Now().UTC().Add(time.Hour).Unix(),
			"admin": admin,
		})
	}

	t.Run("runs a pass and reports the outcome counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processorService := mock_service.NewMockTransactionProcessorService(ctrl)
		handler := ApiHandler{
			ProcessorService: processorService,
			JwtSecret:        testJwtSecret,
		}

		processorService.EXPECT().
			RunPass(gomock.Any()).
			Return(service.ProcessorPassResult{Succeeded: 2, Skipped: 1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/admin/transactions/process", nil)
		req.Header.Set("Authorization", "Bearer "+userToken(t, true))
		handler.InitializeRouterEngine().ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"succeeded":2,"failed":0,"skipped":1}`, w.Body.String())
	})

	t.Run("pass failure surfaces as 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processorService := mock_service.NewMockTransactionProcessorService(ctrl)
		handler := ApiHandler{
			ProcessorService: processorService,
			JwtSecret:        testJwtSecret,
		}

		processorService.EXPECT().
			RunPass(gomock.Any()).
			Return(service.ProcessorPassResult{}, errors.New("failed to list on-hold transactions"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/admin/transactions/process", nil)
		req.Header.Set("Authorization", "Bearer "+userToken(t, true))
		handler.InitializeRouterEngine().ServeHTTP(w, req)

		require.Equal(t, 500, w.Code)
	})

	t.Run("non-admin callers are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processorService := mock_service.NewMockTransactionProcessorService(ctrl)
		handler := ApiHandler{
			ProcessorService: processorService,
			JwtSecret:        testJwtSecret,
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/admin/transactions/process", nil)
		req.Header.Set("Authorization", "Bearer "+userToken(t, false))
		handler.InitializeRouterEngine().ServeHTTP(w, req)

		require.Equal(t, 403, w.Code)
	})
}
