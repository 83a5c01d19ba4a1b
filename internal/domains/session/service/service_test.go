package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"loungepass/config"
	otelMocks "loungepass/infras/otel/mocks"
	"loungepass/internal/domains/session/service"
	cacheMocks "loungepass/shared/cache/mocks"
	"loungepass/shared/failure"
)

const sessionID = "2f1a9f3e-5b7e-4c62-8a43-1d2a90e07d55"

func newSessionService(t *testing.T) (service.Session, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Session.OnboardingTTL = 2592000

	return service.New(cfg, mockCache, mockOtel), mockCache
}

func TestSessionService_GetOnboarding(t *testing.T) {
	svc, mockCache := newSessionService(t)

	tests := []struct {
		name          string
		setupMock     func()
		wantCompleted bool
	}{
		{
			name: "completed flag set",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "onboarding:"+sessionID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*string)) = "1"
						return nil
					})
			},
			wantCompleted: true,
		},
		{
			name: "absent flag means not completed",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			},
			wantCompleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetOnboarding(context.Background(), sessionID)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCompleted, result.Completed)
		})
	}
}

func TestSessionService_CompleteOnboarding(t *testing.T) {
	svc, mockCache := newSessionService(t)

	t.Run("saves the flag", func(t *testing.T) {
		mockCache.EXPECT().
			Save(gomock.Any(), "onboarding:"+sessionID, "1", 2592000).
			Return(nil)

		result, err := svc.CompleteOnboarding(context.Background(), sessionID)

		assert.NoError(t, err)
		assert.True(t, result.Completed)
	})

	t.Run("save error surfaces as persistence failure", func(t *testing.T) {
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		_, err := svc.CompleteOnboarding(context.Background(), sessionID)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}
