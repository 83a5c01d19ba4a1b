package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"loungepass/config"
	"loungepass/infras/otel"
	"loungepass/internal/domains/session/model/dto"
	"loungepass/shared"
	"loungepass/shared/cache"
	"loungepass/shared/constant"
	"loungepass/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheOnboarding = "onboarding"
)

// Session tracks per-session flags that outlive the booking flow. Right
// now that is just the onboarding carousel.
type Session interface {
	GetOnboarding(ctx context.Context, sessionID string) (dto.OnboardingResponse, error)
	CompleteOnboarding(ctx context.Context, sessionID string) (dto.OnboardingResponse, error)
}

type serviceImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Session {
	return &serviceImpl{
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetOnboarding(ctx context.Context, sessionID string) (res dto.OnboardingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOnboarding")
	defer scope.End()
	defer scope.TraceIfError(nil)

	var flag string

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheOnboarding, sessionID), &flag)
	if err != nil {
		// Absent flag just means the carousel has not been completed.
		return dto.OnboardingResponse{Completed: false}, nil
	}

	return dto.OnboardingResponse{Completed: flag == "1"}, nil
}

func (s *serviceImpl) CompleteOnboarding(ctx context.Context, sessionID string) (res dto.OnboardingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteOnboarding")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Save(ctx, shared.BuildCacheKey(cacheOnboarding, sessionID), "1", s.cfg.Session.OnboardingTTL)
	if err != nil {
		log.Error().Err(err).Msg("failed to save onboarding flag")

		return res, failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	return dto.OnboardingResponse{Completed: true}, nil
}
