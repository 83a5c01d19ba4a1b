package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"loungepass/config"
	"loungepass/infras/otel"
	bookingService "loungepass/internal/domains/booking/service"
	draftService "loungepass/internal/domains/draft/service"
	"loungepass/internal/domains/flow/model"
	"loungepass/internal/domains/flow/model/dto"
	loungeService "loungepass/internal/domains/lounge/service"
	"loungepass/shared"
	"loungepass/shared/cache"
	"loungepass/shared/constant"
	"loungepass/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheNav = "nav"
)

// Navigator owns the background/overlay split for a session. Overlay
// routes never replace the stored background, so closing an overlay
// always lands the client back where it was.
type Navigator interface {
	Resolve(ctx context.Context, sessionID string, req dto.ResolveRequest) (dto.NavigationResponse, error)
	CloseOverlay(ctx context.Context, sessionID string) (dto.NavigationResponse, error)
	Current(ctx context.Context, sessionID string) (dto.NavigationResponse, error)
}

type serviceImpl struct {
	lounges  loungeService.Lounge
	drafts   draftService.Draft
	bookings bookingService.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(lounges loungeService.Lounge, drafts draftService.Draft, bookings bookingService.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Navigator {
	return &serviceImpl{
		lounges:  lounges,
		drafts:   drafts,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, sessionID string, req dto.ResolveRequest) (res dto.NavigationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveRoute")
	defer scope.End()
	defer scope.TraceIfError(err)

	route, err := model.ParseRoute(req.Path)
	if err != nil {
		return res, failure.Validation("unrecognized path: " + req.Path) // nolint:wrapcheck
	}

	if route.Kind == model.RouteConfirmation {
		route = s.resolveConfirmation(ctx, sessionID, route)
	}

	if !route.IsOverlay() {
		if err = s.saveBackground(ctx, sessionID, route); err != nil {
			return res, err
		}

		res.FromRoutes(route, model.OverlayNone, route)

		return res, nil
	}

	background, found := s.storedBackground(ctx, sessionID)
	if !found {
		background, err = s.fallbackBackground(ctx, sessionID, route)
		if err != nil {
			return res, err
		}

		if err = s.saveBackground(ctx, sessionID, background); err != nil {
			return res, err
		}
	}

	res.FromRoutes(background, route.Overlay(), route)

	return res, nil
}

func (s *serviceImpl) CloseOverlay(ctx context.Context, sessionID string) (res dto.NavigationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CloseOverlay")
	defer scope.End()
	defer scope.TraceIfError(err)

	background, found := s.storedBackground(ctx, sessionID)
	if !found {
		background = model.Route{Kind: model.RouteHome}
	}

	res.FromRoutes(background, model.OverlayNone, background)

	return res, nil
}

func (s *serviceImpl) Current(ctx context.Context, sessionID string) (res dto.NavigationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentRoute")
	defer scope.End()
	defer scope.TraceIfError(err)

	background, found := s.storedBackground(ctx, sessionID)
	if !found {
		background = model.Route{Kind: model.RouteHome}
	}

	res.FromRoutes(background, model.OverlayNone, background)

	return res, nil
}

// resolveConfirmation fills a missing reference from the session's active
// booking. Without a reference or an active booking the confirmation screen
// has nothing to show, so the client is sent back to airport selection.
func (s *serviceImpl) resolveConfirmation(ctx context.Context, sessionID string, route model.Route) model.Route {
	if route.Reference != "" {
		return route
	}

	active, err := s.bookings.GetActive(ctx, sessionID)
	if err != nil {
		return model.Route{Kind: model.RouteAirportSelect}
	}

	route.Reference = active.Reference

	return route
}

// fallbackBackground synthesizes a background for a deep-linked overlay.
// A booking overlay backs onto the lounge list of the lounge's airport;
// a checkout overlay backs onto the draft's airport when one exists.
func (s *serviceImpl) fallbackBackground(ctx context.Context, sessionID string, route model.Route) (model.Route, error) {
	switch route.Kind {
	case model.RouteBookingOverlay:
		lounge, err := s.lounges.GetModel(ctx, route.LoungeID)
		if err != nil {
			return model.Route{}, err
		}

		return model.Route{Kind: model.RouteLoungeList, AirportID: lounge.AirportID}, nil
	case model.RouteCheckoutOverlay:
		draft, err := s.drafts.GetModel(ctx, sessionID)
		if err != nil {
			return model.Route{Kind: model.RouteAirportSelect}, nil
		}

		return model.Route{Kind: model.RouteLoungeList, AirportID: draft.AirportID}, nil
	}

	return model.Route{Kind: model.RouteAirportSelect}, nil
}

func (s *serviceImpl) storedBackground(ctx context.Context, sessionID string) (model.Route, bool) {
	var route model.Route

	err := s.cache.Get(ctx, shared.BuildCacheKey(cacheNav, sessionID), &route)
	if err != nil || route.Kind == "" {
		return model.Route{}, false
	}

	return route, true
}

func (s *serviceImpl) saveBackground(ctx context.Context, sessionID string, route model.Route) error {
	key := shared.BuildCacheKey(cacheNav, sessionID)

	if err := s.cache.Save(ctx, key, route, s.cfg.Session.NavTTL); err != nil {
		log.Error().Err(err).Msg("failed to save navigation state")

		return failure.PersistenceFailure(err) // nolint:wrapcheck
	}

	return nil
}
