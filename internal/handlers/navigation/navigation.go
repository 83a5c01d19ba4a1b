package navigation

import (
	"net/http"

	"loungepass/infras/otel"
	"loungepass/internal/domains/flow/model/dto"
	"loungepass/internal/domains/flow/service"
	"loungepass/shared/constant"
	"loungepass/shared/validator"
	"loungepass/transport/http/middleware"
	"loungepass/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Navigator
	session middleware.Session
	otel    otel.Otel
}

func New(service service.Navigator, session middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/navigation", func(routerGroup chi.Router) {
		routerGroup.Use(handler.session.Require)

		routerGroup.Get("/", handler.GetNavigation)
		routerGroup.Post("/resolve", handler.Resolve)
		routerGroup.Post("/close", handler.CloseOverlay)
	})
}

// GetNavigation returns the session's current navigation state.
// @Summary Get navigation state
// @Description Retrieve the current background route for the session.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[dto.NavigationResponse] "Navigation state"
// @Failure 400 {object} response.Error
// @Router /v1/navigation [get]
func (handler *Handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNavigation")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	nav, err := handler.service.Current(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get navigation state")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, nav)
}

// Resolve maps a client path onto background and overlay routes.
// @Summary Resolve a client path
// @Description Resolve a path into its background route and overlay, synthesizing a background for deep links.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param request body dto.ResolveRequest true "Client path"
// @Success 200 {object} response.Data[dto.NavigationResponse] "Resolved navigation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/navigation/resolve [post]
func (handler *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Resolve")
	defer scope.End()

	var req dto.ResolveRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	nav, err := handler.service.Resolve(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve route")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Route resolved successfully")

	response.WithJSON(w, http.StatusOK, nav)
}

// CloseOverlay closes the open overlay and restores the background.
// @Summary Close the open overlay
// @Description Close the current overlay and return the stored background route.
// @Tags Navigation
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[dto.NavigationResponse] "Restored background"
// @Failure 400 {object} response.Error
// @Router /v1/navigation/close [post]
func (handler *Handler) CloseOverlay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseOverlay")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	nav, err := handler.service.CloseOverlay(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to close overlay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, nav)
}
