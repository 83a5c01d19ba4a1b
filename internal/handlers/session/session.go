package session

import (
	"net/http"

	"loungepass/infras/otel"
	"loungepass/internal/domains/session/service"
	"loungepass/shared/constant"
	"loungepass/transport/http/middleware"
	"loungepass/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Session
	session middleware.Session
	otel    otel.Otel
}

func New(service service.Session, session middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/session", func(routerGroup chi.Router) {
		routerGroup.Use(handler.session.Require)

		routerGroup.Get("/onboarding", handler.GetOnboarding)
		routerGroup.Post("/onboarding", handler.CompleteOnboarding)
	})
}

// GetOnboarding reports whether the session finished the intro carousel.
// @Summary Get onboarding status
// @Description Report whether the session has completed the onboarding carousel.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[dto.OnboardingResponse] "Onboarding status"
// @Failure 400 {object} response.Error
// @Router /v1/session/onboarding [get]
func (handler *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOnboarding")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	status, err := handler.service.GetOnboarding(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get onboarding status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

// CompleteOnboarding marks the intro carousel as completed.
// @Summary Complete onboarding
// @Description Mark the onboarding carousel as completed for the session.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[dto.OnboardingResponse] "Onboarding status"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/session/onboarding [post]
func (handler *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteOnboarding")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	status, err := handler.service.CompleteOnboarding(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete onboarding")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Onboarding completed successfully")

	response.WithJSON(w, http.StatusOK, status)
}
