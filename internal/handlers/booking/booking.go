package booking

import (
	"net/http"

	"loungepass/infras/otel"
	bookingDto "loungepass/internal/domains/booking/model/dto"
	bookingService "loungepass/internal/domains/booking/service"
	draftDto "loungepass/internal/domains/draft/model/dto"
	draftService "loungepass/internal/domains/draft/service"
	"loungepass/shared/constant"
	"loungepass/shared/failure"
	"loungepass/shared/validator"
	"loungepass/transport/http/middleware"
	"loungepass/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	drafts   draftService.Draft
	bookings bookingService.Booking
	session  middleware.Session
	otel     otel.Otel
}

func New(drafts draftService.Draft, bookings bookingService.Booking, session middleware.Session, otel otel.Otel) Handler {
	return Handler{
		drafts:   drafts,
		bookings: bookings,
		session:  session,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Use(handler.session.Require)

		routerGroup.Post("/draft", handler.StartDraft)
		routerGroup.Get("/draft", handler.GetDraft)
		routerGroup.Delete("/draft", handler.ClearDraft)
		routerGroup.Patch("/draft/guests", handler.UpdateDraftGuests)
		routerGroup.Patch("/draft/schedule", handler.UpdateDraftSchedule)
		routerGroup.Post("/draft/advance", handler.AdvanceDraft)
		routerGroup.Post("/draft/back", handler.BackDraft)
		routerGroup.Post("/checkout", handler.Checkout)
		routerGroup.Get("/active", handler.GetActiveBooking)
		routerGroup.Delete("/active", handler.ClearActiveBooking)
	})

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/{reference}", handler.GetBookingByReference)
	})

	router.Get("/passes/verify", handler.VerifyPass)
}

// StartDraft begins a booking draft for the session.
// @Summary Start a booking draft
// @Description Start a new draft for the chosen lounge, replacing any draft the session already has.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param request body draftDto.StartDraftRequest true "Lounge to book"
// @Success 201 {object} response.Data[draftDto.DraftResponse] "Draft started"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking/draft [post]
func (handler *Handler) StartDraft(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartDraft")
	defer scope.End()

	var req draftDto.StartDraftRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.drafts.Start(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start draft")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Draft started successfully")

	response.WithJSON(writer, http.StatusCreated, draft)
}

// GetDraft returns the session's in-progress draft.
// @Summary Get the booking draft
// @Description Retrieve the in-progress draft for the session.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[draftDto.DraftResponse] "Draft details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/draft [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.drafts.Get(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// ClearDraft discards the session's draft.
// @Summary Discard the booking draft
// @Description Explicitly discard the in-progress draft for the session.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Message "Draft discarded successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking/draft [delete]
func (handler *Handler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.drafts.Clear(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft discarded successfully")

	response.WithMessage(w, http.StatusOK, "Draft discarded successfully")
}

// UpdateDraftGuests changes the guest count on the draft.
// @Summary Update draft guest count
// @Description Set the number of guests on the draft and recalculate the total.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param request body draftDto.UpdateGuestsRequest true "Guest count"
// @Success 200 {object} response.Data[draftDto.DraftResponse] "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/draft/guests [patch]
func (handler *Handler) UpdateDraftGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraftGuests")
	defer scope.End()

	var req draftDto.UpdateGuestsRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.drafts.UpdateGuests(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update draft guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// UpdateDraftSchedule sets the visit date and time on the draft.
// @Summary Update draft schedule
// @Description Set the visit date and arrival time, validated against lounge opening hours.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param request body draftDto.UpdateScheduleRequest true "Visit date and time"
// @Success 200 {object} response.Data[draftDto.DraftResponse] "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/draft/schedule [patch]
func (handler *Handler) UpdateDraftSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraftSchedule")
	defer scope.End()

	var req draftDto.UpdateScheduleRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.drafts.UpdateSchedule(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update draft schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// AdvanceDraft moves the draft to the next booking step.
// @Summary Advance the booking step
// @Description Move the draft one step forward in the booking flow.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[draftDto.DraftResponse] "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/draft/advance [post]
func (handler *Handler) AdvanceDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdvanceDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.drafts.Advance(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// BackDraft moves the draft to the previous booking step.
// @Summary Go back one booking step
// @Description Move the draft one step backward in the booking flow.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[draftDto.DraftResponse] "Updated draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/draft/back [post]
func (handler *Handler) BackDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BackDraft")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	draft, err := handler.drafts.Back(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move draft back")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}

// Checkout finalizes the draft into a confirmed booking.
// @Summary Finalize the booking
// @Description Turn the completed draft into a confirmed booking with a reference and entry pass.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param request body bookingDto.FinalizeRequest true "Customer details"
// @Success 201 {object} response.Data[bookingDto.BookingResponse] "Confirmed booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking/checkout [post]
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	var req bookingDto.FinalizeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	booking, err := handler.bookings.Finalize(ctx, sessionID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to finalize booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking finalized successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetActiveBooking returns the session's most recent confirmed booking.
// @Summary Get the active booking
// @Description Retrieve the confirmed booking currently held by the session.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Active booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/active [get]
func (handler *Handler) GetActiveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveBooking")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	booking, err := handler.bookings.GetActive(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// ClearActiveBooking dismisses the confirmation for the session.
// @Summary Clear the active booking
// @Description Dismiss the session's confirmation view. The booking row itself is kept.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} response.Message "Active booking cleared successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/booking/active [delete]
func (handler *Handler) ClearActiveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearActiveBooking")
	defer scope.End()

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	if err := handler.bookings.ClearActive(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear active booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active booking cleared successfully")

	response.WithMessage(w, http.StatusOK, "Active booking cleared successfully")
}

// GetBookingByReference retrieves a booking by its public reference.
// @Summary Get a booking by reference
// @Description Retrieve a confirmed booking by its public reference.
// @Tags Booking
// @Accept json
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/{reference} [get]
func (handler *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByReference")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	booking, err := handler.bookings.GetByReference(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by reference")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// VerifyPass verifies a scanned lounge entry pass.
// @Summary Verify an entry pass
// @Description Verify the signature of a scanned QR pass token and confirm the booking exists.
// @Tags Booking
// @Accept json
// @Produce json
// @Param token query string true "Pass token"
// @Success 200 {object} response.Data[bookingDto.VerifyPassResponse] "Pass verification result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/passes/verify [get]
func (handler *Handler) VerifyPass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPass")
	defer scope.End()

	token := r.URL.Query().Get(constant.RequestParamToken)
	if token == "" {
		err := failure.BadRequestFromString("token query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	result, err := handler.bookings.VerifyPass(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify pass")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}
