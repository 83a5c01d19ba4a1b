package lounge

import (
	"net/http"

	"loungepass/infras/otel"
	"loungepass/internal/domains/lounge/model"
	"loungepass/internal/domains/lounge/model/dto"
	"loungepass/internal/domains/lounge/service"
	"loungepass/shared/constant"
	gDto "loungepass/shared/dto"
	"loungepass/shared/validator"
	"loungepass/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lounge
	otel    otel.Otel
}

func New(service service.Lounge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/lounges", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLounge)
		routerGroup.Get("/", handler.GetLounges)
		routerGroup.Get("/{id}", handler.GetLoungeByID)
		routerGroup.Patch("/{id}", handler.UpdateLounge)
		routerGroup.Delete("/{id}", handler.DeleteLounge)
		routerGroup.Post("/{id}/images", handler.UploadImage)
		routerGroup.Delete("/{id}/images", handler.DeleteImage)
	})
}

// CreateLounge handles the creation of a new lounge.
// @Summary Create a new lounge
// @Description Create a new lounge in an airport catalog.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param request body dto.CreateLoungeRequest true "Lounge details"
// @Success 201 {object} response.Message "Lounge created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lounges [post]
func (handler *Handler) CreateLounge(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLounge")
	defer scope.End()

	var req dto.CreateLoungeRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create lounge")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Lounge created successfully")

	response.WithMessage(writer, http.StatusCreated, "Lounge created successfully")
}

// GetLounges retrieves lounges, optionally narrowed to an airport.
// @Summary Get all lounges
// @Description Retrieve lounges with optional airport and terminal filters.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param airport_id query string false "Filter by airport"
// @Param terminal query string false "Filter by terminal"
// @Success 200 {object} response.Data[dto.GetLoungesResponse] "List of lounges"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/lounges [get]
func (handler *Handler) GetLounges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLounges")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{}

	if airportID := r.URL.Query().Get(model.FieldAirportID); airportID != "" {
		filterGroup = dto.ListFilter(airportID, r.URL.Query().Get(model.FieldTerminal))
	}

	lounges, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lounges")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lounges retrieved successfully")

	response.WithJSON(w, http.StatusOK, lounges)
}

// GetLoungeByID retrieves a lounge by its ID.
// @Summary Get a lounge by ID
// @Description Retrieve a lounge by its unique identifier.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param id path string true "Lounge ID"
// @Success 200 {object} response.Data[dto.LoungeResponse] "Lounge details"
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/lounges/{id} [get]
func (handler *Handler) GetLoungeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLoungeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	lounge, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lounge by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lounge retrieved successfully")

	response.WithJSON(w, http.StatusOK, lounge)
}

// UpdateLounge updates an existing lounge by its ID.
// @Summary Update a lounge by ID
// @Description Update the details of an existing lounge.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param id path string true "Lounge ID"
// @Param request body dto.UpdateLoungeRequest true "Fields to update"
// @Success 200 {object} response.Message "Lounge updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lounges/{id} [patch]
func (handler *Handler) UpdateLounge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateLounge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateLoungeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update lounge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lounge updated successfully")

	response.WithMessage(w, http.StatusOK, "Lounge updated successfully")
}

// DeleteLounge deletes a lounge by its ID.
// @Summary Delete a lounge by ID
// @Description Delete a lounge using its unique identifier.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param id path string true "Lounge ID"
// @Success 200 {object} response.Message "Lounge deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lounges/{id} [delete]
func (handler *Handler) DeleteLounge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLounge")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete lounge")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lounge deleted successfully")

	response.WithMessage(w, http.StatusOK, "Lounge deleted successfully")
}

// UploadImage attaches a base64-encoded image to a lounge.
// @Summary Upload a lounge image
// @Description Upload a base64-encoded image and attach it to the lounge gallery.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param id path string true "Lounge ID"
// @Param request body dto.UploadImageRequest true "Base64 image payload"
// @Success 201 {object} response.Data[dto.UploadImageResponse] "Uploaded image"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lounges/{id}/images [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UploadImageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	uploaded, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload lounge image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lounge image uploaded successfully")

	response.WithJSON(w, http.StatusCreated, uploaded)
}

// DeleteImage detaches an image from a lounge.
// @Summary Delete a lounge image
// @Description Remove an image from the lounge gallery and delete the stored object.
// @Tags Lounge
// @Accept json
// @Produce json
// @Param id path string true "Lounge ID"
// @Param request body dto.DeleteImageRequest true "Image URL to remove"
// @Success 200 {object} response.Message "Lounge image deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/lounges/{id}/images [delete]
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.DeleteImageRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteImage(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete lounge image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lounge image deleted successfully")

	response.WithMessage(w, http.StatusOK, "Lounge image deleted successfully")
}
