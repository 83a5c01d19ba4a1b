package airport

import (
	"net/http"

	"loungepass/infras/otel"
	"loungepass/internal/domains/airport/model/dto"
	"loungepass/internal/domains/airport/service"
	"loungepass/shared/constant"
	gDto "loungepass/shared/dto"
	"loungepass/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Airport
	otel    otel.Otel
}

func New(service service.Airport, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/airports", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAirports)
		routerGroup.Get("/{id}", handler.GetAirportByID)
	})
}

// GetAirports retrieves the airport catalog.
// @Summary Get all airports
// @Description Retrieve airports with optional free-text search over name, code and city.
// @Tags Airport
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search by name, code or city"
// @Success 200 {object} response.Data[dto.GetAirportsResponse] "List of airports"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/airports [get]
func (handler *Handler) GetAirports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAirports")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query().Get(constant.RequestParamQuery)

	airports, err := handler.service.GetAll(ctx, queryParams, dto.SearchFilter(query))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get airports")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Airports retrieved successfully")

	response.WithJSON(w, http.StatusOK, airports)
}

// GetAirportByID retrieves an airport by its ID.
// @Summary Get an airport by ID
// @Description Retrieve an airport by its unique identifier.
// @Tags Airport
// @Accept json
// @Produce json
// @Param id path string true "Airport ID"
// @Success 200 {object} response.Data[dto.AirportResponse] "Airport details"
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/airports/{id} [get]
func (handler *Handler) GetAirportByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAirportByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	airport, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get airport by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Airport retrieved successfully")

	response.WithJSON(w, http.StatusOK, airport)
}
