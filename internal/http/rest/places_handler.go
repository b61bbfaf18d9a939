package rest

import (
	"net/http"

	"github.com/connectmate/connectmate_api/internal/mapview"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/tracing"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) PlacesRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(RequestTracing)

		// Query Params: ?query=...&lat=...&lng=... (lat/lng optional, Seoul City Hall otherwise)
		r.Method(http.MethodGet, "/search", Handler(api.SearchPlacesHandler))
	})
	return mux
}

func (api *API) SearchPlacesHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc, ok := r.Context().Value(values.ContextTracingKey).(tracing.Context)
	if !ok {
		return respondWithError(nil, "Missing tracing context", values.SystemErr, nil)
	}

	queryParams := r.URL.Query()
	query := queryParams.Get("query")
	if !util.NotBlank(query) {
		return respondWithError(nil, "Missing or empty 'query' query parameter", values.BadRequestBody, &tc)
	}

	center, _ := mapview.Locate(r.Context(), queryLocation(r))
	places, err := api.Deps.Kakao.SearchKeyword(r.Context(), query, &center)
	if err != nil {
		return respondWithError(err, "unable to search places", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "places fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       places,
	}
}
