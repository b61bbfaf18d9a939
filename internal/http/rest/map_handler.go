package rest

import (
	"context"
	"net/http"

	"github.com/connectmate/connectmate_api/internal/mapview"
	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/connectmate/connectmate_api/internal/search"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/tracing"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) MapRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(RequestTracing)

		// Query Params: ?lat=...&lng=... the device position, optional
		r.Method(http.MethodGet, "/", Handler(api.GetMapHandler))
		r.Method(http.MethodGet, "/search", Handler(api.SearchMapHandler))
		r.Method(http.MethodGet, "/selected", Handler(api.GetSelectedMarkerHandler))
		r.Method(http.MethodDelete, "/selected", Handler(api.ClearSelectedMarkerHandler))
		r.Method(http.MethodPost, "/markers/{activityID}/select", Handler(api.SelectMarkerHandler))
	})

	return mux
}

// queryLocation reads the device position the client sent, if any.
func queryLocation(r *http.Request) mapview.Geolocator {
	return mapview.GeolocatorFunc(func(context.Context) (model.Coordinate, error) {
		return util.ParseCoordinate(r.URL.Query().Get("lat"), r.URL.Query().Get("lng"))
	})
}

func (api *API) GetMapHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	view := api.Deps.Map.View(r.Context(), queryLocation(r))

	return &ServerResponse{
		Message:    "map fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       view,
	}
}

func (api *API) SearchMapHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	results := search.Filter(r.URL.Query().Get("q"), api.Deps.Map.Activities())

	return &ServerResponse{
		Message:    "map activities fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       results,
	}
}

func (api *API) SelectMarkerHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	activity, err := api.Deps.Map.Select(chi.URLParam(r, "activityID"))
	if err != nil {
		return respondWithError(err, "unable to select marker", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "marker selected",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       activity,
	}
}

func (api *API) GetSelectedMarkerHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	activity, ok := api.Deps.Map.Selected()
	if !ok {
		return respondWithError(model.ErrNotFound, "no marker selected", values.NotFound, &tc)
	}

	return &ServerResponse{
		Message:    "selected marker fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       activity,
	}
}

func (api *API) ClearSelectedMarkerHandler(_ http.ResponseWriter, _ *http.Request) *ServerResponse {
	api.Deps.Map.ClearSelection()

	return &ServerResponse{
		Message:    "marker selection cleared",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
