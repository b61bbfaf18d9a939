package rest

import (
	"net/http"
	"strings"

	"github.com/connectmate/connectmate_api/internal/search"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/tracing"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) ActivityRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(RequestTracing)

		// Query Params: ?q=... free text, ?category=Sports,Study (optional)
		r.Method(http.MethodGet, "/", Handler(api.ListActivitiesHandler))
		r.Method(http.MethodGet, "/categories", Handler(api.ListCategoriesHandler))
		r.Method(http.MethodGet, "/{activityID}", Handler(api.GetActivityHandler))
	})

	return mux
}

func (api *API) ListActivitiesHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	activities, err := api.Deps.Catalog.List(r.Context())
	if err != nil {
		return respondWithError(err, "unable to load activities", values.Error, &tc)
	}

	query := r.URL.Query()
	activities = search.Filter(query.Get("q"), activities)
	if raw, ok := query["category"]; ok {
		activities = search.ByCategory(search.ParseCategories(strings.Join(raw, ",")), activities)
	}

	return &ServerResponse{
		Message:    "activities fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       activities,
	}
}

func (api *API) ListCategoriesHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	activities, err := api.Deps.Catalog.List(r.Context())
	if err != nil {
		return respondWithError(err, "unable to load activities", values.Error, &tc)
	}

	categories := append([]string{search.AllCategories}, search.Categories(activities)...)
	return &ServerResponse{
		Message:    "categories fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       categories,
	}
}

func (api *API) GetActivityHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	activity, err := api.Deps.Catalog.Get(r.Context(), chi.URLParam(r, "activityID"))
	if err != nil {
		return respondWithError(err, "unable to get activity", errorStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "activity fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       activity,
	}
}
