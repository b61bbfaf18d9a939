package rest

import (
	"net/http"

	"github.com/connectmate/connectmate_api/internal/fixtures"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/go-chi/chi/v5"
)

func (api *API) SettingsRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(RequestTracing)

		r.Method(http.MethodGet, "/", Handler(api.GetSettingsHandler))
		r.Method(http.MethodGet, "/profile", Handler(api.GetProfileHandler))
	})

	return mux
}

func (api *API) GetSettingsHandler(_ http.ResponseWriter, _ *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "settings fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       fixtures.Settings(),
	}
}

func (api *API) GetProfileHandler(_ http.ResponseWriter, _ *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "profile fetched",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       fixtures.Profile(),
	}
}
