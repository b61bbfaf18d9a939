package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/connectmate/connectmate_api/config"
	deps "github.com/connectmate/connectmate_api/internal/debs"
	"github.com/connectmate/connectmate_api/util"
	"github.com/connectmate/connectmate_api/util/cache"
	"github.com/connectmate/connectmate_api/util/values"
	"github.com/go-chi/chi/v5"
)

const (
	defaultIdleTimeout  = time.Minute
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	respByte, err := json.Marshal(resp)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Deps   *deps.Dependencies
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.setUpServerHandler(),
	}
	return api.Server.ListenAndServe()
}

func (api *API) setUpServerHandler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestLogger)
	mux.Use(Recoverer)

	mux.Method(http.MethodGet, "/health", Handler(api.HealthHandler))

	mux.Mount("/activities", api.ActivityRoutes())
	mux.Mount("/map", api.MapRoutes())
	mux.Mount("/chat", api.ChatRoutes())
	mux.Mount("/settings", api.SettingsRoutes())
	mux.Mount("/places", api.PlacesRoutes())

	return mux
}

type healthStatus struct {
	Map        string       `json:"map"`
	MapError   string       `json:"map_error,omitempty"`
	Catalog    string       `json:"catalog"`
	Postgres   string       `json:"postgres,omitempty"`
	Cache      string       `json:"cache,omitempty"`
	CacheStats *cache.Stats `json:"cache_stats,omitempty"`
	Broker     string       `json:"broker,omitempty"`
}

func (api *API) HealthHandler(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	health := healthStatus{
		Map:     string(api.Deps.Map.State()),
		Catalog: "fixtures",
	}
	if err := api.Deps.Map.LoadError(); err != nil {
		health.MapError = err.Error()
	}
	if api.Deps.DB != nil {
		health.Catalog = "postgres"
		health.Postgres = "ok"
		if err := api.Deps.DB.Pool().Ping(r.Context()); err != nil {
			health.Postgres = err.Error()
		}
	}
	if api.Deps.Cache != nil {
		health.Cache = "redis"
		if err := api.Deps.Cache.Ping(r.Context()); err != nil {
			health.Cache = err.Error()
		}
		stats := api.Deps.Cache.Stats()
		health.CacheStats = &stats
	}
	if api.Deps.Broker != nil {
		health.Broker = "nats"
	}

	return &ServerResponse{
		Message:    "ok",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       health,
	}
}

func (api *API) Shutdown(ctx context.Context) error {
	if api.Server == nil {
		return nil
	}
	return api.Server.Shutdown(ctx)
}
