package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/livedirtree/treerelay/api/types"
	"github.com/livedirtree/treerelay/config"
	"github.com/livedirtree/treerelay/tree"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Persister receives every accepted snapshot for saving. Submit must return
// without waiting on the disk.
type Persister interface {
	Submit(data []byte)
}

type API struct {
	cfg     *config.Config
	srv     *http.Server
	handler http.Handler
}

func NewAPI(cfg *config.Config, state *tree.State, p Persister) *API {
	a := &API{cfg: cfg}
	a.handler = a.routes(state, p)
	a.srv = &http.Server{
		Handler:           a.handler,
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.APICfg.Port),
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return a
}

func (a *API) routes(state *tree.State, p Persister) http.Handler {
	r := mux.NewRouter()

	outline := types.NewOutline()

	// any OPTIONS request that rs/cors did not already answer as a preflight
	r.Methods(http.MethodOptions).HandlerFunc(PreflightHandler)

	outline.RegisterGetRoute(r, "/", PageHandler(a.cfg.APICfg.Port))
	outline.RegisterGetRoute(r, "/ping", PingHandler())
	outline.RegisterPostRoute(r, "/sync", SyncHandler(state, p, a.cfg.MaxBodyBytes))
	outline.RegisterGetRoute(r, "/tree", TreeHandler(state))
	outline.RegisterGetRoute(r, "/tree/text", TreeTextHandler(state))
	outline.RegisterGetRoute(r, "/status", StatusHandler(state, a.cfg.Freshness()))
	outline.RegisterGetRoute(r, "/api", outline.OutlineHandler())

	if a.cfg.APICfg.Metrics {
		outline.RegisterRoute(r, http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(NotFoundHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(corsMiddleware(loggingMiddleware(recoveryMiddleware(r))))
}

// Handler is the full middleware-wrapped router.
func (a *API) Handler() http.Handler {
	return a.handler
}

func (a *API) Addr() string {
	return a.srv.Addr
}

// Serve blocks until the server stops. A clean Shutdown returns nil.
func (a *API) Serve() error {
	defer log.Info().Msg("API module stopped")

	log.Info().Msg(fmt.Sprintf("treerelay API now listening on %s", a.srv.Addr))
	err := a.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (a *API) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}
