package types

import (
	"net/http"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type APIOutline struct {
	Routes []RouteOutline `json:"routes"`
}

type RouteOutline struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

func NewOutline() *APIOutline {
	return &APIOutline{
		Routes: make([]RouteOutline, 0),
	}
}

// RegisterRoute adds the route to router, matching only method, and records it.
func (o *APIOutline) RegisterRoute(router *mux.Router, method string, path string, h http.Handler) {
	o.Routes = append(o.Routes, RouteOutline{
		Method: method,
		Path:   path,
	})
	router.Handle(path, h).Methods(method)
}

func (o *APIOutline) RegisterGetRoute(router *mux.Router, path string, f func(http.ResponseWriter, *http.Request)) {
	o.RegisterRoute(router, http.MethodGet, path, http.HandlerFunc(f))
}

func (o *APIOutline) RegisterPostRoute(router *mux.Router, path string, f func(http.ResponseWriter, *http.Request)) {
	o.RegisterRoute(router, http.MethodPost, path, http.HandlerFunc(f))
}

func (o *APIOutline) OutlineHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(o.Routes)
		if err != nil {
			log.Error().Err(err).Msg("failed to write outline")
			return
		}
	}
}
