package api

import (
	"net/http"
	"time"

	"github.com/livedirtree/treerelay/api/types"
	"github.com/livedirtree/treerelay/config"
	"github.com/rs/zerolog/log"
)

const ServerName = "LiveDirectoryTree"

func PingHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		v := types.PingResponse{
			Status:    "ok",
			Server:    ServerName,
			Version:   config.Version(),
			Timestamp: time.Now().UnixMilli(),
		}

		writeJSON(w, http.StatusOK, v)
	}
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func PreflightHandler(w http.ResponseWriter, req *http.Request) {
	setCORSHeaders(w.Header())
	w.WriteHeader(http.StatusNoContent)
}

func NotFoundHandler(w http.ResponseWriter, req *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}
