package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/livedirtree/treerelay/api/types"
	"github.com/livedirtree/treerelay/tree"
	"github.com/rs/zerolog/log"
)

// SyncHandler replaces the current snapshot with the request body. The body
// is read and parsed in full before the state is touched, so a rejected
// request leaves the old snapshot in place.
func SyncHandler(state *tree.State, p Persister, maxBody int64) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				syncRejections.WithLabelValues("too_large").Inc()
				log.Warn().Int64("limit", maxBody).Msg("Rejected sync: body too large")
				writeError(w, http.StatusRequestEntityTooLarge, "Body too large")
				return
			}
			syncRejections.WithLabelValues("read").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		snap, err := tree.Parse(body)
		if err != nil {
			syncRejections.WithLabelValues("invalid_json").Inc()
			log.Warn().Err(err).Msg("Rejected sync: invalid json")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		at := state.Replace(snap)
		p.Submit(snap.Bytes())
		recordSync(snap, at)

		name, ok := snap.Name()
		if !ok {
			name = "Game"
		}
		log.Info().
			Str("game", name).
			Str("size", humanize.Bytes(uint64(len(snap.Bytes())))).
			Msg("Received sync")

		writeJSON(w, http.StatusOK, types.SyncResponse{Status: "ok", Received: true})
	}
}

func TreeHandler(state *tree.State) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write(state.Snapshot().Bytes())
		if err != nil {
			log.Error().Err(err).Msg("failed to write tree")
		}
	}
}

func TreeTextHandler(state *tree.State) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		text := tree.Text(state.Snapshot())

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, err := io.WriteString(w, text)
		if err != nil {
			log.Error().Err(err).Msg("failed to write tree text")
		}
	}
}

func StatusHandler(state *tree.State, freshness time.Duration) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		s := state.Status(freshness)

		var last int64
		if !s.LastUpdate.IsZero() {
			last = s.LastUpdate.UnixMilli()
		}

		writeJSON(w, http.StatusOK, types.StatusResponse{
			Connected:       s.Connected,
			LastUpdate:      last,
			TimeSinceUpdate: s.SinceUpdate.Milliseconds(),
			GameName:        s.GameName,
			ContainerCount:  s.ContainerCount,
		})
	}
}
