package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/cbodonnell/flagmaster/pkg/countries"
	"github.com/cbodonnell/flagmaster/pkg/game/constants"
	"github.com/cbodonnell/flagmaster/pkg/game/types"
	"github.com/cbodonnell/flagmaster/pkg/log"
	"github.com/cbodonnell/flagmaster/pkg/messages"
	"github.com/cbodonnell/flagmaster/pkg/stats"
	"github.com/gorilla/mux"
)

const (
	// MaxCountries caps the count query parameter of GET /countries
	MaxCountries = 64
	// MaxStatsBodySize caps the body of PUT /stats/{mode}
	MaxStatsBodySize = 64 << 10
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &messages.ErrorResponse{Error: message})
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func HandleGetCountries(provider countries.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := constants.NormalCardCount
		if raw := r.URL.Query().Get("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > MaxCountries {
				writeError(w, http.StatusBadRequest, "count must be an integer between 1 and "+strconv.Itoa(MaxCountries))
				return
			}
			count = n
		}

		list, err := provider.GetRandomCountries(r.Context(), count)
		if err != nil {
			if countries.IsPoolTooSmall(err) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			log.Error("failed to get %d random countries: %v", count, err)
			writeError(w, http.StatusInternalServerError, "failed to get countries")
			return
		}

		writeJSON(w, http.StatusOK, &messages.CountriesResponse{Countries: list})
	}
}

func parseModeVar(w http.ResponseWriter, r *http.Request) (types.Mode, bool) {
	mode, err := types.ParseMode(mux.Vars(r)["mode"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return mode, true
}

func HandleGetStats(store stats.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := parseModeVar(w, r)
		if !ok {
			return
		}

		s, err := store.Load(r.Context(), mode)
		if err != nil {
			log.Error("failed to load %s stats: %v", mode, err)
			writeError(w, http.StatusInternalServerError, "failed to load stats")
			return
		}
		if s == nil {
			writeError(w, http.StatusNotFound, "no stats recorded")
			return
		}

		writeJSON(w, http.StatusOK, s)
	}
}

func HandlePutStats(store stats.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, ok := parseModeVar(w, r)
		if !ok {
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxStatsBodySize))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "body too large")
			return
		}
		s, err := stats.Decode(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.Save(r.Context(), mode, s); err != nil {
			log.Error("failed to save %s stats: %v", mode, err)
			writeError(w, http.StatusInternalServerError, "failed to save stats")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
