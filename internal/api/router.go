package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal/metrics"
	"github.com/thep2p/go-staker-manager/internal/model"
	"github.com/thep2p/go-staker-manager/internal/packages"
)

const (
	PingEndpoint         = "/ping"
	MetricsEndpoint      = "/metrics"
	StakerConfigEndpoint = "/staker-config"
	ChainsEndpoint       = "/chains"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// ChainResponse is the body of a chain lookup.
type ChainResponse struct {
	DnpName string `json:"dnpName"`
	Driver  string `json:"driver"`
}

type handlers struct {
	logger  zerolog.Logger
	service *Service
}

// NewRouter routes the staker API to service. m may be nil, in which case
// no metrics endpoint is exposed.
func NewRouter(logger zerolog.Logger, service *Service, m *metrics.Metrics) http.Handler {
	h := &handlers{
		logger:  logger.With().Str("component", "http").Logger(),
		service: service,
	}

	router := mux.NewRouter()
	router.Handle(PingEndpoint, http.HandlerFunc(h.ping)).Methods(http.MethodGet)
	router.Handle(StakerConfigEndpoint+"/{network}", http.HandlerFunc(h.getStakerConfig)).Methods(http.MethodGet)
	router.Handle(StakerConfigEndpoint, http.HandlerFunc(h.setStakerConfig)).Methods(http.MethodPost)
	router.Handle(ChainsEndpoint+"/{dnpName}", http.HandlerFunc(h.getChain)).Methods(http.MethodGet)
	if m != nil {
		router.Handle(MetricsEndpoint, m.Handler()).Methods(http.MethodGet)
	}
	return router
}

func (h *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) getStakerConfig(w http.ResponseWriter, r *http.Request) {
	network, err := model.ParseNetwork(mux.Vars(r)["network"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	get, err := h.service.StakerConfigGet(r.Context(), network)
	if err != nil {
		h.writeError(w, statusOf(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, get)
}

func (h *handlers) setStakerConfig(w http.ResponseWriter, r *http.Request) {
	var cfg model.StakerConfig
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.service.StakerConfigSet(r.Context(), cfg); err != nil {
		h.writeError(w, statusOf(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) getChain(w http.ResponseWriter, r *http.Request) {
	dnpName := mux.Vars(r)["dnpName"]
	driver, err := h.service.Chain(r.Context(), dnpName)
	if err != nil {
		h.writeError(w, statusOf(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, ChainResponse{DnpName: dnpName, Driver: string(driver)})
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("fail to write to response")
	}
}

func (h *handlers) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("request failed")
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, packages.ErrNotInstalled), errors.Is(err, ErrUnknownChain):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
