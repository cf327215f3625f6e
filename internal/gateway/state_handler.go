package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fitkit/roundclock/internal/roundtimer"
)

// StateProvider exposes the timer snapshot the gateway serves
type StateProvider interface {
	State() roundtimer.State
	Config() roundtimer.Config
}

// TimerStateResponse is the full timer snapshot returned to clients
type TimerStateResponse struct {
	Status           roundtimer.Status `json:"status"`
	RoundDurationSec int               `json:"round_duration_sec"`
	RoundCount       int               `json:"round_count"`
	CurrentRound     int               `json:"current_round"`
	SecondsRemaining int               `json:"seconds_remaining"`
	Running          bool              `json:"running"`
	Finished         bool              `json:"finished"`
}

// StateHandler handles HTTP requests for the timer state
type StateHandler struct {
	stateProvider StateProvider
}

// NewStateHandler creates a new state handler
func NewStateHandler(provider StateProvider) *StateHandler {
	return &StateHandler{
		stateProvider: provider,
	}
}

// HandleGetTimerState handles GET /api/timer/state
func (h *StateHandler) HandleGetTimerState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state := h.stateProvider.State()
	cfg := h.stateProvider.Config()

	resp := TimerStateResponse{
		Status:           state.Status(),
		RoundDurationSec: cfg.RoundDurationSec,
		RoundCount:       cfg.RoundCount,
		CurrentRound:     state.CurrentRound,
		SecondsRemaining: state.SecondsRemaining,
		Running:          state.Running,
		Finished:         state.Finished,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to encode timer state response")
	}
}

// RegisterStateRoutes registers state-related HTTP routes
func (h *StateHandler) RegisterStateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/timer/state", h.HandleGetTimerState)
}
