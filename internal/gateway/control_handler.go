package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fitkit/roundclock/internal/roundtimer"
)

// TimerController exposes the timer operations the gateway drives
type TimerController interface {
	Start() error
	Pause()
	Reset()
	SetConfig(cfg roundtimer.Config) error
}

// ControlHandler handles the HTTP control surface of the timer
type ControlHandler struct {
	controller TimerController
}

// NewControlHandler creates a new control handler
func NewControlHandler(controller TimerController) *ControlHandler {
	return &ControlHandler{
		controller: controller,
	}
}

// HandleStart handles POST /api/timer/start
func (h *ControlHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.controller.Start(); err != nil {
		if errors.Is(err, roundtimer.ErrTimerFinished) {
			http.Error(w, "timer is finished; reset before starting", http.StatusConflict)
			return
		}
		log.Error().Err(err).Msg("failed to start timer")
		http.Error(w, "failed to start timer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandlePause handles POST /api/timer/pause
func (h *ControlHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.controller.Pause()
	w.WriteHeader(http.StatusNoContent)
}

// HandleReset handles POST /api/timer/reset
func (h *ControlHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.controller.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetConfig handles PUT /api/timer/config
func (h *ControlHandler) HandleSetConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg roundtimer.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid config body", http.StatusBadRequest)
		return
	}

	if err := h.controller.SetConfig(cfg); err != nil {
		switch {
		case errors.Is(err, roundtimer.ErrTimerRunning):
			http.Error(w, "cannot change config while running", http.StatusConflict)
		case errors.Is(err, roundtimer.ErrInvalidRoundDuration),
			errors.Is(err, roundtimer.ErrInvalidRoundCount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Error().Err(err).Msg("failed to update timer config")
			http.Error(w, "failed to update config", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterControlRoutes registers timer control HTTP routes
func (h *ControlHandler) RegisterControlRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/timer/start", h.HandleStart)
	mux.HandleFunc("/api/timer/pause", h.HandlePause)
	mux.HandleFunc("/api/timer/reset", h.HandleReset)
	mux.HandleFunc("/api/timer/config", h.HandleSetConfig)
}
