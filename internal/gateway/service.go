package gateway

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fitkit/roundclock/internal/events"
)

// Service is the timer gateway: it broadcasts timer events to WebSocket
// clients and serves the HTTP state/control surface.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	stateHandler      *StateHandler
	controlHandler    *ControlHandler
}

// Config holds configuration for the timer gateway service
type Config struct {
	ConnectionConfig ConnectionConfig
}

// DefaultConfig returns default configuration for the timer gateway
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
	}
}

// NewService creates a new timer gateway service around an existing
// connection manager so the event broadcaster and the HTTP surface share
// one connection pool.
func NewService(cm *ConnectionManager, provider StateProvider, controller TimerController) *Service {
	return &Service{
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm),
		stateHandler:      NewStateHandler(provider),
		controlHandler:    NewControlHandler(controller),
	}
}

// Start begins the gateway service and blocks until ctx is cancelled
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting timer gateway service")

	s.connectionManager.Start(ctx)

	log.Info().Msg("timer gateway service stopped")
	return nil
}

// RegisterRoutes registers the gateway HTTP routes
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	s.stateHandler.RegisterStateRoutes(mux)
	s.controlHandler.RegisterControlRoutes(mux)
	log.Info().Msg("timer gateway routes registered")
}

// GetStats returns statistics about the gateway service
func (s *Service) GetStats() map[string]interface{} {
	stats := s.connectionManager.GetConnectionStats()
	stats["service"] = "timer_gateway"
	stats["status"] = "running"
	return stats
}

// Broadcaster adapts a ConnectionManager to the runner's Emitter interface
type Broadcaster struct {
	connectionManager *ConnectionManager
}

// NewBroadcaster creates an emitter that fans timer events out to all
// connected WebSocket clients.
func NewBroadcaster(cm *ConnectionManager) *Broadcaster {
	return &Broadcaster{connectionManager: cm}
}

// Emit wraps the payload in a broadcast envelope and queues it. Never blocks.
func (b *Broadcaster) Emit(eventType events.Type, payload any) {
	event, err := NewTimerEvent(eventType, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to build timer event")
		return
	}
	b.connectionManager.Broadcast(event)
}
