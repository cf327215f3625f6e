package events

import (
	"time"
)

// Event payload types shared between the roundtimer runner and the gateway

// Type identifies a timer event
type Type string

const (
	TypeTimerStarted   Type = "TimerStarted"
	TypeTimerPaused    Type = "TimerPaused"
	TypeTimerReset     Type = "TimerReset"
	TypeConfigUpdated  Type = "ConfigUpdated"
	TypeRoundCompleted Type = "RoundCompleted"
	TypeTimerFinished  Type = "TimerFinished"
	TypeTimerTick      Type = "TimerTick"
)

// TimerStartedPayload is the payload for a TimerStarted event
type TimerStartedPayload struct {
	RoundDurationSec int       `json:"round_duration_sec"`
	RoundCount       int       `json:"round_count"`
	CurrentRound     int       `json:"current_round"`
	SecondsRemaining int       `json:"seconds_remaining"`
	StartedAt        time.Time `json:"started_at"`
}

// TimerPausedPayload is the payload for a TimerPaused event
type TimerPausedPayload struct {
	CurrentRound     int       `json:"current_round"`
	SecondsRemaining int       `json:"seconds_remaining"`
	PausedAt         time.Time `json:"paused_at"`
}

// TimerResetPayload is the payload for a TimerReset event
type TimerResetPayload struct {
	RoundDurationSec int       `json:"round_duration_sec"`
	RoundCount       int       `json:"round_count"`
	ResetAt          time.Time `json:"reset_at"`
}

// ConfigUpdatedPayload is the payload for a ConfigUpdated event
type ConfigUpdatedPayload struct {
	RoundDurationSec int       `json:"round_duration_sec"`
	RoundCount       int       `json:"round_count"`
	SecondsRemaining int       `json:"seconds_remaining"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RoundCompletedPayload is the payload for a RoundCompleted event
type RoundCompletedPayload struct {
	CompletedRound   int       `json:"completed_round"`
	NextRound        int       `json:"next_round"`
	RoundCount       int       `json:"round_count"`
	SecondsRemaining int       `json:"seconds_remaining"`
	CompletedAt      time.Time `json:"completed_at"`
}

// TimerFinishedPayload is the payload for a TimerFinished event
type TimerFinishedPayload struct {
	RoundCount int       `json:"round_count"`
	FinishedAt time.Time `json:"finished_at"`
}

// TimerTickPayload contains the once-per-second countdown update
type TimerTickPayload struct {
	CurrentRound     int       `json:"current_round"`
	RoundCount       int       `json:"round_count"`
	SecondsRemaining int       `json:"seconds_remaining"`
	TickedAt         time.Time `json:"ticked_at"`
}
