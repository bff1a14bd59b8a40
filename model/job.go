package model

import "time"

// ConditionalJob asks a background worker to evaluate an action's conditional
// against a screen snapshot and store the outcome under CacheKey.
type ConditionalJob struct {
	ScheduleId   string    `json:"scheduleId"`
	CacheKey     string    `json:"cacheKey"`
	Snapshot     string    `json:"snapshot"`
	Action       Action    `json:"action"`
	DispatchedAt time.Time `json:"dispatchedAt"`
}

// ScreenData is what an executor captured for conditional evaluation.
type ScreenData struct {
	Snapshot string         `json:"snapshot"`
	Values   map[string]any `json:"values"`
}

// SideEffect is the best-effort payload of performing an action.
type SideEffect struct {
	Message  string      `json:"data"`
	Captured *ScreenData `json:"captured,omitempty"`
}
