package showrunner

import (
	"context"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
)

// Task is one schedulable unit of a channel.
type Task interface {
	Channel() string
	Name() string
	Run(ctx context.Context, mode RunMode) (Summary, error)
}

// AdvancePolicy decides when a completed run moves the checkpoint.
type AdvancePolicy int

const (
	// AdvanceAlways moves the checkpoint after every completed run.
	AdvanceAlways AdvancePolicy = iota
	// AdvanceOnNotify moves it only when at least one notification reached
	// the API or the retry queue.
	AdvanceOnNotify
)

func (p AdvancePolicy) String() string {
	if p == AdvanceOnNotify {
		return "on_notify"
	}
	return "always"
}

// Summary reports one task run.
type Summary struct {
	Channel string `json:"channel"`
	Task    string `json:"task"`
	Mode    string `json:"mode"`

	// From and To are block numbers or unix seconds depending on the task.
	From int64 `json:"from"`
	To   int64 `json:"to"`

	Candidates int `json:"candidates"`
	Sent       int `json:"sent"`
	Queued     int `json:"queued"`
	Dropped    int `json:"dropped"`
	Simulated  int `json:"simulated"`
	Skipped    int `json:"skipped"`

	Seeded             bool `json:"seeded"`
	CheckpointAdvanced bool `json:"checkpointAdvanced"`
}

// Notified counts notifications that reached the API or the retry queue.
func (s Summary) Notified() int {
	return s.Sent + s.Queued
}

func (s *Summary) record(outcome notify.Outcome) {
	switch outcome {
	case notify.OutcomeSent:
		s.Sent++
	case notify.OutcomeFailedQueued:
		s.Queued++
	case notify.OutcomeFailedDropped:
		s.Dropped++
	case notify.OutcomeSimulated:
		s.Simulated++
	}
}
