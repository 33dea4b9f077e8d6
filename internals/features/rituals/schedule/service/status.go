// file: internals/features/rituals/schedule/service/status.go
package service

import (
	"fmt"
	"strings"

	"templeku_backend/internals/helpers/dbtime"
)

// OccurrenceStatus is the lifecycle state of one occurrence.
type OccurrenceStatus string

const (
	StatusScheduled OccurrenceStatus = "scheduled"
	StatusOnTime    OccurrenceStatus = "on-time"
	StatusDelayed   OccurrenceStatus = "delayed"
	StatusCancelled OccurrenceStatus = "cancelled"
	StatusCompleted OccurrenceStatus = "completed"
)

func ParseOccurrenceStatus(s string) (OccurrenceStatus, bool) {
	switch OccurrenceStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusOnTime:
		return StatusOnTime, true
	case StatusDelayed:
		return StatusDelayed, true
	case StatusCancelled:
		return StatusCancelled, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s OccurrenceStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the move from s to target is allowed.
func (s OccurrenceStatus) CanTransitionTo(target OccurrenceStatus) bool {
	switch s {
	case StatusScheduled:
		return target == StatusOnTime || target == StatusDelayed ||
			target == StatusCancelled || target == StatusCompleted
	case StatusDelayed:
		return target == StatusOnTime || target == StatusCompleted
	case StatusOnTime:
		return target == StatusCompleted
	case StatusCompleted, StatusCancelled:
		return false
	default:
		return false
	}
}

// StatusChange is a requested transition for one occurrence.
type StatusChange struct {
	NewStatus OccurrenceStatus
	DelayedTo *dbtime.Tod // required when NewStatus=delayed
	Reason    string      // required when NewStatus is delayed or cancelled
	Notify    bool
}

// InvalidTransitionError reports a rejected status transition. MissingField
// is set when a required field was absent; otherwise the move itself is
// illegal.
type InvalidTransitionError struct {
	From         OccurrenceStatus
	To           OccurrenceStatus
	MissingField string
}

func (e *InvalidTransitionError) Error() string {
	if e.MissingField != "" {
		return fmt.Sprintf("invalid transition to %s: missing %s", e.To, e.MissingField)
	}
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// ValidateTransition checks a requested change against the current state and
// the field requirements. It never mutates anything; callers append the
// history row only after this passes.
func ValidateTransition(from OccurrenceStatus, change StatusChange) error {
	if from == "" {
		from = StatusScheduled
	}
	if _, ok := ParseOccurrenceStatus(string(change.NewStatus)); !ok {
		return &InvalidTransitionError{From: from, To: change.NewStatus}
	}
	if !from.CanTransitionTo(change.NewStatus) {
		return &InvalidTransitionError{From: from, To: change.NewStatus}
	}
	if change.NewStatus == StatusDelayed && change.DelayedTo == nil {
		return &InvalidTransitionError{From: from, To: change.NewStatus, MissingField: "delayed_to_time"}
	}
	if (change.NewStatus == StatusDelayed || change.NewStatus == StatusCancelled) &&
		strings.TrimSpace(change.Reason) == "" {
		return &InvalidTransitionError{From: from, To: change.NewStatus, MissingField: "reason"}
	}
	return nil
}
