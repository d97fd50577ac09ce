// Package ippo contains the pure business logic for IPPO status changes.
// This is part of the Functional Core - no I/O, only pure functions.
package ippo

import (
	"fmt"
	"time"
)

// Status represents the possible states of an IPPO.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAchieved Status = "achieved"
	StatusStocked  Status = "stocked"
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAchieved, StatusStocked:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q (want pending, achieved or stocked)", s)
}

// StatusTransitionResult contains the result of a status transition.
// PerformedAt is set when the IPPO becomes achieved.
type StatusTransitionResult struct {
	NewStatus   Status
	PerformedAt *time.Time
}

// ApplyStatusTransition applies a status transition and returns the result.
// The caller passes the performed time so the rule stays testable.
func ApplyStatusTransition(newStatus Status, at time.Time) StatusTransitionResult {
	result := StatusTransitionResult{
		NewStatus: newStatus,
	}

	if newStatus == StatusAchieved {
		result.PerformedAt = &at
	}

	return result
}

// InitialStatus returns the status of a newly created IPPO.
func InitialStatus() Status {
	return StatusPending
}
