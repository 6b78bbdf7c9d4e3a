package models

import "fmt"

// Status is the listing lifecycle state stored on Vehicle.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusRejected Status = "REJECTED"
	StatusSold     Status = "SOLD"
)

// allowedTransitions is the listing state machine.
// REJECTED and SOLD are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:  {StatusActive, StatusRejected},
	StatusActive:   {StatusSold},
	StatusRejected: {},
	StatusSold:     {},
}

// ParseStatus validates a caller-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusRejected, StatusSold:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status: %q", s)
}

// IsValid reports whether s is one of the four known states.
func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed edge.
// A no-op transition (from == to) is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// AuthorizeTransition checks both the edge and who may trigger it:
// PENDING -> ACTIVE/REJECTED is an admin approval action, while
// ACTIVE -> SOLD may also be done by the listing owner.
func AuthorizeTransition(from, to Status, role string, isOwner bool) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid status transition: %s -> %s", from, to)
	}
	if from == to {
		return nil
	}
	if role == RoleAdmin {
		return nil
	}
	if from == StatusActive && to == StatusSold && isOwner {
		return nil
	}
	return fmt.Errorf("role not allowed to perform transition %s -> %s", from, to)
}
