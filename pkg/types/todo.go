// Package types defines the Todo entity, its priority levels, the listing
// filter, and the standard errors shared by the cltodo storage backend and
// CLI.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Priority is the closed three-level urgency scale for a todo entry.
// The zero value is PriorityNormal. Persisted as its integer tag.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityImportant
	PriorityCritical
)

// Priority errors.
var (
	// ErrInvalidPriority reports a priority name that is not one of
	// normal, important, critical.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrCorruptPriority reports a stored priority tag outside {0,1,2}.
	// Treated as data corruption, not recoverable input.
	ErrCorruptPriority = errors.New("corrupt priority tag")

	// ErrCorruptDate reports a stored date string that no longer parses
	// as a timestamp. Treated as data corruption.
	ErrCorruptDate = errors.New("corrupt date")
)

// ErrNotFound reports a lookup for an id with no matching entry.
var ErrNotFound = errors.New("entry not found")

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityImportant:
		return "Important"
	default:
		return "Normal"
	}
}

// ParsePriority converts a user-supplied priority name to a Priority.
// Matching is case-insensitive. Returns ErrInvalidPriority for anything
// that is not normal, important, or critical.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(s) {
	case "normal":
		return PriorityNormal, nil
	case "important":
		return PriorityImportant, nil
	case "critical":
		return PriorityCritical, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: normal, important, critical)", ErrInvalidPriority, s)
	}
}

// MarshalJSON encodes the priority as its lowercase name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(p.String()))
}

// UnmarshalJSON accepts any name ParsePriority accepts.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// PriorityFromTag converts a stored integer tag back to a Priority.
// Any tag outside {0,1,2} returns ErrCorruptPriority: the loader treats it
// as a fatal invariant violation, never as a skippable bad row.
func PriorityFromTag(tag int64) (Priority, error) {
	if tag < int64(PriorityNormal) || tag > int64(PriorityCritical) {
		return 0, fmt.Errorf("%w: %d", ErrCorruptPriority, tag)
	}
	return Priority(tag), nil
}

// Todo is one task entry. All fields are set at creation and immutable
// afterwards; correcting a mistake requires delete plus re-add, which
// assigns a new ID.
type Todo struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Text     string    `json:"text"`
	Priority Priority  `json:"priority"`
}

// ListFilter selects and orders entries for the list operation. All fields
// are optional and combine as a conjunction; the zero value matches every
// entry in most-recent-first order with priority re-bucketing applied.
type ListFilter struct {
	// Priority, when non-nil, keeps only entries of exactly that level.
	Priority *Priority

	// From and To, when non-nil, bound the entry date inclusively.
	From *time.Time
	To   *time.Time

	// Reversed orders by ascending date (oldest first) instead of the
	// default descending.
	Reversed bool

	// Chronological skips the priority re-bucketing and leaves entries
	// purely in date order.
	Chronological bool
}

// BucketByPriority re-buckets an already date-ordered slice into priority
// tiers: all Critical entries first, then Important, then Normal. The
// partition is stable, so relative date order inside each tier survives.
func BucketByPriority(todos []Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, tier := range []Priority{PriorityCritical, PriorityImportant, PriorityNormal} {
		for _, t := range todos {
			if t.Priority == tier {
				out = append(out, t)
			}
		}
	}
	return out
}
