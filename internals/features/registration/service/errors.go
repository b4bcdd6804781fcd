package service

import "fmt"

// OffendingGrade points at a participant whose grade falls outside the event range.
type OffendingGrade struct {
	Name  string
	Grade int
}

// ParticipantCountError is returned when a roster is too small or too large.
// Max below Min means the event carries no upper bound (catalog events).
type ParticipantCountError struct {
	EventName string
	Min       int
	Max       int
	Actual    int
}

func (e *ParticipantCountError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("event %q requires at least %d participant(s), got %d",
			e.EventName, e.Min, e.Actual)
	}
	return fmt.Sprintf("event %q requires between %d and %d participants, got %d",
		e.EventName, e.Min, e.Max, e.Actual)
}

// GradeRangeError is returned when one or more participants are out of the grade range.
type GradeRangeError struct {
	EventName string
	Min       int
	Max       int
	Offending []OffendingGrade
}

func (e *GradeRangeError) Error() string {
	return fmt.Sprintf("event %q only allows grades %d to %d (%d participant(s) outside range)",
		e.EventName, e.Min, e.Max, len(e.Offending))
}

// GenderCompositionError is returned when a roster breaks the event gender rule.
type GenderCompositionError struct {
	EventName   string
	Requirement string
}

func (e *GenderCompositionError) Error() string {
	return fmt.Sprintf("event %q does not accept this roster composition (rule: %s)",
		e.EventName, e.Requirement)
}

// EventNotFoundError is returned for unknown or inactive event ids.
type EventNotFoundError struct {
	EventID string
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("event %q not found", e.EventID)
}

// DuplicateRegistrationError is returned when a concurrent submit already
// claimed the (school, event) slot.
type DuplicateRegistrationError struct {
	EventName string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("registration for event %q already exists for this school", e.EventName)
}

// SchoolNotFoundError is returned by lookups for schools that never registered.
type SchoolNotFoundError struct {
	SchoolName string
}

func (e *SchoolNotFoundError) Error() string {
	return fmt.Sprintf("school %q has no registration on record", e.SchoolName)
}
