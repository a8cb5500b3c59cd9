package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrEntryNotFound     = errors.New("attendance entry not found")
)

// OutsideGeofenceError rejects a check-in attempted beyond the office radius.
// It carries the measured distance so the refusal message can report it.
type OutsideGeofenceError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutsideGeofenceError) Error() string {
	return fmt.Sprintf("you are outside the allowed check-in area: %.0f m from the office (allowed %.0f m)",
		e.DistanceMeters, e.RadiusMeters)
}
