package attendance

import "time"

// State is the user's attendance position for the current day.
type State string

const (
	StateNotCheckedIn    State = "not_checked_in"
	StateCheckedInActive State = "checked_in_active"
	StateCheckedOutToday State = "checked_out_today"
)

// DayStatus is the per-user per-day attendance summary the status endpoints
// serve. Transitions happen only through successful check-in/check-out calls;
// a new day's fetch naturally resets to not-checked-in.
type DayStatus struct {
	CheckedIn   bool       `json:"checked_in"`
	CheckedOut  bool       `json:"checked_out"`
	CheckinTime *time.Time `json:"checkin_time,omitempty"`
}

// DeriveState maps a DayStatus onto the attendance state machine. CheckedOut
// implies CheckedIn, so the checked-out branch is tested first.
func DeriveState(s DayStatus) State {
	switch {
	case s.CheckedIn && s.CheckedOut:
		return StateCheckedOutToday
	case s.CheckedIn:
		return StateCheckedInActive
	default:
		return StateNotCheckedIn
	}
}

// CanCheckIn reports whether a check-in action is permitted from this state.
// The geofence gate is a separate precondition checked at action time.
func (s State) CanCheckIn() bool {
	return s == StateNotCheckedIn
}

// CanCheckOut reports whether a check-out action is permitted from this state.
func (s State) CanCheckOut() bool {
	return s == StateCheckedInActive
}
