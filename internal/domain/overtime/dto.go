package overtime

import (
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/validator"
)

// CreateOTRequest is the submission form: date and wall-clock time arrive as
// separate fields, exactly as the OT form collects them.
type CreateOTRequest struct {
	StartDate  string `json:"startDate"`
	StartTime  string `json:"startTime"`
	EndDate    string `json:"endDate"`
	EndTime    string `json:"endTime"`
	Reason     string `json:"reason"`
	ApproverID string `json:"approve"`

	// Combined timestamps, populated by Validate.
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// Validate runs the pre-flight check before anything touches storage. Missing
// fields are reported per field; an end-not-after-start failure is reported
// separately from the missing-field case.
func (r *CreateOTRequest) Validate() error {
	var errs validator.ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"startDate", r.StartDate},
		{"startTime", r.StartTime},
		{"endDate", r.EndDate},
		{"endTime", r.EndTime},
		{"reason", r.Reason},
		{"approve", r.ApproverID},
	}
	for _, f := range required {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{Field: f.field, Message: f.field + " is required"})
		}
	}
	if len(errs) > 0 {
		return errs
	}

	start, ok := validator.CombineDateTime(r.StartDate, r.StartTime)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "start date/time is not valid"})
	}
	end, ok := validator.CombineDateTime(r.EndDate, r.EndTime)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "end date/time is not valid"})
	}
	if len(errs) > 0 {
		return errs
	}

	if !end.After(start) {
		return ErrEndBeforeStart
	}

	r.Start = start
	r.End = end
	return nil
}

// SeniorDecisionRequest is the senior-stage decision in the legacy wire shape:
// the 0/1/2 code plus an optional reject reason.
type SeniorDecisionRequest struct {
	RequestID    string `json:"ot_id"`
	Status       int    `json:"status"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// AdminDecisionRequest is the admin-stage decision in its legacy 1/3/4 codes.
type AdminDecisionRequest struct {
	RequestID    string `json:"request_id"`
	Status       int    `json:"status"`
	RejectReason string `json:"reject_reason,omitempty"`
}

// RejectRequest is the body of the path-addressed reject endpoints.
type RejectRequest struct {
	Reason string `json:"reject_reason"`
}

// OTRequestResponse is the wire shape of a request. Both legacy numeric codes
// are served alongside the canonical status so every client generation reads
// a consistent view.
type OTRequestResponse struct {
	ID              string  `json:"id"`
	RequesterID     string  `json:"requester_id"`
	RequesterName   string  `json:"requester_name,omitempty"`
	ApproverID      string  `json:"approver_id"`
	ApproverName    string  `json:"approver_name,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	StatusCode      int     `json:"status_code"`       // senior-flow encoding
	AdminStatusCode int     `json:"admin_status_code"` // admin-flow encoding
	RejectReason    *string `json:"reject_reason,omitempty"`
	DecidedByName   *string `json:"approved_by_name,omitempty"`
	DurationText    string  `json:"duration"`
	DurationHours   float64 `json:"duration_hours"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// MonthFilter selects a month of OT activity.
type MonthFilter struct {
	Month int
	Year  int
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	now := time.Now()
	if f.Month == 0 {
		f.Month = int(now.Month())
	}
	if f.Year == 0 {
		f.Year = now.Year()
	}

	if f.Month < 1 || f.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserTotal is one user's credited OT for a month.
type UserTotal struct {
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	TotalHours float64 `json:"total_hours"`
	TotalText  string  `json:"total"`
}

// MonthlyTotalsResponse aggregates credited OT hours for a month.
type MonthlyTotalsResponse struct {
	Month  int         `json:"month"`
	Year   int         `json:"year"`
	Totals []UserTotal `json:"totals"`
}
