package overtime

import (
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
)

// OTRequest is one overtime request moving through the two-stage approval
// workflow: requester -> designated senior -> admin. Status transitions are
// owned by the service; clients only reflect fetched state.
type OTRequest struct {
	ID           string
	RequesterID  string
	ApproverID   string
	StartTime    time.Time
	EndTime      time.Time
	Reason       string
	Status       Status
	RejectReason *string
	// DecidedBy is whoever acted last (senior or admin stage).
	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields
	RequesterName *string
	ApproverName  *string
	DecidedByName *string
}

// Duration is the requested overtime span. End is always after start, so no
// clamping triggers for persisted rows.
func (r *OTRequest) Duration() worktime.Duration {
	return worktime.Elapsed(r.StartTime, r.EndTime)
}
