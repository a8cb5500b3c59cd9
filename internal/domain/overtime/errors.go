package overtime

import "errors"

// Overtime domain errors
var (
	ErrRequestNotFound       = errors.New("overtime request not found")
	ErrAlreadyProcessed      = errors.New("overtime request has already been processed at this stage")
	ErrNotDesignatedApprover = errors.New("only the designated approver may act on this request")
	ErrNotAwaitingAdmin      = errors.New("overtime request is not awaiting admin review")
	ErrRejectReasonRequired  = errors.New("a reason is required to reject an overtime request")
	ErrEndBeforeStart        = errors.New("end time must be after start time")
)
