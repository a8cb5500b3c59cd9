package overtime

// Status is the canonical overtime request state. Earlier clients spoke two
// different numeric encodings (one per approval stage); those live only at the
// wire boundary via the codec below.
type Status string

const (
	StatusPending        Status = "pending"         // awaiting the senior stage
	StatusSeniorApproved Status = "senior_approved" // senior passed it on, awaiting admin
	StatusApproved       Status = "approved"        // admin confirmed, OT credited
	StatusRejected       Status = "rejected"        // refused at either stage
)

// ParseStatus validates a stored status string.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusSeniorApproved, StatusApproved, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// IsFinal reports whether no further stage may act on the request.
func (s Status) IsFinal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Legacy senior-flow codes: 0 pending, 1 approved, 2 rejected.
const (
	seniorCodePending  = 0
	seniorCodeApproved = 1
	seniorCodeRejected = 2
)

// Legacy admin-flow codes: 1 awaiting admin, 3 approved, 4 rejected.
const (
	adminCodeAwaiting = 1
	adminCodeApproved = 3
	adminCodeRejected = 4
)

// SeniorCode renders the status in the senior-flow encoding. Anything past
// the senior stage reads as approved there, since that stage already said yes.
func (s Status) SeniorCode() int {
	switch s {
	case StatusSeniorApproved, StatusApproved:
		return seniorCodeApproved
	case StatusRejected:
		return seniorCodeRejected
	default:
		return seniorCodePending
	}
}

// AdminCode renders the status in the admin-flow encoding. A request still at
// the senior stage has no admin code; it reads as awaiting.
func (s Status) AdminCode() int {
	switch s {
	case StatusApproved:
		return adminCodeApproved
	case StatusRejected:
		return adminCodeRejected
	default:
		return adminCodeAwaiting
	}
}

// ParseSeniorCode decodes a senior-flow wire code into a canonical status.
func ParseSeniorCode(code int) (Status, bool) {
	switch code {
	case seniorCodePending:
		return StatusPending, true
	case seniorCodeApproved:
		return StatusSeniorApproved, true
	case seniorCodeRejected:
		return StatusRejected, true
	}
	return "", false
}

// ParseAdminCode decodes an admin-flow wire code into a canonical status.
func ParseAdminCode(code int) (Status, bool) {
	switch code {
	case adminCodeAwaiting:
		return StatusSeniorApproved, true
	case adminCodeApproved:
		return StatusApproved, true
	case adminCodeRejected:
		return StatusRejected, true
	}
	return "", false
}
