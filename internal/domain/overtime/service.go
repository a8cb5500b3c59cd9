package overtime

import "context"

// OTService defines business logic for the overtime workflow.
type OTService interface {
	// Submit validates and creates a new request for the caller.
	Submit(ctx context.Context, req CreateOTRequest) (OTRequestResponse, error)

	// ListMine returns the caller's own requests.
	ListMine(ctx context.Context) ([]OTRequestResponse, error)

	// ListAll returns every request for the senior/admin queues.
	ListAll(ctx context.Context) ([]OTRequestResponse, error)

	// SeniorDecide applies a senior-stage approve/reject, addressed by the
	// legacy 0/1/2 wire code.
	SeniorDecide(ctx context.Context, req SeniorDecisionRequest) (OTRequestResponse, error)

	// SeniorReject rejects at the senior stage with a reason.
	SeniorReject(ctx context.Context, requestID, reason string) (OTRequestResponse, error)

	// AdminDecide applies an admin-stage decision via the legacy 1/3/4 code.
	AdminDecide(ctx context.Context, req AdminDecisionRequest) (OTRequestResponse, error)

	// AdminReject rejects at the admin stage with a reason.
	AdminReject(ctx context.Context, requestID, reason string) (OTRequestResponse, error)

	// MonthlyTotals sums credited OT hours per user for a month.
	MonthlyTotals(ctx context.Context, filter MonthFilter) (MonthlyTotalsResponse, error)

	// UserMonthlyTotal sums one user's credited OT hours for a month.
	UserMonthlyTotal(ctx context.Context, userID string, filter MonthFilter) (UserTotal, error)
}
