package overtime

import (
	"context"
	"time"
)

// OTRequestRepository defines data access methods for overtime requests.
type OTRequestRepository interface {
	Create(ctx context.Context, req OTRequest) (OTRequest, error)
	GetByID(ctx context.Context, id string) (OTRequest, error)
	Update(ctx context.Context, req OTRequest) error

	// ListByRequester returns a user's own requests, newest first.
	ListByRequester(ctx context.Context, requesterID string) ([]OTRequest, error)

	// ListAll returns every request, newest first, for the approval queues.
	ListAll(ctx context.Context) ([]OTRequest, error)

	// ListApprovedInRange returns admin-approved requests whose start falls
	// inside [from, to), optionally narrowed to one requester.
	ListApprovedInRange(ctx context.Context, requesterID *string, from, to time.Time) ([]OTRequest, error)
}
