package overtime

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/overtime"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/validator"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/worktime"
)

type OTServiceImpl struct {
	overtime.OTRequestRepository
	user.UserRepository
}

func NewOTService(requestRepository overtime.OTRequestRepository, userRepository user.UserRepository) overtime.OTService {
	return &OTServiceImpl{
		OTRequestRepository: requestRepository,
		UserRepository:      userRepository,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func toResponse(r overtime.OTRequest) overtime.OTRequestResponse {
	duration := r.Duration()

	resp := overtime.OTRequestResponse{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		ApproverID:      r.ApproverID,
		StartTime:       r.StartTime.Format("2006-01-02 15:04:05"),
		EndTime:         r.EndTime.Format("2006-01-02 15:04:05"),
		Reason:          r.Reason,
		Status:          string(r.Status),
		StatusCode:      r.Status.SeniorCode(),
		AdminStatusCode: r.Status.AdminCode(),
		RejectReason:    r.RejectReason,
		DecidedByName:   r.DecidedByName,
		DurationText:    worktime.FormatHHMM(duration),
		DurationHours:   duration.DecimalHours(),
		CreatedAt:       r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.RequesterName != nil {
		resp.RequesterName = *r.RequesterName
	}
	if r.ApproverName != nil {
		resp.ApproverName = *r.ApproverName
	}
	return resp
}

// Submit implements overtime.OTService.
func (o *OTServiceImpl) Submit(ctx context.Context, req overtime.CreateOTRequest) (overtime.OTRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OTRequestResponse{}, err
	}

	requesterID, err := userIDFromContext(ctx)
	if err != nil {
		return overtime.OTRequestResponse{}, err
	}

	approver, err := o.UserRepository.GetByID(ctx, req.ApproverID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return overtime.OTRequestResponse{}, user.ErrApproverNotEligible
		}
		return overtime.OTRequestResponse{}, fmt.Errorf("failed to get approver: %w", err)
	}
	if !approver.IsSenior() {
		return overtime.OTRequestResponse{}, user.ErrApproverNotEligible
	}

	created, err := o.OTRequestRepository.Create(ctx, overtime.OTRequest{
		RequesterID: requesterID,
		ApproverID:  req.ApproverID,
		StartTime:   req.Start,
		EndTime:     req.End,
		Reason:      req.Reason,
		Status:      overtime.StatusPending,
	})
	if err != nil {
		return overtime.OTRequestResponse{}, fmt.Errorf("failed to create OT request: %w", err)
	}

	// Re-read for the joined display names.
	full, err := o.OTRequestRepository.GetByID(ctx, created.ID)
	if err != nil {
		return toResponse(created), nil
	}
	return toResponse(full), nil
}

// ListMine implements overtime.OTService.
func (o *OTServiceImpl) ListMine(ctx context.Context) ([]overtime.OTRequestResponse, error) {
	requesterID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := o.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list OT requests: %w", err)
	}

	responses := make([]overtime.OTRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// ListAll implements overtime.OTService.
func (o *OTServiceImpl) ListAll(ctx context.Context) ([]overtime.OTRequestResponse, error) {
	requests, err := o.OTRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list OT requests: %w", err)
	}

	responses := make([]overtime.OTRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// decide applies a stage decision and persists it.
func (o *OTServiceImpl) decide(ctx context.Context, requestID string, target overtime.Status, rejectReason string) (overtime.OTRequestResponse, error) {
	callerID, err := userIDFromContext(ctx)
	if err != nil {
		return overtime.OTRequestResponse{}, err
	}

	request, err := o.OTRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OTRequestResponse{}, err
	}

	switch target {
	case overtime.StatusSeniorApproved:
		// Senior stage: only the designated approver, only while pending.
		if request.Status != overtime.StatusPending {
			return overtime.OTRequestResponse{}, overtime.ErrAlreadyProcessed
		}
		if request.ApproverID != callerID {
			return overtime.OTRequestResponse{}, overtime.ErrNotDesignatedApprover
		}
	case overtime.StatusApproved:
		// Admin stage: the request must have cleared the senior stage.
		if request.Status.IsFinal() {
			return overtime.OTRequestResponse{}, overtime.ErrAlreadyProcessed
		}
		if request.Status != overtime.StatusSeniorApproved {
			return overtime.OTRequestResponse{}, overtime.ErrNotAwaitingAdmin
		}
	case overtime.StatusRejected:
		if request.Status.IsFinal() {
			return overtime.OTRequestResponse{}, overtime.ErrAlreadyProcessed
		}
		if rejectReason == "" {
			return overtime.OTRequestResponse{}, overtime.ErrRejectReasonRequired
		}
		// A senior rejecting must be the designated approver; once the
		// request awaits the admin stage any admin may reject it, which
		// the router's role guard already covers.
		if request.Status == overtime.StatusPending && request.ApproverID != callerID {
			caller, err := o.UserRepository.GetByID(ctx, callerID)
			if err != nil || !caller.IsAdmin() {
				return overtime.OTRequestResponse{}, overtime.ErrNotDesignatedApprover
			}
		}
	}

	now := time.Now().UTC()
	request.Status = target
	request.DecidedBy = &callerID
	request.DecidedAt = &now
	if target == overtime.StatusRejected {
		request.RejectReason = &rejectReason
	}

	if err := o.OTRequestRepository.Update(ctx, request); err != nil {
		return overtime.OTRequestResponse{}, fmt.Errorf("failed to update OT request: %w", err)
	}

	updated, err := o.OTRequestRepository.GetByID(ctx, request.ID)
	if err != nil {
		return toResponse(request), nil
	}
	return toResponse(updated), nil
}

// SeniorDecide implements overtime.OTService.
func (o *OTServiceImpl) SeniorDecide(ctx context.Context, req overtime.SeniorDecisionRequest) (overtime.OTRequestResponse, error) {
	if validator.IsEmpty(req.RequestID) {
		return overtime.OTRequestResponse{}, validator.ValidationErrors{
			{Field: "ot_id", Message: "ot_id is required"},
		}
	}

	target, ok := overtime.ParseSeniorCode(req.Status)
	if !ok || target == overtime.StatusPending {
		return overtime.OTRequestResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "status must be 1 (approve) or 2 (reject)"},
		}
	}

	return o.decide(ctx, req.RequestID, target, req.RejectReason)
}

// SeniorReject implements overtime.OTService.
func (o *OTServiceImpl) SeniorReject(ctx context.Context, requestID, reason string) (overtime.OTRequestResponse, error) {
	if validator.IsEmpty(reason) {
		return overtime.OTRequestResponse{}, overtime.ErrRejectReasonRequired
	}
	return o.decide(ctx, requestID, overtime.StatusRejected, reason)
}

// AdminDecide implements overtime.OTService.
func (o *OTServiceImpl) AdminDecide(ctx context.Context, req overtime.AdminDecisionRequest) (overtime.OTRequestResponse, error) {
	if validator.IsEmpty(req.RequestID) {
		return overtime.OTRequestResponse{}, validator.ValidationErrors{
			{Field: "request_id", Message: "request_id is required"},
		}
	}

	target, ok := overtime.ParseAdminCode(req.Status)
	if !ok || target == overtime.StatusSeniorApproved {
		return overtime.OTRequestResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "status must be 3 (approve) or 4 (reject)"},
		}
	}

	return o.decide(ctx, req.RequestID, target, req.RejectReason)
}

// AdminReject implements overtime.OTService.
func (o *OTServiceImpl) AdminReject(ctx context.Context, requestID, reason string) (overtime.OTRequestResponse, error) {
	if validator.IsEmpty(reason) {
		return overtime.OTRequestResponse{}, overtime.ErrRejectReasonRequired
	}

	request, err := o.OTRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return overtime.OTRequestResponse{}, err
	}
	if request.Status.IsFinal() {
		return overtime.OTRequestResponse{}, overtime.ErrAlreadyProcessed
	}
	if request.Status != overtime.StatusSeniorApproved {
		return overtime.OTRequestResponse{}, overtime.ErrNotAwaitingAdmin
	}

	return o.decide(ctx, requestID, overtime.StatusRejected, reason)
}

func monthRange(filter overtime.MonthFilter) (time.Time, time.Time) {
	from := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// MonthlyTotals implements overtime.OTService.
func (o *OTServiceImpl) MonthlyTotals(ctx context.Context, filter overtime.MonthFilter) (overtime.MonthlyTotalsResponse, error) {
	if err := filter.Validate(); err != nil {
		return overtime.MonthlyTotalsResponse{}, err
	}

	from, to := monthRange(filter)
	requests, err := o.ListApprovedInRange(ctx, nil, from, to)
	if err != nil {
		return overtime.MonthlyTotalsResponse{}, fmt.Errorf("failed to list approved OT requests: %w", err)
	}

	totals := make(map[string]worktime.Duration)
	names := make(map[string]string)
	for _, r := range requests {
		totals[r.RequesterID] = totals[r.RequesterID].Add(r.Duration())
		if r.RequesterName != nil {
			names[r.RequesterID] = *r.RequesterName
		}
	}

	users := make([]overtime.UserTotal, 0, len(totals))
	for userID, total := range totals {
		users = append(users, overtime.UserTotal{
			UserID:     userID,
			UserName:   names[userID],
			TotalHours: total.DecimalHours(),
			TotalText:  worktime.FormatHHMM(total),
		})
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].UserName != users[j].UserName {
			return users[i].UserName < users[j].UserName
		}
		return users[i].UserID < users[j].UserID
	})

	return overtime.MonthlyTotalsResponse{
		Month:  filter.Month,
		Year:   filter.Year,
		Totals: users,
	}, nil
}

// UserMonthlyTotal implements overtime.OTService.
func (o *OTServiceImpl) UserMonthlyTotal(ctx context.Context, userID string, filter overtime.MonthFilter) (overtime.UserTotal, error) {
	if err := filter.Validate(); err != nil {
		return overtime.UserTotal{}, err
	}

	userData, err := o.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return overtime.UserTotal{}, err
	}

	from, to := monthRange(filter)
	requests, err := o.ListApprovedInRange(ctx, &userID, from, to)
	if err != nil {
		return overtime.UserTotal{}, fmt.Errorf("failed to list approved OT requests: %w", err)
	}

	var total worktime.Duration
	for _, r := range requests {
		total = total.Add(r.Duration())
	}

	return overtime.UserTotal{
		UserID:     userID,
		UserName:   userData.FullName(),
		TotalHours: total.DecimalHours(),
		TotalText:  worktime.FormatHHMM(total),
	}, nil
}
