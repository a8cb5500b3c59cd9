package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/overtime"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/report"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence refusal carries the measured distance for the client message.
	var geofenceErr *attendance.OutsideGeofenceError
	if errors.As(err, &geofenceErr) {
		ForbiddenWithDetails(w, geofenceErr.Error(), map[string]string{
			"distance_meters": fmt.Sprintf("%.0f", geofenceErr.DistanceMeters),
			"radius_meters":   fmt.Sprintf("%.0f", geofenceErr.RadiusMeters),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrSeniorAccessRequired):
		Forbidden(w, "Senior access required")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrApproverNotEligible):
		BadRequest(w, "Selected approver cannot approve overtime requests", nil)
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Permission denied")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in to close")
	case errors.Is(err, attendance.ErrEntryNotFound):
		NotFound(w, "Attendance entry not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrNotDesignatedApprover):
		Forbidden(w, "Only the designated approver may act on this request")
	case errors.Is(err, overtime.ErrNotAwaitingAdmin):
		Conflict(w, "Overtime request is not awaiting admin review")
	case errors.Is(err, overtime.ErrRejectReasonRequired):
		BadRequest(w, "A reason is required to reject an overtime request", nil)
	case errors.Is(err, overtime.ErrEndBeforeStart):
		BadRequest(w, "End time must be after start time", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth), errors.Is(err, report.ErrInvalidYear),
		errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
