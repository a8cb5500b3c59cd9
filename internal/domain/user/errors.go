package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrSeniorAccessRequired   = errors.New("senior access required")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrApproverNotEligible    = errors.New("selected approver cannot approve overtime requests")
	ErrPermissionDenied       = errors.New("permission denied")
)
