package http

import (
	"net/http"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Profile(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListApprovers(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Profile implements UserHandler.
func (h *userHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.Profile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListApprovers implements UserHandler.
func (h *userHandlerImpl) ListApprovers(w http.ResponseWriter, r *http.Request) {
	results, err := h.userService.ListApprovers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
