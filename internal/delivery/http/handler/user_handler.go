package handler

import (
	"errors"
	"net/http"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/usecase"
	"nextcare-api/pkg/response"
	"nextcare-api/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotAuthorized):
		response.Unauthorized(w, "Not authorized as admin")
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	default:
		response.InternalServerError(w, "")
	}
}

// GetProfile returns the caller's own profile
// @Summary Get profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetProfile(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, user)
}

// UpdateProfile merges the provided sections into the caller's profile and rescores it
// @Summary Update profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile Update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} response.Message
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.userUsecase.GetAllUsers(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, users)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	userID, ok := pathID(w, r, "User not found")
	if !ok {
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), caller, userID); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, "User removed")
}
