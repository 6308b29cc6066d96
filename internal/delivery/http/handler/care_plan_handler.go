package handler

import (
	"errors"
	"net/http"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/usecase"
	"nextcare-api/pkg/response"
	"nextcare-api/pkg/validator"
)

type CarePlanHandler struct {
	carePlanUsecase usecase.CarePlanUsecase
	validator       *validator.CustomValidator
}

func NewCarePlanHandler(carePlanUsecase usecase.CarePlanUsecase, validator *validator.CustomValidator) *CarePlanHandler {
	return &CarePlanHandler{
		carePlanUsecase: carePlanUsecase,
		validator:       validator,
	}
}

func (h *CarePlanHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrCarePlanNotFound):
		response.NotFound(w, "Care plan not found")
	case errors.Is(err, usecase.ErrNotAuthorized):
		response.Unauthorized(w, "Not authorized")
	default:
		response.InternalServerError(w, "")
	}
}

func (h *CarePlanHandler) GetMyCarePlans(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	plans, err := h.carePlanUsecase.GetMyCarePlans(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, plans)
}

func (h *CarePlanHandler) GetAllCarePlans(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	plans, err := h.carePlanUsecase.GetAllCarePlans(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, plans)
}

func (h *CarePlanHandler) GetCarePlan(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Care plan not found")
	if !ok {
		return
	}

	plan, err := h.carePlanUsecase.GetCarePlan(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, plan)
}

func (h *CarePlanHandler) CreateCarePlan(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.CreateCarePlanRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	plan, err := h.carePlanUsecase.CreateCarePlan(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, plan)
}

func (h *CarePlanHandler) UpdateCarePlan(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Care plan not found")
	if !ok {
		return
	}

	var req dto.UpdateCarePlanRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	plan, err := h.carePlanUsecase.UpdateCarePlan(r.Context(), caller, id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, plan)
}

func (h *CarePlanHandler) DeleteCarePlan(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Care plan not found")
	if !ok {
		return
	}

	if err := h.carePlanUsecase.DeleteCarePlan(r.Context(), caller, id); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, "Care plan removed")
}
