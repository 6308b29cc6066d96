package handler

import (
	"errors"
	"net/http"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/usecase"
	"nextcare-api/pkg/response"
	"nextcare-api/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrNotAuthorized):
		response.Unauthorized(w, "Not authorized as admin")
	default:
		response.InternalServerError(w, "")
	}
}

// GetAllDoctors lists the directory, newest first
// @Summary List doctors
// @Tags Doctors
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} dto.DoctorResponse
// @Router /doctors [get]
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	var filter entity.DoctorFilter
	if r.URL.Query().Has("active") {
		active := r.URL.Query().Get("active") == "true"
		filter.Active = &active
	}

	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Doctor not found")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.CreateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Doctor not found")
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), caller, id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Doctor not found")
	if !ok {
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), caller, id); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, "Doctor removed")
}
