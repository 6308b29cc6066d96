package handler

import (
	"errors"
	"net/http"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/usecase"
	"nextcare-api/pkg/response"
	"nextcare-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrNotAuthorized):
		response.Unauthorized(w, "Not authorized")
	default:
		response.InternalServerError(w, "")
	}
}

// GetMyAppointments lists the caller's appointments, soonest first
// @Summary List own appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, appointments)
}

// GetAllAppointments lists every appointment with its owner
// @Summary List all appointments (admin)
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Failure 401 {object} response.Message
// @Router /appointments/admin/all [get]
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context(), caller)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Appointment not found")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, appointment)
}

// CreateAppointment books an appointment owned by the caller
// @Summary Create appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} response.Message
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Appointment not found")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), caller, id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Appointment not found")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), caller, id); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, "Appointment removed")
}
