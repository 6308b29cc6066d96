package converter

import (
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAppointmentRequestToEntity builds a new appointment owned by ownerID, filling defaults.
func CreateAppointmentRequestToEntity(req *dto.CreateAppointmentRequest, ownerID uuid.UUID) *entity.Appointment {
	appointment := &entity.Appointment{
		UserID:       ownerID,
		Title:        req.Title,
		Type:         entity.AppointmentType(req.Type),
		DateTime:     req.DateTime.Time,
		Duration:     entity.DefaultAppointmentDuration,
		Location:     entity.Location{Type: entity.DefaultLocationType},
		Status:       entity.AppointmentStatusScheduled,
		Notes:        req.Notes,
		ReminderSent: req.ReminderSent,
	}
	if req.Provider != nil {
		appointment.Provider = providerFromPayload(req.Provider)
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Location != nil {
		appointment.Location = locationFromPayload(req.Location)
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}
	return appointment
}

// MergeAppointment copies the provided fields of req onto appointment.
// Owner, id and timestamps are never touched.
func MergeAppointment(appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	if req.Title != nil {
		appointment.Title = *req.Title
	}
	if req.Type != nil {
		appointment.Type = entity.AppointmentType(*req.Type)
	}
	if req.Provider != nil {
		appointment.Provider = providerFromPayload(req.Provider)
	}
	if req.DateTime != nil && !req.DateTime.IsZero() {
		appointment.DateTime = req.DateTime.Time
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Location != nil {
		appointment.Location = locationFromPayload(req.Location)
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.ReminderSent != nil {
		appointment.ReminderSent = *req.ReminderSent
	}
}

func providerFromPayload(p *dto.ProviderPayload) entity.Provider {
	return entity.Provider{
		Name:      p.Name,
		Specialty: p.Specialty,
		Facility:  p.Facility,
	}
}

func locationFromPayload(p *dto.LocationPayload) entity.Location {
	location := entity.Location{
		Type:    p.Type,
		Address: p.Address,
	}
	if location.Type == "" {
		location.Type = entity.DefaultLocationType
	}
	return location
}

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// The owner summary is included only when User was preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		UserID:       appointment.UserID,
		User:         UserToOwner(appointment.User),
		Title:        appointment.Title,
		Type:         string(appointment.Type),
		Provider:     appointment.Provider,
		DateTime:     appointment.DateTime,
		Duration:     appointment.Duration,
		Location:     appointment.Location,
		Status:       string(appointment.Status),
		Notes:        appointment.Notes,
		ReminderSent: appointment.ReminderSent,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
