package converter

import (
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
)

// CreateDoctorRequestToEntity builds a directory entry; doctors are active unless told otherwise.
func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	doctor := &entity.Doctor{
		Name:         req.Name,
		Specialty:    req.Specialty,
		Facility:     req.Facility,
		ImageURL:     req.ImageURL,
		Bio:          req.Bio,
		Availability: nonNil(req.Availability),
		Active:       true,
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}
	return doctor
}

func MergeDoctor(doctor *entity.Doctor, req *dto.UpdateDoctorRequest) {
	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Facility != nil {
		doctor.Facility = *req.Facility
	}
	if req.ImageURL != nil {
		doctor.ImageURL = *req.ImageURL
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}
	if req.Availability != nil {
		doctor.Availability = req.Availability
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Facility:     doctor.Facility,
		ImageURL:     doctor.ImageURL,
		Bio:          doctor.Bio,
		Availability: nonNil(doctor.Availability),
		Active:       doctor.Active,
		CreatedAt:    doctor.CreatedAt,
		UpdatedAt:    doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
