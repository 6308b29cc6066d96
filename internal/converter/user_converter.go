package converter

import (
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password hash is never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Role:    string(user.Role),
		Profile: ProfileToResponse(user.Profile),
		MedicalInfo: dto.MedicalInfoResponse{
			Conditions:       nonNil(user.MedicalInfo.Conditions),
			Allergies:        nonNil(user.MedicalInfo.Allergies),
			Medications:      nonNil(user.MedicalInfo.Medications),
			Hospitalizations: nonNil(user.MedicalInfo.Hospitalizations),
		},
		Lifestyle:           user.Lifestyle,
		RiskScore:           user.RiskScore,
		OnboardingCompleted: user.OnboardingCompleted,
		PreferredLanguage:   user.PreferredLanguage,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

func ProfileToResponse(profile entity.Profile) dto.ProfileResponse {
	response := dto.ProfileResponse{
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		DateOfBirth: profile.DateOfBirth,
		Gender:      profile.Gender,
		Phone:       profile.Phone,
		Address:     profile.Address,
	}
	if !profile.EmergencyContact.IsZero() {
		contact := profile.EmergencyContact
		response.EmergencyContact = &contact
	}
	return response
}

func UserToAuthResponse(user *entity.User, token string) *dto.AuthResponse {
	return &dto.AuthResponse{
		ID:                  user.ID,
		Email:               user.Email,
		Role:                string(user.Role),
		Profile:             ProfileToResponse(user.Profile),
		OnboardingCompleted: user.OnboardingCompleted,
		Token:               token,
	}
}

// UserToOwner returns nil when the owner was not loaded.
func UserToOwner(user *entity.User) *dto.OwnerResponse {
	if user == nil {
		return nil
	}
	return &dto.OwnerResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.Profile.FirstName,
		LastName:  user.Profile.LastName,
	}
}

// MergeUser applies the provided members of req onto user. Within profile and
// lifestyle each provided key overwrites the stored one; address and
// emergency contact are replaced as a whole.
func MergeUser(user *entity.User, req *dto.UpdateProfileRequest) {
	if p := req.Profile; p != nil {
		profile := &user.Profile
		if p.FirstName != nil {
			profile.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			profile.LastName = *p.LastName
		}
		if p.DateOfBirth != nil {
			profile.DateOfBirth = p.DateOfBirth.Ptr()
		}
		if p.Gender != nil {
			profile.Gender = *p.Gender
		}
		if p.Phone != nil {
			profile.Phone = *p.Phone
		}
		if p.Address != nil {
			profile.Address = entity.Address{
				Street:  p.Address.Street,
				City:    p.Address.City,
				State:   p.Address.State,
				ZipCode: p.Address.ZipCode,
			}
		}
		if p.EmergencyContact != nil {
			profile.EmergencyContact = entity.EmergencyContact{
				Name:         p.EmergencyContact.Name,
				Relationship: p.EmergencyContact.Relationship,
				Phone:        p.EmergencyContact.Phone,
			}
		}
	}

	if m := req.MedicalInfo; m != nil {
		if m.Conditions != nil {
			user.MedicalInfo.Conditions = m.Conditions
		}
		if m.Allergies != nil {
			user.MedicalInfo.Allergies = m.Allergies
		}
		if m.Medications != nil {
			user.MedicalInfo.Medications = m.Medications
		}
		if m.Hospitalizations != nil {
			hospitalizations := make([]entity.Hospitalization, len(m.Hospitalizations))
			for i, h := range m.Hospitalizations {
				hospitalizations[i] = entity.Hospitalization{
					Date:     h.Date.Ptr(),
					Reason:   h.Reason,
					Hospital: h.Hospital,
					Duration: h.Duration,
				}
			}
			user.MedicalInfo.Hospitalizations = hospitalizations
		}
	}

	if l := req.Lifestyle; l != nil {
		lifestyle := &user.Lifestyle
		if l.SmokingStatus != nil {
			lifestyle.SmokingStatus = *l.SmokingStatus
		}
		if l.AlcoholConsumption != nil {
			lifestyle.AlcoholConsumption = *l.AlcoholConsumption
		}
		if l.ExerciseFrequency != nil {
			lifestyle.ExerciseFrequency = *l.ExerciseFrequency
		}
		if l.DietType != nil {
			lifestyle.DietType = *l.DietType
		}
		if l.SleepHours != nil {
			lifestyle.SleepHours = l.SleepHours.Value
		}
	}

	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}
	if req.OnboardingCompleted != nil {
		user.OnboardingCompleted = *req.OnboardingCompleted
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
