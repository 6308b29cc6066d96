package entity

// Role is the access level carried in a user's credential.
type Role string

const (
	RoleAdmin              Role = "admin"
	RolePatient            Role = "patient"
	RoleHealthcareProvider Role = "healthcare_provider"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePatient, RoleHealthcareProvider:
		return true
	}
	return false
}
