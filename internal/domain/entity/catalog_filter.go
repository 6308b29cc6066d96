package entity

// DoctorFilter is a domain-level filter for the doctor directory.
type DoctorFilter struct {
	Active *bool
}

// HealthResourceFilter is a domain-level filter for the resource catalog.
// Tags match when a resource carries any of them.
type HealthResourceFilter struct {
	Category string
	Tags     []string
	Featured *bool
}
