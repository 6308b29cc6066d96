package entity

import "gorm.io/datatypes"

// Doctor is an entry of the public doctor directory
type Doctor struct {
	Base
	Name         string                      `gorm:"type:varchar(255);not null" json:"name"`
	Specialty    string                      `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Facility     string                      `gorm:"type:varchar(255);not null" json:"facility"`
	ImageURL     string                      `gorm:"type:text" json:"imageUrl,omitempty"`
	Bio          string                      `gorm:"type:text" json:"bio,omitempty"`
	Availability datatypes.JSONSlice[string] `json:"availability"`
	Active       bool                        `gorm:"not null;index" json:"active"`
}

func (Doctor) TableName() string {
	return "doctors"
}
