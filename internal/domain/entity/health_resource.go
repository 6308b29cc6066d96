package entity

import (
	"time"

	"gorm.io/datatypes"
)

type ResourceCategory string

const (
	ResourceCategoryArticle      ResourceCategory = "article"
	ResourceCategoryVideo        ResourceCategory = "video"
	ResourceCategoryExercise     ResourceCategory = "exercise"
	ResourceCategoryGuide        ResourceCategory = "guide"
	ResourceCategoryTool         ResourceCategory = "tool"
	ResourceCategorySupportGroup ResourceCategory = "support-group"
	ResourceCategoryOther        ResourceCategory = "other"
)

// HealthResource is an educational catalog entry. Views and Likes are only ever incremented.
type HealthResource struct {
	Base
	Title             string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description       string                      `gorm:"type:text" json:"description,omitempty"`
	Category          ResourceCategory            `gorm:"type:varchar(32);not null;index" json:"category"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
	Content           string                      `gorm:"type:text" json:"content,omitempty"`
	URL               string                      `gorm:"type:text" json:"url,omitempty"`
	ImageURL          string                      `gorm:"type:text" json:"imageUrl,omitempty"`
	Author            string                      `gorm:"type:varchar(255)" json:"author,omitempty"`
	PublishDate       *time.Time                  `json:"publishDate,omitempty"`
	Difficulty        string                      `gorm:"type:varchar(20)" json:"difficulty,omitempty"`
	Duration          string                      `gorm:"type:varchar(50)" json:"duration,omitempty"`
	Featured          bool                        `gorm:"not null;index" json:"featured"`
	RelatedConditions datatypes.JSONSlice[string] `json:"relatedConditions"`
	Views             int64                       `gorm:"not null" json:"views"`
	Likes             int64                       `gorm:"not null" json:"likes"`
}

func (HealthResource) TableName() string {
	return "health_resources"
}

// HasAnyTag reports whether the resource carries at least one of tags.
func (r *HealthResource) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range r.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
