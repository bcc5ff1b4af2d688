package db_models

import (
	"time"
)

type Category string

const (
	CategoryBug     Category = "bug"
	CategoryFeature Category = "feature"
	CategoryGeneral Category = "general"
)

// KnownCategories lists every category a feedback record may carry.
func KnownCategories() []Category {
	return []Category{CategoryBug, CategoryFeature, CategoryGeneral}
}

func IsKnownCategory(c Category) bool {
	switch c {
	case CategoryBug, CategoryFeature, CategoryGeneral:
		return true
	}
	return false
}

// Feedback is a single submitted feedback record. The ID is assigned by the
// in-memory store on append and is immutable afterwards; the gorm tags exist
// only for the optional write-behind archive, which stores the same ids.
type Feedback struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID    string    `json:"user_id" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	Category  Category  `json:"category" gorm:"type:text;default:general"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
