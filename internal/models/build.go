package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultBuildName is applied to builds saved without a name.
const DefaultBuildName = "My Custom Build"

// Component is one part of a recommended build.
type Component struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Specs     string `json:"specs"`
	Price     Amount `json:"price"`
	Rationale string `json:"rationale"`
}

// VideoReview is a video found for one of the build's review components.
type VideoReview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	VideoID     string `json:"videoId"`
	Component   string `json:"component"`
}

// BuildOwner is the subset of the owning user shown in admin listings.
type BuildOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Build is a saved PC configuration owned by one user.
type Build struct {
	ID                 string                           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID             string                           `json:"userId" gorm:"index;type:varchar(36);not null"`
	BuildName          string                           `json:"buildName" gorm:"type:varchar(255);not null"`
	Summary            string                           `json:"summary" gorm:"type:text;not null" validate:"required"`
	Components         datatypes.JSONSlice[Component]   `json:"components"`
	TotalCost          Amount                           `json:"totalCost" validate:"gte=0"`
	CompatibilityNotes string                           `json:"compatibilityNotes" gorm:"type:text"`
	ReviewComponents   datatypes.JSONSlice[string]      `json:"reviewComponents"`
	YoutubeReviews     datatypes.JSONSlice[VideoReview] `json:"youtubeReviews"`
	UseCase            string                           `json:"useCase" gorm:"type:varchar(100)"`
	Owner              *BuildOwner                      `json:"user,omitempty" gorm:"-"`
	CreatedAt          time.Time                        `json:"createdAt" gorm:"index"`
	UpdatedAt          time.Time                        `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the build.
func (b *Build) OwnedBy(userID string) bool {
	return b.UserID != "" && b.UserID == userID
}
