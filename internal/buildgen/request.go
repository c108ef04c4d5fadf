package buildgen

import (
	"errors"
	"strings"

	"pcbuilder/internal/models"
)

// NoPreference is the brand choice meaning any manufacturer is acceptable.
const NoPreference = "No Preference"

// ErrMissingInput is returned when budget or use case is absent.
var ErrMissingInput = errors.New("budget and use case are required")

// Request is the build form submitted by a user.
type Request struct {
	Budget      models.Amount `json:"budget"`
	UseCase     string        `json:"useCase"`
	CPUBrand    string        `json:"cpuBrand"`
	GPUBrand    string        `json:"gpuBrand"`
	Resolution  string        `json:"resolution"`
	Peripherals []string      `json:"peripherals"`
}

// Normalize trims the free-text fields and defaults peripherals to empty.
func (r *Request) Normalize() {
	r.UseCase = strings.TrimSpace(r.UseCase)
	r.CPUBrand = strings.TrimSpace(r.CPUBrand)
	r.GPUBrand = strings.TrimSpace(r.GPUBrand)
	r.Resolution = strings.TrimSpace(r.Resolution)

	peripherals := make([]string, 0, len(r.Peripherals))
	for _, p := range r.Peripherals {
		if p = strings.TrimSpace(p); p != "" {
			peripherals = append(peripherals, p)
		}
	}
	r.Peripherals = peripherals
}

// Validate checks the required fields.
func (r *Request) Validate() error {
	if r.Budget <= 0 || strings.TrimSpace(r.UseCase) == "" {
		return ErrMissingInput
	}
	return nil
}

// HasPeripheral reports whether name was requested.
func (r *Request) HasPeripheral(name string) bool {
	for _, p := range r.Peripherals {
		if strings.EqualFold(p, name) {
			return true
		}
	}
	return false
}

// Recommendation is the build proposal returned to the caller. It has the
// same shape as a saved build payload.
type Recommendation struct {
	Summary            string               `json:"summary"`
	Components         []models.Component   `json:"components"`
	TotalCost          models.Amount        `json:"totalCost"`
	CompatibilityNotes string               `json:"compatibilityNotes"`
	ReviewComponents   []string             `json:"reviewComponents"`
	YoutubeReviews     []models.VideoReview `json:"youtubeReviews"`
}
