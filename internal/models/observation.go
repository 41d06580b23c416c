package models

import "time"

// ObservationCategory classifies a family observation.
type ObservationCategory string

const (
	ObservationBonding     ObservationCategory = "bonding"
	ObservationEnvironment ObservationCategory = "environment"
	ObservationSupport     ObservationCategory = "support"
	ObservationHealth      ObservationCategory = "health"
	ObservationGeneral     ObservationCategory = "general"
)

// FamilyObservation is a free-text professional observation by the
// kraamhulp about the family situation.
type FamilyObservation struct {
	ID              string              `json:"id"`
	Category        ObservationCategory `json:"category"`
	Observation     string              `json:"observation"`
	Concerns        []string            `json:"concerns,omitempty"`
	Recommendations []string            `json:"recommendations,omitempty"`
	CreatedBy       Role                `json:"createdBy"`
	Timestamp       time.Time           `json:"timestamp"`
}
