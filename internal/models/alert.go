package models

import "time"

// AlertType is the severity of an alert.
type AlertType string

const (
	AlertInfo     AlertType = "info"
	AlertWarning  AlertType = "warning"
	AlertCritical AlertType = "critical"
)

// AlertCategory names who the alert concerns.
type AlertCategory string

const (
	AlertBaby    AlertCategory = "baby"
	AlertMother  AlertCategory = "mother"
	AlertGeneral AlertCategory = "general"
)

// Alert is a system-raised warning. Acknowledgement is one-way: once
// acknowledged an alert stays acknowledged, though re-acknowledging
// overwrites the acknowledgement fields.
type Alert struct {
	ID                string        `json:"id"`
	Type              AlertType     `json:"type"`
	Category          AlertCategory `json:"category"`
	Message           string        `json:"message"`
	RelatedRecordID   string        `json:"relatedRecordId,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	Acknowledged      bool          `json:"acknowledged,omitempty"`
	AcknowledgedBy    string        `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt    *time.Time    `json:"acknowledgedAt,omitempty"`
	ResolutionComment string        `json:"resolutionComment,omitempty"`
}
