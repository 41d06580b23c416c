// Package models provides data model definitions for the kraamlog backend.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// BabyRecordType discriminates baby observations.
type BabyRecordType string

const (
	BabySleep       BabyRecordType = "sleep"
	BabyFeeding     BabyRecordType = "feeding"
	BabyTemperature BabyRecordType = "temperature"
	BabyDiaper      BabyRecordType = "diaper"
	BabyJaundice    BabyRecordType = "jaundice"
	BabyNote        BabyRecordType = "note"
	BabyPumping     BabyRecordType = "pumping"
	BabyWeight      BabyRecordType = "weight"
)

// NoteCategory classifies free-text notes.
type NoteCategory string

const (
	NoteGeneral  NoteCategory = "general"
	NoteQuestion NoteCategory = "question"
	NoteTodo     NoteCategory = "todo"
)

// Role identifies who created or is assigned an entity.
type Role string

const (
	RoleParents   Role = "ouders"
	RoleKraamhulp Role = "kraamhulp"
)

// Numeric is a measurement value that tolerates both JSON numbers and
// strings on the wire. Imported documents sometimes carry temperatures
// as strings; non-numeric values are excluded from analytics.
type Numeric string

// UnmarshalJSON accepts a JSON number or string.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*n = Numeric(str)
		return nil
	}
	*n = Numeric(s)
	return nil
}

// MarshalJSON emits a JSON number when the value parses as one.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(n), 64); err == nil {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// Float64 returns the numeric value and whether it parsed.
func (n Numeric) Float64() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumericOf wraps a float64 as a Numeric.
func NumericOf(v float64) Numeric {
	return Numeric(strconv.FormatFloat(v, 'f', -1, 64))
}

// BabyRecord is one observation about the baby. Type determines which
// optional fields are meaningful; the rest stay nil and are omitted on
// the wire.
type BabyRecord struct {
	ID        string         `json:"id"`
	Type      BabyRecordType `json:"type"`
	Timestamp time.Time      `json:"timestamp"`

	// sleep
	Duration *int `json:"duration,omitempty"` // minutes

	// feeding / pumping
	FeedingType *string  `json:"feedingType,omitempty"`
	Amount      *float64 `json:"amount,omitempty"` // ml
	BreastSide  *string  `json:"breastSide,omitempty"`

	// temperature
	Value *Numeric `json:"value,omitempty"` // °C

	// diaper
	DiaperType   *string `json:"diaperType,omitempty"`
	DiaperAmount *string `json:"diaperAmount,omitempty"`

	// jaundice
	JaundiceLevel *int `json:"jaundiceLevel,omitempty"` // 1 (mild) to 5 (severe)

	// note
	NoteCategory *NoteCategory `json:"noteCategory,omitempty"`

	// weight
	Weight *float64 `json:"weight,omitempty"` // grams

	Notes *string `json:"notes,omitempty"`
}
