package models

import "time"

// MotherRecordType discriminates mother observations.
type MotherRecordType string

const (
	MotherTemperature    MotherRecordType = "temperature"
	MotherBloodPressure  MotherRecordType = "blood_pressure"
	MotherPain           MotherRecordType = "pain"
	MotherMood           MotherRecordType = "mood"
	MotherFeedingSession MotherRecordType = "feeding_session"
	MotherNote           MotherRecordType = "note"
)

// Mood is the fixed 5-point mood scale.
type Mood string

const (
	MoodVeryGood Mood = "very_good"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodBad      Mood = "bad"
	MoodVeryBad  Mood = "very_bad"
)

// BloodPressure is a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// MotherRecord is one observation about the mother. Same lifecycle as
// BabyRecord: immutable after creation, only wiped via clear-all.
type MotherRecord struct {
	ID        string           `json:"id"`
	Type      MotherRecordType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`

	// temperature
	Value *Numeric `json:"value,omitempty"` // °C

	// blood_pressure
	BloodPressure *BloodPressure `json:"bloodPressure,omitempty"`

	// pain
	PainLevel *int `json:"painLevel,omitempty"` // 1 to 10

	// mood
	Mood *Mood `json:"mood,omitempty"`

	// feeding_session
	Duration *int `json:"duration,omitempty"` // minutes

	Notes *string `json:"notes,omitempty"`
}
