// Package rules evaluates medical threshold rules against new records.
//
// Every function here is pure: it takes the new record (and, for the
// feeding rule, the existing record set) and returns zero or one derived
// entity. The repository owns persistence of whatever is returned.
package rules

import (
	"fmt"
	"time"

	"github.com/mkuiper/kraamlog/internal/models"
)

// Baby thresholds (°C, level, interval).
const (
	babyTempLow      = 36.0
	babyTempHigh     = 37.5
	babyTempCritLow  = 35.0
	babyTempCritHigh = 38.0

	jaundiceWarnLevel = 4
	jaundiceCritLevel = 5

	feedingMaxGap = 4 * time.Hour
)

// Mother thresholds (°C, mmHg, pain scale).
const (
	motherFever     = 38.0
	motherFeverCrit = 38.5

	systolicHigh      = 140
	diastolicHigh     = 90
	systolicLow       = 90
	diastolicLow      = 60
	systolicCritHigh  = 160
	diastolicCritHigh = 100
	systolicCritLow   = 80

	painWarnLevel = 8
)

// EvaluateBabyRecord inspects a newly added baby record against the
// fixed thresholds and returns at most one alert. The existing set is
// the post-append record collection; the feeding rule only considers
// records with a strictly earlier timestamp, so the new record never
// matches itself.
func EvaluateBabyRecord(rec models.BabyRecord, existing []models.BabyRecord) *models.Alert {
	switch rec.Type {
	case models.BabyTemperature:
		return babyTemperatureAlert(rec)
	case models.BabyJaundice:
		return jaundiceAlert(rec)
	case models.BabyFeeding:
		return feedingGapAlert(rec, existing)
	}
	return nil
}

func babyTemperatureAlert(rec models.BabyRecord) *models.Alert {
	if rec.Value == nil {
		return nil
	}
	v, ok := rec.Value.Float64()
	if !ok {
		return nil
	}
	if v >= babyTempLow && v <= babyTempHigh {
		return nil
	}

	severity := models.AlertWarning
	if v < babyTempCritLow || v > babyTempCritHigh {
		severity = models.AlertCritical
	}

	direction := "te hoog"
	if v < babyTempLow {
		direction = "te laag"
	}

	return &models.Alert{
		Type:            severity,
		Category:        models.AlertBaby,
		Message:         fmt.Sprintf("Temperatuur baby %s: %.1f°C", direction, v),
		RelatedRecordID: rec.ID,
	}
}

func jaundiceAlert(rec models.BabyRecord) *models.Alert {
	if rec.JaundiceLevel == nil || *rec.JaundiceLevel < jaundiceWarnLevel {
		return nil
	}

	level := *rec.JaundiceLevel
	severity := models.AlertWarning
	message := fmt.Sprintf("Geelzucht niveau %d waargenomen, extra controle nodig", level)
	if level >= jaundiceCritLevel {
		severity = models.AlertCritical
		message = fmt.Sprintf("Ernstige geelzucht (niveau %d), waarschuw de verloskundige", level)
	}

	return &models.Alert{
		Type:            severity,
		Category:        models.AlertBaby,
		Message:         message,
		RelatedRecordID: rec.ID,
	}
}

func feedingGapAlert(rec models.BabyRecord, existing []models.BabyRecord) *models.Alert {
	// Most recent feeding strictly before the new record. A feeding at
	// the identical timestamp is ignored.
	var prev *models.BabyRecord
	for i := range existing {
		r := &existing[i]
		if r.Type != models.BabyFeeding || !r.Timestamp.Before(rec.Timestamp) {
			continue
		}
		if prev == nil || r.Timestamp.After(prev.Timestamp) {
			prev = r
		}
	}
	if prev == nil {
		return nil
	}

	gap := rec.Timestamp.Sub(prev.Timestamp)
	if gap <= feedingMaxGap {
		return nil
	}

	return &models.Alert{
		Type:            models.AlertWarning,
		Category:        models.AlertBaby,
		Message:         fmt.Sprintf("Laatste voeding was %.1f uur geleden", gap.Hours()),
		RelatedRecordID: rec.ID,
	}
}

// EvaluateMotherRecord inspects a newly added mother record against the
// fixed thresholds and returns at most one alert.
func EvaluateMotherRecord(rec models.MotherRecord) *models.Alert {
	switch rec.Type {
	case models.MotherTemperature:
		return motherTemperatureAlert(rec)
	case models.MotherBloodPressure:
		return bloodPressureAlert(rec)
	case models.MotherPain:
		return painAlert(rec)
	}
	return nil
}

func motherTemperatureAlert(rec models.MotherRecord) *models.Alert {
	if rec.Value == nil {
		return nil
	}
	v, ok := rec.Value.Float64()
	if !ok || v <= motherFever {
		return nil
	}

	severity := models.AlertWarning
	message := fmt.Sprintf("Moeder heeft verhoging of koorts: %.1f°C", v)
	if v > motherFeverCrit {
		severity = models.AlertCritical
		message = fmt.Sprintf("Moeder heeft hoge koorts: %.1f°C", v)
	}

	return &models.Alert{
		Type:            severity,
		Category:        models.AlertMother,
		Message:         message,
		RelatedRecordID: rec.ID,
	}
}

func bloodPressureAlert(rec models.MotherRecord) *models.Alert {
	if rec.BloodPressure == nil {
		return nil
	}
	s, d := rec.BloodPressure.Systolic, rec.BloodPressure.Diastolic

	abnormal := s > systolicHigh || d > diastolicHigh || s < systolicLow || d < diastolicLow
	if !abnormal {
		return nil
	}

	severity := models.AlertWarning
	if s > systolicCritHigh || d > diastolicCritHigh || s < systolicCritLow {
		severity = models.AlertCritical
	}

	return &models.Alert{
		Type:            severity,
		Category:        models.AlertMother,
		Message:         fmt.Sprintf("Afwijkende bloeddruk: %d/%d mmHg", s, d),
		RelatedRecordID: rec.ID,
	}
}

func painAlert(rec models.MotherRecord) *models.Alert {
	if rec.PainLevel == nil || *rec.PainLevel < painWarnLevel {
		return nil
	}

	return &models.Alert{
		Type:            models.AlertWarning,
		Category:        models.AlertMother,
		Message:         fmt.Sprintf("Hoge pijnscore: %d/10", *rec.PainLevel),
		RelatedRecordID: rec.ID,
	}
}
