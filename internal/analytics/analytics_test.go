// Package analytics tests for daily time-series aggregation.
package analytics

import (
	"testing"
	"time"

	"github.com/mkuiper/kraamlog/internal/models"
)

func at(day string, hour int) time.Time {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}

func feedingAt(day string, hour int) models.BabyRecord {
	return models.BabyRecord{Type: models.BabyFeeding, Timestamp: at(day, hour)}
}

func TestDailyFeedingCounts_GapFilled(t *testing.T) {
	// No feedings at all: every day in range still gets a zero entry.
	counts := DailyFeedingCounts(nil, "2024-01-01", "2024-01-03")

	if len(counts) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(counts))
	}
	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i, want := range wantDates {
		if counts[i].Date != want {
			t.Errorf("entry %d date = %s, want %s", i, counts[i].Date, want)
		}
		if counts[i].Count != 0 {
			t.Errorf("entry %d count = %d, want 0", i, counts[i].Count)
		}
	}
}

func TestDailyFeedingCounts_CountsPerDay(t *testing.T) {
	records := []models.BabyRecord{
		feedingAt("2024-01-01", 8),
		feedingAt("2024-01-01", 12),
		feedingAt("2024-01-03", 9),
		feedingAt("2024-01-05", 9), // outside range
		{Type: models.BabySleep, Timestamp: at("2024-01-01", 14)}, // wrong type
	}

	counts := DailyFeedingCounts(records, "2024-01-01", "2024-01-03")
	if len(counts) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(counts))
	}
	if counts[0].Count != 2 {
		t.Errorf("day 1 count = %d, want 2", counts[0].Count)
	}
	if counts[1].Count != 0 {
		t.Errorf("day 2 count = %d, want 0", counts[1].Count)
	}
	if counts[2].Count != 1 {
		t.Errorf("day 3 count = %d, want 1", counts[2].Count)
	}
}

func TestDailyFeedingCounts_InvalidRange(t *testing.T) {
	if got := DailyFeedingCounts(nil, "not-a-date", "2024-01-03"); got != nil {
		t.Errorf("expected nil for invalid start date, got %v", got)
	}
	if got := DailyFeedingCounts(nil, "2024-01-03", "2024-01-01"); got != nil {
		t.Errorf("expected nil for reversed range, got %v", got)
	}
}

func TestDailyWeights_NoGapFill(t *testing.T) {
	// No weight records in range: empty series, no zero-filled days.
	weights := DailyWeights(nil, "2024-01-01", "2024-01-03")
	if len(weights) != 0 {
		t.Errorf("expected empty series, got %v", weights)
	}
}

func TestDailyWeights_AveragesPerDay(t *testing.T) {
	w := func(day string, hour int, grams float64) models.BabyRecord {
		return models.BabyRecord{Type: models.BabyWeight, Timestamp: at(day, hour), Weight: &grams}
	}
	records := []models.BabyRecord{
		w("2024-01-01", 8, 3500),
		w("2024-01-01", 20, 3520),
		w("2024-01-03", 8, 3560),
	}

	weights := DailyWeights(records, "2024-01-01", "2024-01-03")
	if len(weights) != 2 {
		t.Fatalf("expected 2 entries (days with data only), got %d", len(weights))
	}
	if weights[0].Date != "2024-01-01" || weights[0].Value != 3510 {
		t.Errorf("entry 0 = %+v, want 2024-01-01 avg 3510", weights[0])
	}
	if weights[1].Date != "2024-01-03" || weights[1].Value != 3560 {
		t.Errorf("entry 1 = %+v, want 2024-01-03 avg 3560", weights[1])
	}
}

func TestDailyTemperatures_CoercesAndExcludes(t *testing.T) {
	temp := func(day string, hour int, value string) models.BabyRecord {
		n := models.Numeric(value)
		return models.BabyRecord{Type: models.BabyTemperature, Timestamp: at(day, hour), Value: &n}
	}
	doc := models.NewAppData()
	doc.BabyRecords = []models.BabyRecord{
		temp("2024-01-02", 8, "37.0"),
		temp("2024-01-02", 12, "37.4"),
		temp("2024-01-02", 16, "warm"), // non-numeric, excluded
	}

	series := DailyTemperatures(doc, SubjectBaby, "2024-01-01", "2024-01-03")
	if len(series) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(series))
	}
	if series[0].Value != 37.2 {
		t.Errorf("average = %v, want 37.2 (non-numeric value excluded)", series[0].Value)
	}
}

func TestDailyTemperatures_SubjectMother(t *testing.T) {
	n := models.NumericOf(38.4)
	doc := models.NewAppData()
	doc.MotherRecords = []models.MotherRecord{
		{Type: models.MotherTemperature, Timestamp: at("2024-01-02", 8), Value: &n},
	}
	// A baby temperature on the same day must not leak into the mother series.
	nb := models.NumericOf(36.5)
	doc.BabyRecords = []models.BabyRecord{
		{Type: models.BabyTemperature, Timestamp: at("2024-01-02", 8), Value: &nb},
	}

	series := DailyTemperatures(doc, SubjectMother, "2024-01-01", "2024-01-03")
	if len(series) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(series))
	}
	if series[0].Value != 38.4 {
		t.Errorf("mother series value = %v, want 38.4", series[0].Value)
	}
}

func TestDailyPainLevels(t *testing.T) {
	pain := func(day string, hour, level int) models.MotherRecord {
		return models.MotherRecord{Type: models.MotherPain, Timestamp: at(day, hour), PainLevel: &level}
	}
	records := []models.MotherRecord{
		pain("2024-01-01", 8, 6),
		pain("2024-01-01", 20, 8),
	}

	series := DailyPainLevels(records, "2024-01-01", "2024-01-01")
	if len(series) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(series))
	}
	if series[0].Value != 7 {
		t.Errorf("average pain = %v, want 7", series[0].Value)
	}
}

func TestDailySleepTotals_SumsMinutes(t *testing.T) {
	sleep := func(day string, hour, minutes int) models.BabyRecord {
		return models.BabyRecord{Type: models.BabySleep, Timestamp: at(day, hour), Duration: &minutes}
	}
	records := []models.BabyRecord{
		sleep("2024-01-01", 9, 90),
		sleep("2024-01-01", 14, 120),
		sleep("2024-01-02", 10, 60),
	}

	series := DailySleepTotals(records, "2024-01-01", "2024-01-02")
	if len(series) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(series))
	}
	if series[0].Date != "2024-01-01" || series[0].Value != 210 {
		t.Errorf("entry 0 = %+v, want 210 minutes on 2024-01-01", series[0])
	}
	if series[1].Date != "2024-01-02" || series[1].Value != 60 {
		t.Errorf("entry 1 = %+v, want 60 minutes on 2024-01-02", series[1])
	}
}

func TestSeriesSortedAscending(t *testing.T) {
	w := func(day string, grams float64) models.BabyRecord {
		return models.BabyRecord{Type: models.BabyWeight, Timestamp: at(day, 8), Weight: &grams}
	}
	// Insert out of order.
	records := []models.BabyRecord{
		w("2024-01-03", 3560),
		w("2024-01-01", 3500),
		w("2024-01-02", 3530),
	}

	weights := DailyWeights(records, "2024-01-01", "2024-01-03")
	for i := 1; i < len(weights); i++ {
		if weights[i-1].Date >= weights[i].Date {
			t.Errorf("series not ascending: %s before %s", weights[i-1].Date, weights[i].Date)
		}
	}
}
