// Package analytics aggregates record collections into daily time
// series for charting.
//
// Ranges are inclusive calendar-day ranges; records are bucketed by the
// date portion of their timestamp. The feeding count series is
// gap-filled (one entry per day in range, zero when empty); all other
// series only emit days that have data. Chart rendering depends on this
// asymmetry.
package analytics

import (
	"sort"
	"time"

	"github.com/mkuiper/kraamlog/internal/models"
)

const dateLayout = "2006-01-02"

// DailyCount is a per-day event count.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyValue is a per-day aggregated value (average or total).
type DailyValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Subject selects whose temperature series to aggregate.
type Subject string

const (
	SubjectBaby   Subject = "baby"
	SubjectMother Subject = "mother"
)

// dayOf returns the calendar-day bucket for a timestamp.
func dayOf(ts time.Time) string {
	return ts.Format(dateLayout)
}

// inRange reports whether day falls within [start, end]. ISO date
// strings compare correctly as strings.
func inRange(day, start, end string) bool {
	return day >= start && day <= end
}

// DailyFeedingCounts counts feeding records per calendar day. Every day
// in the range gets an entry; days without feedings count zero.
func DailyFeedingCounts(records []models.BabyRecord, startDate, endDate string) []DailyCount {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil || end.Before(start) {
		return nil
	}

	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Type != models.BabyFeeding {
			continue
		}
		day := dayOf(rec.Timestamp)
		if inRange(day, startDate, endDate) {
			counts[day]++
		}
	}

	var result []DailyCount
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(dateLayout)
		result = append(result, DailyCount{Date: day, Count: counts[day]})
	}
	return result
}

// DailyWeights averages weight records per day. Days without a weight
// record are omitted.
func DailyWeights(records []models.BabyRecord, startDate, endDate string) []DailyValue {
	samples := make(map[string][]float64)
	for _, rec := range records {
		if rec.Type != models.BabyWeight || rec.Weight == nil {
			continue
		}
		day := dayOf(rec.Timestamp)
		if inRange(day, startDate, endDate) {
			samples[day] = append(samples[day], *rec.Weight)
		}
	}
	return dailyAverages(samples)
}

// DailyTemperatures averages temperature records per day for the baby
// or the mother. Values are coerced from strings; non-numeric values
// are excluded from the average.
func DailyTemperatures(doc *models.AppData, subject Subject, startDate, endDate string) []DailyValue {
	samples := make(map[string][]float64)

	add := func(ts time.Time, value *models.Numeric) {
		if value == nil {
			return
		}
		v, ok := value.Float64()
		if !ok {
			return
		}
		day := dayOf(ts)
		if inRange(day, startDate, endDate) {
			samples[day] = append(samples[day], v)
		}
	}

	switch subject {
	case SubjectMother:
		for _, rec := range doc.MotherRecords {
			if rec.Type == models.MotherTemperature {
				add(rec.Timestamp, rec.Value)
			}
		}
	default:
		for _, rec := range doc.BabyRecords {
			if rec.Type == models.BabyTemperature {
				add(rec.Timestamp, rec.Value)
			}
		}
	}
	return dailyAverages(samples)
}

// DailyPainLevels averages mother pain scores per day.
func DailyPainLevels(records []models.MotherRecord, startDate, endDate string) []DailyValue {
	samples := make(map[string][]float64)
	for _, rec := range records {
		if rec.Type != models.MotherPain || rec.PainLevel == nil {
			continue
		}
		day := dayOf(rec.Timestamp)
		if inRange(day, startDate, endDate) {
			samples[day] = append(samples[day], float64(*rec.PainLevel))
		}
	}
	return dailyAverages(samples)
}

// DailySleepTotals sums sleep minutes per day.
func DailySleepTotals(records []models.BabyRecord, startDate, endDate string) []DailyValue {
	totals := make(map[string]float64)
	for _, rec := range records {
		if rec.Type != models.BabySleep || rec.Duration == nil {
			continue
		}
		day := dayOf(rec.Timestamp)
		if inRange(day, startDate, endDate) {
			totals[day] += float64(*rec.Duration)
		}
	}

	var result []DailyValue
	for day, total := range totals {
		result = append(result, DailyValue{Date: day, Value: total})
	}
	sortByDate(result)
	return result
}

// dailyAverages reduces per-day samples to their mean, ascending by date.
func dailyAverages(samples map[string][]float64) []DailyValue {
	var result []DailyValue
	for day, vals := range samples {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		result = append(result, DailyValue{Date: day, Value: sum / float64(len(vals))})
	}
	sortByDate(result)
	return result
}

func sortByDate(series []DailyValue) {
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
}
