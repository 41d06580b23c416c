package handlers

import (
	"net/http"

	"github.com/mkuiper/kraamlog/internal/analytics"
)

// Analytics serves daily time series for the dashboard charts.
// GET /api/analytics?metric=feedings&start=2026-08-01&end=2026-08-08
// Metrics: feedings, weights, temperatures, pain, sleep. The
// temperatures metric takes an extra subject=baby|mother parameter.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	metric := q.Get("metric")
	start := q.Get("start")
	end := q.Get("end")
	if metric == "" || start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "metric, start and end are required")
		return
	}

	doc := h.repo.Load()
	switch metric {
	case "feedings":
		series := analytics.DailyFeedingCounts(doc.BabyRecords, start, end)
		if series == nil {
			writeError(w, http.StatusBadRequest, "invalid date range")
			return
		}
		writeJSON(w, http.StatusOK, series)
	case "weights":
		writeJSON(w, http.StatusOK, analytics.DailyWeights(doc.BabyRecords, start, end))
	case "temperatures":
		subject := analytics.Subject(q.Get("subject"))
		if subject == "" {
			subject = analytics.SubjectBaby
		}
		if subject != analytics.SubjectBaby && subject != analytics.SubjectMother {
			writeError(w, http.StatusBadRequest, "subject must be baby or mother")
			return
		}
		writeJSON(w, http.StatusOK, analytics.DailyTemperatures(doc, subject, start, end))
	case "pain":
		writeJSON(w, http.StatusOK, analytics.DailyPainLevels(doc.MotherRecords, start, end))
	case "sleep":
		writeJSON(w, http.StatusOK, analytics.DailySleepTotals(doc.BabyRecords, start, end))
	default:
		writeError(w, http.StatusBadRequest, "unknown metric: "+metric)
	}
}
