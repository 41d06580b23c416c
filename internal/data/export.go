package data

import (
	"encoding/json"

	apperrors "github.com/mkuiper/kraamlog/internal/errors"
	"github.com/mkuiper/kraamlog/internal/logging"
	"github.com/mkuiper/kraamlog/internal/models"
)

// ExportData serializes the whole document as pretty-printed JSON.
func (r *Repository) ExportData() string {
	doc := r.Load()
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logging.Error("failed to export document",
			apperrors.Wrap(apperrors.ErrExportFailed, "marshal failed", err))
		return ""
	}
	return string(payload)
}

// ImportData parses text and replaces the whole document. Returns false
// on parse failure, leaving the existing document untouched.
func (r *Repository) ImportData(text string) bool {
	var doc models.AppData
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		logging.Warn("import rejected: invalid document",
			map[string]interface{}{"error": err.Error()})
		return false
	}
	doc.Normalize()
	r.persist(&doc)
	return true
}
