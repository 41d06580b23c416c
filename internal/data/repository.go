// Package data provides the record repository over the AppData document.
//
// The repository is the single write path: every mutation loads the
// whole document, mutates it in memory, and persists it back. Storage
// failures never cross the repository boundary; they are logged and the
// caller still receives the in-memory result. Rule evaluation (alerts,
// task derivation) runs synchronously as a post-append hook.
package data

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "github.com/mkuiper/kraamlog/internal/errors"
	"github.com/mkuiper/kraamlog/internal/ident"
	"github.com/mkuiper/kraamlog/internal/logging"
	"github.com/mkuiper/kraamlog/internal/models"
	"github.com/mkuiper/kraamlog/internal/rules"
	"github.com/mkuiper/kraamlog/internal/store"
)

// Fixed note text on the record synthesized from the profile's birth weight.
const birthWeightNote = "Geboortegewicht"

// Mirror receives a best-effort copy of the document after local
// mutations. Implementations must never block the caller or surface
// errors; the local document is the source of truth.
type Mirror interface {
	Push(doc models.AppData)
}

// Repository provides CRUD operations over the AppData aggregate.
type Repository struct {
	store  store.Store
	ids    *ident.Generator
	mirror Mirror
	now    func() time.Time
}

// New creates a Repository on top of a document store.
func New(s store.Store) *Repository {
	return &Repository{
		store: s,
		ids:   ident.NewGenerator(),
		now:   time.Now,
	}
}

// SetMirror attaches an optional remote mirror.
func (r *Repository) SetMirror(m Mirror) {
	r.mirror = m
}

// Load returns the current document. A missing or unparseable stored
// document degrades to the structurally-empty default; corruption is
// logged, never returned.
func (r *Repository) Load() *models.AppData {
	payload, err := r.store.Load()
	if err != nil {
		logging.Error("failed to load document, starting empty",
			apperrors.Wrap(apperrors.ErrStorage, "load failed", err))
		return models.NewAppData()
	}
	if payload == nil {
		return models.NewAppData()
	}

	var doc models.AppData
	if err := json.Unmarshal(payload, &doc); err != nil {
		logging.Error("stored document is corrupt, starting empty",
			apperrors.Wrap(apperrors.ErrDocumentCorrupt, "unmarshal failed", err))
		return models.NewAppData()
	}
	doc.Normalize()
	return &doc
}

// persist writes the document back. Write failures are diagnostics, not
// errors: the caller's in-memory result stands either way.
func (r *Repository) persist(doc *models.AppData) {
	payload, err := json.Marshal(doc)
	if err != nil {
		logging.Error("failed to serialize document",
			apperrors.Wrap(apperrors.ErrStorageWrite, "marshal failed", err))
		return
	}
	if err := r.store.Save(payload); err != nil {
		logging.Error("failed to persist document",
			apperrors.Wrap(apperrors.ErrStorageWrite, "save failed", err))
		return
	}
	if r.mirror != nil {
		go r.mirror.Push(*doc)
	}
}

// AddBabyRecord appends a baby observation, persists, and runs the
// alert and task derivation hooks against the new record.
func (r *Repository) AddBabyRecord(input models.BabyRecord) models.BabyRecord {
	doc := r.Load()

	rec := input
	rec.ID = r.ids.NextID()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = r.now()
	}
	doc.BabyRecords = append(doc.BabyRecords, rec)
	r.persist(doc)

	dirty := false
	if alert := rules.EvaluateBabyRecord(rec, doc.BabyRecords); alert != nil {
		r.appendAlert(doc, *alert)
		dirty = true
	}
	if task := rules.DeriveTaskFromNote(rec); task != nil {
		task.ID = r.ids.NextID()
		task.CreatedAt = r.now()
		doc.Tasks = append(doc.Tasks, *task)
		dirty = true
	}
	if dirty {
		r.persist(doc)
	}
	return rec
}

// AddMotherRecord appends a mother observation, persists, and runs the
// mother alert hook.
func (r *Repository) AddMotherRecord(input models.MotherRecord) models.MotherRecord {
	doc := r.Load()

	rec := input
	rec.ID = r.ids.NextID()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = r.now()
	}
	doc.MotherRecords = append(doc.MotherRecords, rec)
	r.persist(doc)

	if alert := rules.EvaluateMotherRecord(rec); alert != nil {
		r.appendAlert(doc, *alert)
		r.persist(doc)
	}
	return rec
}

// AddFamilyObservation appends a kraamhulp observation. No derived side
// effects.
func (r *Repository) AddFamilyObservation(input models.FamilyObservation) models.FamilyObservation {
	doc := r.Load()

	obs := input
	obs.ID = r.ids.NextID()
	if obs.Timestamp.IsZero() {
		obs.Timestamp = r.now()
	}
	doc.FamilyObservations = append(doc.FamilyObservations, obs)
	r.persist(doc)
	return obs
}

// AddTask appends a user-created task.
func (r *Repository) AddTask(input models.Task) models.Task {
	doc := r.Load()

	task := input
	task.ID = r.ids.NextID()
	task.CreatedAt = r.now()
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	doc.Tasks = append(doc.Tasks, task)
	r.persist(doc)
	return task
}

// UpdateTask merges a partial update into an existing task. Returns nil
// when no task has the id. The first transition into completed stamps
// CompletedAt.
func (r *Repository) UpdateTask(id string, update models.TaskUpdate) *models.Task {
	doc := r.Load()

	for i := range doc.Tasks {
		task := &doc.Tasks[i]
		if task.ID != id {
			continue
		}

		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Description != nil {
			task.Description = *update.Description
		}
		if update.Status != nil {
			task.Status = *update.Status
		}
		if update.Priority != nil {
			task.Priority = *update.Priority
		}
		if update.Category != nil {
			task.Category = *update.Category
		}
		if update.AssignedTo != nil {
			task.AssignedTo = *update.AssignedTo
		}
		if task.Status == models.TaskCompleted && task.CompletedAt == nil {
			completed := r.now()
			task.CompletedAt = &completed
		}

		r.persist(doc)
		result := *task
		return &result
	}
	return nil
}

// AddAlert appends an alert directly (normally alerts come from rules).
func (r *Repository) AddAlert(input models.Alert) models.Alert {
	doc := r.Load()
	alert := r.appendAlert(doc, input)
	r.persist(doc)
	return alert
}

// appendAlert assigns identity and appends without persisting.
func (r *Repository) appendAlert(doc *models.AppData, input models.Alert) models.Alert {
	alert := input
	alert.ID = r.ids.NextID()
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = r.now()
	}
	doc.Alerts = append(doc.Alerts, alert)
	return alert
}

// AcknowledgeAlert marks an alert acknowledged. Returns nil when no
// alert has the id. Re-acknowledging simply overwrites the
// acknowledgement fields; there is no un-acknowledge.
func (r *Repository) AcknowledgeAlert(id, acknowledgedBy, resolutionComment string) *models.Alert {
	doc := r.Load()

	for i := range doc.Alerts {
		alert := &doc.Alerts[i]
		if alert.ID != id {
			continue
		}

		ackedAt := r.now()
		alert.Acknowledged = true
		alert.AcknowledgedBy = acknowledgedBy
		alert.AcknowledgedAt = &ackedAt
		alert.ResolutionComment = strings.TrimSpace(resolutionComment)

		r.persist(doc)
		result := *alert
		return &result
	}
	return nil
}

// GetBabyProfile returns the singleton profile, or nil when unset.
func (r *Repository) GetBabyProfile() *models.BabyProfile {
	return r.Load().BabyProfile
}

// SaveBabyProfile creates or replaces the singleton profile. CreatedAt
// survives updates; UpdatedAt refreshes on every save. A profile with a
// birth weight synthesizes one weight record at the birth moment,
// idempotently keyed on birth date plus birth weight value.
func (r *Repository) SaveBabyProfile(input models.BabyProfile) models.BabyProfile {
	doc := r.Load()

	profile := input
	now := r.now()
	if doc.BabyProfile != nil {
		profile.CreatedAt = doc.BabyProfile.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	doc.BabyProfile = &profile

	if profile.BirthWeight != nil && !r.hasBirthWeightRecord(doc, profile) {
		notes := birthWeightNote
		weight := *profile.BirthWeight
		doc.BabyRecords = append(doc.BabyRecords, models.BabyRecord{
			ID:        r.ids.NextID(),
			Type:      models.BabyWeight,
			Timestamp: profile.BirthDate,
			Weight:    &weight,
			Notes:     &notes,
		})
	}

	r.persist(doc)
	return profile
}

// hasBirthWeightRecord reports whether the birth weight for this birth
// date and value was already synthesized.
func (r *Repository) hasBirthWeightRecord(doc *models.AppData, profile models.BabyProfile) bool {
	for _, rec := range doc.BabyRecords {
		if rec.Type != models.BabyWeight || rec.Notes == nil || *rec.Notes != birthWeightNote {
			continue
		}
		if rec.Weight != nil && *rec.Weight == *profile.BirthWeight &&
			rec.Timestamp.Equal(profile.BirthDate) {
			return true
		}
	}
	return false
}

// DeleteBabyProfile clears the singleton. Previously synthesized
// birth-weight records stay.
func (r *Repository) DeleteBabyProfile() {
	doc := r.Load()
	doc.BabyProfile = nil
	r.persist(doc)
}

// ClearAllData resets the document to the empty default. Irreversible.
func (r *Repository) ClearAllData() {
	r.persist(models.NewAppData())
}
