package models

// AppData is the aggregate root: one document holding every collection
// plus the optional baby profile. It is the unit of persistence; every
// mutation rewrites the whole document.
type AppData struct {
	BabyRecords        []BabyRecord        `json:"babyRecords"`
	MotherRecords      []MotherRecord      `json:"motherRecords"`
	FamilyObservations []FamilyObservation `json:"familyObservations"`
	Tasks              []Task              `json:"tasks"`
	Alerts             []Alert             `json:"alerts"`
	BabyProfile        *BabyProfile        `json:"babyProfile,omitempty"`
}

// NewAppData returns the structurally-empty default document. Slices
// are non-nil so the document always serializes with all five arrays
// present.
func NewAppData() *AppData {
	return &AppData{
		BabyRecords:        []BabyRecord{},
		MotherRecords:      []MotherRecord{},
		FamilyObservations: []FamilyObservation{},
		Tasks:              []Task{},
		Alerts:             []Alert{},
	}
}

// Normalize replaces nil collections with empty ones. Imported
// documents may omit arrays; the rest of the code assumes non-nil.
func (d *AppData) Normalize() {
	if d.BabyRecords == nil {
		d.BabyRecords = []BabyRecord{}
	}
	if d.MotherRecords == nil {
		d.MotherRecords = []MotherRecord{}
	}
	if d.FamilyObservations == nil {
		d.FamilyObservations = []FamilyObservation{}
	}
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Alerts == nil {
		d.Alerts = []Alert{}
	}
}
