package models

import "time"

// BabyProfile is the singleton record of static identity and birth data.
// CreatedAt is set once; UpdatedAt refreshes on every save.
type BabyProfile struct {
	Name                string    `json:"name"`
	Sex                 string    `json:"sex,omitempty"`
	BirthDate           time.Time `json:"birthDate"`
	BirthWeight         *float64  `json:"birthWeight,omitempty"` // grams
	BirthLength         *float64  `json:"birthLength,omitempty"` // cm
	HeadCircumference   *float64  `json:"headCircumference,omitempty"`
	ApgarScore          *int      `json:"apgarScore,omitempty"`
	GestationalAgeWeeks *int      `json:"gestationalAgeWeeks,omitempty"`
	KraamhulpName       string    `json:"kraamhulpName,omitempty"`
	VerloskundigeName   string    `json:"verloskundigeName,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
