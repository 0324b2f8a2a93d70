package pickup

import (
	"database/sql"
	"time"
)

type PickupDB struct {
	ID                 string
	Status             string
	CreatedByID        string
	CreatedByName      string
	CreatedByEmail     string
	CreatedByPhotoURL  string
	AcceptedByID       sql.NullString
	AcceptedByName     sql.NullString
	AcceptedByEmail    sql.NullString
	AcceptedByPhotoURL sql.NullString
	AddressData        string
	PickupDate         string
	PickupTime         string
	PickupNote         string
	Materials          []byte
	DisclaimerAccepted bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MaterialEntryDB is the jsonb element layout inside the materials column.
type MaterialEntryDB struct {
	Type          string   `json:"type"`
	Weight        float64  `json:"weight,omitempty"`
	StorageMethod string   `json:"storageMethod,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}
