package entities

import "time"

type AccountType string

const (
	AccountUser   AccountType = "User"
	AccountDriver AccountType = "Driver"
)

func (t AccountType) String() string {
	return string(t)
}

// Stats are the running per-account totals folded in on every completion.
type Stats struct {
	TotalWeight      float64
	CompletedPickups int64
	Materials        map[string]float64
}

// Profile is an external collaborator: the engine mutates only the
// pickup membership set and the stats, never the profile itself.
type Profile struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
	AccountType AccountType
	Pickups     []string
	Stats       Stats
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Profile) Ref() PartyRef {
	return PartyRef{
		UserID:      p.UID,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		PhotoURL:    p.PhotoURL,
	}
}

// StatsDelta is one completion's contribution to a profile's stats.
type StatsDelta struct {
	TotalWeight float64
	Materials   map[string]float64
}
