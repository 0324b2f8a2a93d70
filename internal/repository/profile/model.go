package profile

import "time"

type ProfileDB struct {
	UID              string
	DisplayName      string
	Email            string
	PhotoURL         string
	AccountType      string
	TotalWeight      float64
	CompletedPickups int64
	MaterialStats    []byte
	Pickups          []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
