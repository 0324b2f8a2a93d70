// Package dto describes the JSON wire shapes of the REST API.
package dto

import "time"

type Party struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

type Material struct {
	Type          string   `json:"type"`
	Weight        float64  `json:"weight,omitempty"`
	StorageMethod string   `json:"storageMethod,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}

// Pickup carries the derived isAccepted/isCompleted mirrors for older
// clients; they are computed from status here and nowhere else.
type Pickup struct {
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	IsAccepted         bool       `json:"isAccepted"`
	IsCompleted        bool       `json:"isCompleted"`
	CreatedBy          Party      `json:"createdBy"`
	AcceptedBy         *Party     `json:"acceptedBy,omitempty"`
	AddressData        string     `json:"addressData"`
	PickupDate         string     `json:"pickupDate"`
	PickupTime         string     `json:"pickupTime"`
	PickupNote         string     `json:"pickupNote,omitempty"`
	Materials          []Material `json:"materials"`
	DisclaimerAccepted bool       `json:"disclaimerAccepted"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type PickupCreate struct {
	AddressData        string     `json:"addressData"`
	PickupDate         string     `json:"pickupDate"`
	PickupTime         string     `json:"pickupTime"`
	PickupNote         string     `json:"pickupNote"`
	Materials          []Material `json:"materials"`
	DisclaimerAccepted bool       `json:"disclaimerAccepted"`
}

type PickupCreateResponse struct {
	ID string `json:"id"`
}

type PickupUpdate struct {
	AddressData        *string     `json:"addressData,omitempty"`
	PickupDate         *string     `json:"pickupDate,omitempty"`
	PickupTime         *string     `json:"pickupTime,omitempty"`
	PickupNote         *string     `json:"pickupNote,omitempty"`
	Materials          *[]Material `json:"materials,omitempty"`
	DisclaimerAccepted *bool       `json:"disclaimerAccepted,omitempty"`
}

type PickupFieldUpdate struct {
	Field string      `json:"field"`
	Op    string      `json:"op"`
	Value interface{} `json:"value"`
}

type PickupComplete struct {
	Materials []Material `json:"materials"`
}

type Stats struct {
	TotalWeight      float64            `json:"totalWeight"`
	CompletedPickups int64              `json:"completedPickups"`
	Materials        map[string]float64 `json:"materials"`
}

type Profile struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	AccountType string    `json:"accountType"`
	Pickups     []string  `json:"pickups"`
	Stats       Stats     `json:"stats"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PingResponse struct {
	Message string `json:"message"`
}
