package entities

import "time"

type PickupStatusType string

const (
	PickupPending    PickupStatusType = "pending"
	PickupAccepted   PickupStatusType = "accepted"
	PickupInProgress PickupStatusType = "inProgress"
	PickupCompleted  PickupStatusType = "completed"
	PickupCancelled  PickupStatusType = "cancelled"
)

func (s PickupStatusType) String() string {
	return string(s)
}

// IsTerminal: из completed и cancelled переходов нет.
func (s PickupStatusType) IsTerminal() bool {
	return s == PickupCompleted || s == PickupCancelled
}

type StorageMethodType string

const (
	StorageBag   StorageMethodType = "bag"
	StorageBin   StorageMethodType = "bin"
	StorageLoose StorageMethodType = "loose"
)

func (s StorageMethodType) String() string {
	return string(s)
}

// PartyRef is a denormalized reference to the account that created or
// accepted a pickup. UserID is the only field identity checks rely on.
type PartyRef struct {
	UserID      string
	DisplayName string
	Email       string
	PhotoURL    string
}

type MaterialEntry struct {
	Type          string
	Weight        float64
	StorageMethod StorageMethodType
	Photos        []string
}

type Pickup struct {
	ID                 string
	Status             PickupStatusType
	CreatedBy          PartyRef
	AcceptedBy         *PartyRef
	AddressData        string
	PickupDate         string
	PickupTime         string
	PickupNote         string
	Materials          []MaterialEntry
	DisclaimerAccepted bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PickupCreate is the creation payload before the engine stamps
// id, status and the creator reference.
type PickupCreate struct {
	AddressData        string
	PickupDate         string
	PickupTime         string
	PickupNote         string
	Materials          []MaterialEntry
	DisclaimerAccepted bool
}

// PickupModify carries the patchable content fields. Status and the
// assignee reference are never written through a patch, only through
// lifecycle transitions.
type PickupModify struct {
	ID                 *string
	AddressData        *string
	PickupDate         *string
	PickupTime         *string
	PickupNote         *string
	Materials          *[]MaterialEntry
	DisclaimerAccepted *bool
}

type PickupFilter struct {
	CreatedBy  *string
	AcceptedBy *string
	Status     *PickupStatusType
}

type FieldOpType string

const (
	FieldOpUpdate          FieldOpType = "update"
	FieldOpSet             FieldOpType = "set"
	FieldOpAddToArray      FieldOpType = "addToArray"
	FieldOpRemoveFromArray FieldOpType = "removeFromArray"
)

func (op FieldOpType) String() string {
	return string(op)
}
