package pickup

import "service/internal/entities"

// RoleType is the caller's capability towards one specific pickup.
type RoleType string

const (
	RoleOwner    RoleType = "owner"
	RoleAssignee RoleType = "assignee"
	RoleDriver   RoleType = "driver"
	RoleNone     RoleType = "none"
)

func (r RoleType) String() string {
	return string(r)
}

const (
	FieldAddressData        = "addressData"
	FieldPickupDate         = "pickupDate"
	FieldPickupTime         = "pickupTime"
	FieldPickupNote         = "pickupNote"
	FieldMaterials          = "materials"
	FieldDisclaimerAccepted = "disclaimerAccepted"
	FieldStatus             = "status"
	FieldAcceptedBy         = "acceptedBy"
)

// ownerFields are the content fields a creator may patch before
// completion. id, createdBy and createdAt are immutable; status and
// acceptedBy go through transitions only.
var ownerFields = map[string]struct{}{
	FieldAddressData:        {},
	FieldPickupDate:         {},
	FieldPickupTime:         {},
	FieldPickupNote:         {},
	FieldMaterials:          {},
	FieldDisclaimerAccepted: {},
}

// driverFields is the write set of a driver towards a pickup: the
// assignment pair plus the shared note.
var driverFields = map[string]struct{}{
	FieldStatus:     {},
	FieldAcceptedBy: {},
	FieldPickupNote: {},
}

// ResolveRole compares the caller against the pickup's parties. A driver
// account keeps driver capability even when someone else is assigned;
// assignee-equality is what unlocks status writes beyond Accept.
func ResolveRole(uid string, pickupEntity *entities.Pickup, accountType entities.AccountType) RoleType {
	if uid == "" || pickupEntity == nil {
		return RoleNone
	}
	if pickupEntity.CreatedBy.UserID == uid {
		return RoleOwner
	}
	if pickupEntity.AcceptedBy != nil && pickupEntity.AcceptedBy.UserID == uid {
		return RoleAssignee
	}
	if accountType == entities.AccountDriver {
		return RoleDriver
	}
	return RoleNone
}

// FieldAllowed reports whether the role may write the named field at all.
// State-dependent checks (pre-completion, legal transition) stay with the
// engine; the guard itself never reads or mutates state.
func FieldAllowed(role RoleType, field string) bool {
	switch role {
	case RoleOwner:
		_, ok := ownerFields[field]
		return ok
	case RoleAssignee, RoleDriver:
		_, ok := driverFields[field]
		return ok
	default:
		return false
	}
}

func IsKnownField(field string) bool {
	if _, ok := ownerFields[field]; ok {
		return true
	}
	_, ok := driverFields[field]
	return ok
}
