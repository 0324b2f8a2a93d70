package dto

import "service/internal/entities"

func FromPickupEntity(pickupEntity *entities.Pickup) Pickup {
	pickupDTO := Pickup{
		ID:     pickupEntity.ID,
		Status: pickupEntity.Status.String(),
		IsAccepted: pickupEntity.Status == entities.PickupAccepted ||
			pickupEntity.Status == entities.PickupInProgress ||
			pickupEntity.Status == entities.PickupCompleted,
		IsCompleted:        pickupEntity.Status == entities.PickupCompleted,
		CreatedBy:          fromPartyEntity(pickupEntity.CreatedBy),
		AddressData:        pickupEntity.AddressData,
		PickupDate:         pickupEntity.PickupDate,
		PickupTime:         pickupEntity.PickupTime,
		PickupNote:         pickupEntity.PickupNote,
		Materials:          FromMaterialEntities(pickupEntity.Materials),
		DisclaimerAccepted: pickupEntity.DisclaimerAccepted,
		CreatedAt:          pickupEntity.CreatedAt,
		UpdatedAt:          pickupEntity.UpdatedAt,
	}
	if pickupEntity.AcceptedBy != nil {
		acceptedBy := fromPartyEntity(*pickupEntity.AcceptedBy)
		pickupDTO.AcceptedBy = &acceptedBy
	}
	return pickupDTO
}

func FromMaterialEntities(entries []entities.MaterialEntry) []Material {
	materials := make([]Material, len(entries))
	for i, entry := range entries {
		materials[i] = Material{
			Type:          entry.Type,
			Weight:        entry.Weight,
			StorageMethod: entry.StorageMethod.String(),
			Photos:        entry.Photos,
		}
	}
	return materials
}

func ToMaterialEntities(materials []Material) []entities.MaterialEntry {
	entries := make([]entities.MaterialEntry, len(materials))
	for i, material := range materials {
		entries[i] = entities.MaterialEntry{
			Type:          material.Type,
			Weight:        material.Weight,
			StorageMethod: entities.StorageMethodType(material.StorageMethod),
			Photos:        material.Photos,
		}
	}
	return entries
}

func FromProfileEntity(profileEntity *entities.Profile) Profile {
	return Profile{
		UID:         profileEntity.UID,
		DisplayName: profileEntity.DisplayName,
		Email:       profileEntity.Email,
		PhotoURL:    profileEntity.PhotoURL,
		AccountType: profileEntity.AccountType.String(),
		Pickups:     profileEntity.Pickups,
		Stats: Stats{
			TotalWeight:      profileEntity.Stats.TotalWeight,
			CompletedPickups: profileEntity.Stats.CompletedPickups,
			Materials:        profileEntity.Stats.Materials,
		},
		CreatedAt: profileEntity.CreatedAt,
		UpdatedAt: profileEntity.UpdatedAt,
	}
}

func fromPartyEntity(party entities.PartyRef) Party {
	return Party{
		UserID:      party.UserID,
		DisplayName: party.DisplayName,
		Email:       party.Email,
		PhotoURL:    party.PhotoURL,
	}
}
