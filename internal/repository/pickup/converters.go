package pickup

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(p *PickupDB) (*entities.Pickup, error) {
	if p == nil {
		return nil, nil
	}

	materials, err := materialsToDomain(p.Materials)
	if err != nil {
		return nil, err
	}

	pickupEntity := &entities.Pickup{
		ID:     p.ID,
		Status: entities.PickupStatusType(p.Status),
		CreatedBy: entities.PartyRef{
			UserID:      p.CreatedByID,
			DisplayName: p.CreatedByName,
			Email:       p.CreatedByEmail,
			PhotoURL:    p.CreatedByPhotoURL,
		},
		AddressData:        p.AddressData,
		PickupDate:         p.PickupDate,
		PickupTime:         p.PickupTime,
		PickupNote:         p.PickupNote,
		Materials:          materials,
		DisclaimerAccepted: p.DisclaimerAccepted,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	if p.AcceptedByID.Valid {
		pickupEntity.AcceptedBy = &entities.PartyRef{
			UserID:      p.AcceptedByID.String,
			DisplayName: p.AcceptedByName.String,
			Email:       p.AcceptedByEmail.String,
			PhotoURL:    p.AcceptedByPhotoURL.String,
		}
	}

	return pickupEntity, nil
}

func materialsToDomain(raw []byte) ([]entities.MaterialEntry, error) {
	if len(raw) == 0 {
		return []entities.MaterialEntry{}, nil
	}

	var models []MaterialEntryDB
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, fmt.Errorf("decode materials: %w", err)
	}

	entries := make([]entities.MaterialEntry, len(models))
	for i, m := range models {
		entries[i] = entities.MaterialEntry{
			Type:          m.Type,
			Weight:        m.Weight,
			StorageMethod: entities.StorageMethodType(m.StorageMethod),
			Photos:        m.Photos,
		}
	}
	return entries, nil
}

func materialsFromDomain(entries []entities.MaterialEntry) ([]byte, error) {
	models := make([]MaterialEntryDB, len(entries))
	for i, entry := range entries {
		models[i] = MaterialEntryDB{
			Type:          entry.Type,
			Weight:        entry.Weight,
			StorageMethod: entry.StorageMethod.String(),
			Photos:        entry.Photos,
		}
	}
	return json.Marshal(models)
}

func materialFromDomain(entry entities.MaterialEntry) ([]byte, error) {
	return json.Marshal(MaterialEntryDB{
		Type:          entry.Type,
		Weight:        entry.Weight,
		StorageMethod: entry.StorageMethod.String(),
		Photos:        entry.Photos,
	})
}
