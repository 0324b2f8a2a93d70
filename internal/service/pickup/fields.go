package pickup

import (
	"fmt"
	"time"

	"service/internal/entities"
)

// setModifyField coerces one untyped patch value into the typed modify
// struct. Values arrive as decoded JSON, so only string/bool/number and
// material lists are expected.
func setModifyField(modify *entities.PickupModify, field string, value interface{}) error {
	switch field {
	case FieldAddressData:
		address, err := coerceString(field, value)
		if err != nil {
			return err
		}
		if err := validateAddress(address); err != nil {
			return err
		}
		modify.AddressData = &address

	case FieldPickupDate:
		date, err := coerceString(field, value)
		if err != nil {
			return err
		}
		if _, err := time.Parse(pickupDateLayout, date); err != nil {
			return fmt.Errorf("%w: pickup date %q is not %s", ErrValidation, date, pickupDateLayout)
		}
		modify.PickupDate = &date

	case FieldPickupTime:
		slot, err := coerceString(field, value)
		if err != nil {
			return err
		}
		if _, err := time.Parse(pickupTimeLayout, slot); err != nil {
			return fmt.Errorf("%w: pickup time %q is not %s", ErrValidation, slot, pickupTimeLayout)
		}
		modify.PickupTime = &slot

	case FieldPickupNote:
		note, err := coerceString(field, value)
		if err != nil {
			return err
		}
		modify.PickupNote = &note

	case FieldDisclaimerAccepted:
		accepted, err := coerceBool(field, value)
		if err != nil {
			return err
		}
		modify.DisclaimerAccepted = &accepted

	case FieldMaterials:
		entries, err := coerceMaterials(value)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("%w: materials cannot be emptied", ErrValidation)
		}
		modify.Materials = &entries

	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func coerceString(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s expects a string", ErrValidation, field)
	}
	return s, nil
}

func coerceBool(field string, value interface{}) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s expects a boolean", ErrValidation, field)
	}
	return b, nil
}

func coerceFloat(field string, value interface{}) (float64, error) {
	// encoding/json only ever hands numbers over as float64.
	v, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s expects a number", ErrValidation, field)
	}
	return v, nil
}

func coerceMaterials(value interface{}) ([]entities.MaterialEntry, error) {
	raw, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: materials expects a list", ErrValidation)
	}

	entries := make([]entities.MaterialEntry, 0, len(raw))
	for _, item := range raw {
		entry, err := coerceMaterialEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func coerceMaterialEntry(value interface{}) (entities.MaterialEntry, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return entities.MaterialEntry{}, fmt.Errorf("%w: material entry expects an object", ErrValidation)
	}

	var entry entities.MaterialEntry
	var err error

	kind, ok := obj["type"]
	if !ok {
		return entities.MaterialEntry{}, fmt.Errorf("%w: material entry requires a type", ErrValidation)
	}
	entry.Type, err = coerceString("materials.type", kind)
	if err != nil {
		return entities.MaterialEntry{}, err
	}

	if weight, ok := obj["weight"]; ok {
		entry.Weight, err = coerceFloat("materials.weight", weight)
		if err != nil {
			return entities.MaterialEntry{}, err
		}
	}

	if method, ok := obj["storageMethod"]; ok {
		methodStr, err := coerceString("materials.storageMethod", method)
		if err != nil {
			return entities.MaterialEntry{}, err
		}
		entry.StorageMethod = entities.StorageMethodType(methodStr)
	}

	if photos, ok := obj["photos"]; ok {
		rawPhotos, ok := photos.([]interface{})
		if !ok {
			return entities.MaterialEntry{}, fmt.Errorf("%w: materials.photos expects a list", ErrValidation)
		}
		entry.Photos = make([]string, 0, len(rawPhotos))
		for _, p := range rawPhotos {
			photo, err := coerceString("materials.photos", p)
			if err != nil {
				return entities.MaterialEntry{}, err
			}
			entry.Photos = append(entry.Photos, photo)
		}
	}

	return entry, nil
}
