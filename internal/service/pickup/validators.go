package pickup

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"service/internal/entities"
)

const (
	pickupDateLayout = "2006-01-02"
	pickupTimeLayout = "15:04"

	// Slots open the morning after creation, никаких "сегодня".
	earliestPickupHour = 8
	latestPickupHour   = 20
)

func isValidPickupID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidUID(uid string) bool {
	return strings.TrimSpace(uid) != ""
}

func validateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	return nil
}

// validateSchedule enforces the domain invariant the mobile UI only hints
// at: the slot lies at least one full day ahead and within opening hours.
func validateSchedule(dateStr, timeStr string, now time.Time) error {
	date, err := time.Parse(pickupDateLayout, dateStr)
	if err != nil {
		return fmt.Errorf("%w: pickup date %q is not %s", ErrValidation, dateStr, pickupDateLayout)
	}

	slot, err := time.Parse(pickupTimeLayout, timeStr)
	if err != nil {
		return fmt.Errorf("%w: pickup time %q is not %s", ErrValidation, timeStr, pickupTimeLayout)
	}

	if slot.Hour() < earliestPickupHour || slot.Hour() >= latestPickupHour {
		return fmt.Errorf("%w: pickup time must be between %02d:00 and %02d:00",
			ErrValidation, earliestPickupHour, latestPickupHour)
	}

	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	if date.Before(tomorrow) {
		return fmt.Errorf("%w: pickup date must be at least one day ahead", ErrValidation)
	}

	return nil
}

// validateCreateMaterials checks every declared entry against the catalog:
// quantity or storage choice, photo and agreement requirements.
func (s *Pickup) validateCreateMaterials(entries []entities.MaterialEntry, disclaimerAccepted bool) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: at least one material is required", ErrValidation)
	}

	for _, entry := range entries {
		if err := s.validateMaterialEntry(entry, disclaimerAccepted); err != nil {
			return err
		}
	}

	return nil
}

func (s *Pickup) validateMaterialEntry(entry entities.MaterialEntry, disclaimerAccepted bool) error {
	spec, ok := s.catalog.Lookup(entry.Type)
	if !ok {
		return fmt.Errorf("%w: unknown material kind %q", ErrValidation, entry.Type)
	}

	if entry.StorageMethod != "" {
		if !spec.AllowsStorage(entry.StorageMethod) {
			return fmt.Errorf("%w: storage method %q is not allowed for %s",
				ErrValidation, entry.StorageMethod, entry.Type)
		}
	} else {
		if entry.Weight < spec.MinWeight {
			return fmt.Errorf("%w: %s weight %.2f is below the minimum %.2f",
				ErrValidation, entry.Type, entry.Weight, spec.MinWeight)
		}
		if spec.MaxWeight > 0 && entry.Weight > spec.MaxWeight {
			return fmt.Errorf("%w: %s weight %.2f is above the maximum %.2f",
				ErrValidation, entry.Type, entry.Weight, spec.MaxWeight)
		}
	}

	if spec.RequiresPhoto && len(entry.Photos) == 0 {
		return fmt.Errorf("%w: %s requires at least one photo", ErrValidation, entry.Type)
	}

	if spec.RequiresAgreement && !disclaimerAccepted {
		return fmt.Errorf("%w: %s requires the disclaimer to be accepted", ErrValidation, entry.Type)
	}

	return nil
}

// validatePatchedMaterials runs materials that arrive through the generic
// update paths through the same catalog checks as at creation. Disclaimer
// state is the patched value when the patch carries one, otherwise the
// stored one.
func (s *Pickup) validatePatchedMaterials(current *entities.Pickup, modify entities.PickupModify) error {
	if modify.Materials == nil {
		return nil
	}

	disclaimerAccepted := current.DisclaimerAccepted
	if modify.DisclaimerAccepted != nil {
		disclaimerAccepted = *modify.DisclaimerAccepted
	}

	for _, entry := range *modify.Materials {
		if err := s.validateMaterialEntry(entry, disclaimerAccepted); err != nil {
			return err
		}
	}
	return nil
}

// wouldEmptyMaterials reports whether removing entry leaves the pickup
// with no materials. The repository removes every matching element, so
// only the non-matching ones count.
func wouldEmptyMaterials(current []entities.MaterialEntry, entry entities.MaterialEntry) bool {
	for _, existing := range current {
		if !sameMaterialEntry(existing, entry) {
			return false
		}
	}
	return true
}

func sameMaterialEntry(a, b entities.MaterialEntry) bool {
	return a.Type == b.Type &&
		a.Weight == b.Weight &&
		a.StorageMethod == b.StorageMethod &&
		slices.Equal(a.Photos, b.Photos)
}

// validateCompletionMaterials checks the measured entries supplied at
// completion: a non-empty list of known kinds with positive weights.
func (s *Pickup) validateCompletionMaterials(entries []entities.MaterialEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: measured materials are required", ErrValidation)
	}

	for _, entry := range entries {
		if _, ok := s.catalog.Lookup(entry.Type); !ok {
			return fmt.Errorf("%w: unknown material kind %q", ErrValidation, entry.Type)
		}
		if entry.Weight <= 0 {
			return fmt.Errorf("%w: %s measured weight must be positive", ErrValidation, entry.Type)
		}
	}

	return nil
}
