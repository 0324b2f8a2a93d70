package material_catalog

import (
	"sort"

	"service/internal/entities"
)

// MaterialSpec describes the entry requirements for one material kind.
// MinWeight/MaxWeight bound the declared weight in kilograms; a zero
// MaxWeight means unbounded.
type MaterialSpec struct {
	Label             string
	MinWeight         float64
	MaxWeight         float64
	StorageMethods    []entities.StorageMethodType
	RequiresPhoto     bool
	RequiresAgreement bool
	AgreementLabel    string
}

type Catalog struct {
	specs map[string]MaterialSpec
}

func New() *Catalog {
	anyStorage := []entities.StorageMethodType{entities.StorageBag, entities.StorageBin, entities.StorageLoose}
	binned := []entities.StorageMethodType{entities.StorageBin}

	return &Catalog{
		specs: map[string]MaterialSpec{
			"aluminum": {
				Label:          "Aluminum cans",
				MinWeight:      0.5,
				MaxWeight:      100,
				StorageMethods: anyStorage,
			},
			"glass": {
				Label:          "Glass bottles",
				MinWeight:      0.5,
				MaxWeight:      150,
				StorageMethods: binned,
			},
			"plastic": {
				Label:          "Plastic",
				MinWeight:      0.5,
				MaxWeight:      100,
				StorageMethods: anyStorage,
			},
			"paper": {
				Label:          "Paper",
				MinWeight:      0.5,
				MaxWeight:      200,
				StorageMethods: anyStorage,
			},
			"cardboard": {
				Label:          "Cardboard",
				MinWeight:      0.5,
				MaxWeight:      200,
				StorageMethods: []entities.StorageMethodType{entities.StorageLoose, entities.StorageBin},
			},
			"steel": {
				Label:          "Scrap steel",
				MinWeight:      1,
				MaxWeight:      300,
				StorageMethods: []entities.StorageMethodType{entities.StorageLoose},
			},
			"electronics": {
				Label:          "Electronics",
				MinWeight:      0.1,
				MaxWeight:      50,
				StorageMethods: []entities.StorageMethodType{entities.StorageBin, entities.StorageLoose},
				RequiresPhoto:  true,
			},
			"motor_oil": {
				Label:             "Used motor oil",
				MinWeight:         1,
				MaxWeight:         60,
				StorageMethods:    binned,
				RequiresPhoto:     true,
				RequiresAgreement: true,
				AgreementLabel:    "I confirm the oil is sealed in a leak-proof container",
			},
		},
	}
}

// Lookup returns the MaterialSpec for a kind. An unknown kind is a
// configuration defect on the caller's side, not a runtime failure.
func (c *Catalog) Lookup(kind string) (MaterialSpec, bool) {
	spec, ok := c.specs[kind]
	return spec, ok
}

func (c *Catalog) Kinds() []string {
	kinds := make([]string, 0, len(c.specs))
	for kind := range c.specs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (s MaterialSpec) AllowsStorage(method entities.StorageMethodType) bool {
	for _, m := range s.StorageMethods {
		if m == method {
			return true
		}
	}
	return false
}
