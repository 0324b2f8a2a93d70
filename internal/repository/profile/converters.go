package profile

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(model *ProfileDB) (*entities.Profile, error) {
	materialStats := make(map[string]float64)
	if len(model.MaterialStats) > 0 {
		if err := json.Unmarshal(model.MaterialStats, &materialStats); err != nil {
			return nil, fmt.Errorf("decode material stats: %w", err)
		}
	}

	return &entities.Profile{
		UID:         model.UID,
		DisplayName: model.DisplayName,
		Email:       model.Email,
		PhotoURL:    model.PhotoURL,
		AccountType: entities.AccountType(model.AccountType),
		Pickups:     model.Pickups,
		Stats: entities.Stats{
			TotalWeight:      model.TotalWeight,
			CompletedPickups: model.CompletedPickups,
			Materials:        materialStats,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
