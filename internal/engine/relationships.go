package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tractionlens/plan-engine/internal/models"
)

// RelationshipModel is the read-only cross-axis influence matrix: how much
// progress on one axis is expected to help another, in [0,1]. It is pure data
// and must never be mutated after construction.
type RelationshipModel struct {
	influence map[models.Axis]map[models.Axis]float64
}

type relationshipFile struct {
	Influence map[models.Axis]map[models.Axis]float64 `yaml:"influence"`
}

// DefaultRelationshipModel returns the compiled-in influence matrix.
func DefaultRelationshipModel() RelationshipModel {
	return RelationshipModel{influence: map[models.Axis]map[models.Axis]float64{
		models.AxisGrowth: {
			models.AxisEconomics: 0.4,
			models.AxisProof:     0.6,
		},
		models.AxisEconomics: {
			models.AxisGrowth: 0.3,
			models.AxisProof:  0.5,
		},
		models.AxisProduct: {
			models.AxisGrowth:    0.6,
			models.AxisEconomics: 0.3,
		},
		models.AxisProof: {
			models.AxisGrowth: 0.4,
		},
		models.AxisTeam: {
			models.AxisProduct:   0.5,
			models.AxisGrowth:    0.3,
			models.AxisEconomics: 0.2,
		},
	}}
}

// LoadRelationshipModel reads an influence matrix from a YAML pack. An empty
// path or a missing file falls back to the compiled-in defaults.
func LoadRelationshipModel(path string) (RelationshipModel, error) {
	if path == "" {
		return DefaultRelationshipModel(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultRelationshipModel(), nil
		}
		return RelationshipModel{}, fmt.Errorf("read relationship pack: %w", err)
	}
	var file relationshipFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RelationshipModel{}, fmt.Errorf("parse relationship pack: %w", err)
	}
	for from, row := range file.Influence {
		if !models.ValidAxis(from) {
			return RelationshipModel{}, fmt.Errorf("relationship pack: unknown axis %q", from)
		}
		for to, v := range row {
			if !models.ValidAxis(to) {
				return RelationshipModel{}, fmt.Errorf("relationship pack: unknown axis %q", to)
			}
			if v < 0 || v > 1 {
				return RelationshipModel{}, fmt.Errorf("relationship pack: influence %s->%s out of range: %v", from, to, v)
			}
		}
	}
	return RelationshipModel{influence: file.Influence}, nil
}

// Influence returns the influence of progress on from over to, or 0 when no
// relationship is recorded.
func (m RelationshipModel) Influence(from, to models.Axis) float64 {
	row, ok := m.influence[from]
	if !ok {
		return 0
	}
	return row[to]
}
