package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tractionlens/plan-engine/internal/models"
)

// ActionTemplate is the base shape of one unit of work before scaling.
type ActionTemplate struct {
	Name             string  `yaml:"name"`
	Category         string  `yaml:"category"`
	BaseImpact       float64 `yaml:"baseImpact"`
	BaseEffort       float64 `yaml:"baseEffort"`
	BaseDurationDays int     `yaml:"baseDurationDays"`
}

// TemplateCatalog maps each axis to its two action templates. Read-only after
// construction.
type TemplateCatalog struct {
	templates map[models.Axis][]ActionTemplate
}

type templateFile struct {
	Templates map[models.Axis][]ActionTemplate `yaml:"templates"`
}

// DefaultTemplateCatalog returns the compiled-in per-axis action templates.
func DefaultTemplateCatalog() TemplateCatalog {
	return TemplateCatalog{templates: map[models.Axis][]ActionTemplate{
		models.AxisGrowth: {
			{Name: "Launch structured outbound campaign", Category: "acquisition", BaseImpact: 8, BaseEffort: 6, BaseDurationDays: 10},
			{Name: "Instrument and optimize conversion funnel", Category: "activation", BaseImpact: 6, BaseEffort: 5, BaseDurationDays: 8},
		},
		models.AxisEconomics: {
			{Name: "Reprice core offering against unit costs", Category: "pricing", BaseImpact: 7, BaseEffort: 4, BaseDurationDays: 7},
			{Name: "Cut top-3 cost drivers from delivery", Category: "cost", BaseImpact: 6, BaseEffort: 6, BaseDurationDays: 12},
		},
		models.AxisProduct: {
			{Name: "Ship top-requested capability", Category: "delivery", BaseImpact: 8, BaseEffort: 7, BaseDurationDays: 14},
			{Name: "Close usability gaps from support backlog", Category: "quality", BaseImpact: 5, BaseEffort: 4, BaseDurationDays: 7},
		},
		models.AxisProof: {
			{Name: "Publish reference case studies", Category: "evidence", BaseImpact: 6, BaseEffort: 4, BaseDurationDays: 9},
			{Name: "Run pilot-to-contract conversions", Category: "evidence", BaseImpact: 8, BaseEffort: 6, BaseDurationDays: 12},
		},
		models.AxisTeam: {
			{Name: "Close critical hiring gaps", Category: "hiring", BaseImpact: 7, BaseEffort: 7, BaseDurationDays: 15},
			{Name: "Formalize operating cadence and ownership", Category: "process", BaseImpact: 5, BaseEffort: 3, BaseDurationDays: 6},
		},
	}}
}

// LoadTemplateCatalog reads an action-template pack from YAML. An empty path
// or missing file falls back to the compiled-in defaults. A pack must carry
// at least one template for every axis.
func LoadTemplateCatalog(path string) (TemplateCatalog, error) {
	if path == "" {
		return DefaultTemplateCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultTemplateCatalog(), nil
		}
		return TemplateCatalog{}, fmt.Errorf("read template pack: %w", err)
	}
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return TemplateCatalog{}, fmt.Errorf("parse template pack: %w", err)
	}
	for axis := range file.Templates {
		if !models.ValidAxis(axis) {
			return TemplateCatalog{}, fmt.Errorf("template pack: unknown axis %q", axis)
		}
	}
	for _, axis := range models.AllAxes() {
		if len(file.Templates[axis]) == 0 {
			return TemplateCatalog{}, fmt.Errorf("template pack: no templates for axis %q", axis)
		}
	}
	return TemplateCatalog{templates: file.Templates}, nil
}

// ForAxis returns the templates registered for an axis.
func (c TemplateCatalog) ForAxis(axis models.Axis) []ActionTemplate {
	return c.templates[axis]
}
