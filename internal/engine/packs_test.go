package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tractionlens/plan-engine/internal/models"
)

func writePack(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	return path
}

func TestLoadRelationshipModelEmptyPathUsesDefaults(t *testing.T) {
	model, err := LoadRelationshipModel("")
	if err != nil {
		t.Fatalf("LoadRelationshipModel: %v", err)
	}
	if model.Influence(models.AxisProduct, models.AxisGrowth) != 0.6 {
		t.Fatal("expected compiled-in defaults for empty path")
	}
}

func TestLoadRelationshipModelMissingFileUsesDefaults(t *testing.T) {
	model, err := LoadRelationshipModel(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRelationshipModel: %v", err)
	}
	if model.Influence(models.AxisTeam, models.AxisProduct) != 0.5 {
		t.Fatal("expected compiled-in defaults for missing file")
	}
}

func TestLoadRelationshipModelFromFile(t *testing.T) {
	path := writePack(t, "relationships.yaml", `
influence:
  growth:
    product: 0.8
`)
	model, err := LoadRelationshipModel(path)
	if err != nil {
		t.Fatalf("LoadRelationshipModel: %v", err)
	}
	if model.Influence(models.AxisGrowth, models.AxisProduct) != 0.8 {
		t.Fatal("pack value not loaded")
	}
	if model.Influence(models.AxisGrowth, models.AxisProof) != 0 {
		t.Fatal("unlisted pair must have zero influence")
	}
}

func TestLoadRelationshipModelRejectsUnknownAxis(t *testing.T) {
	path := writePack(t, "relationships.yaml", `
influence:
  velocity:
    growth: 0.4
`)
	if _, err := LoadRelationshipModel(path); err == nil {
		t.Fatal("expected error for unknown axis")
	}
}

func TestLoadRelationshipModelRejectsOutOfRangeInfluence(t *testing.T) {
	path := writePack(t, "relationships.yaml", `
influence:
  growth:
    product: 1.4
`)
	if _, err := LoadRelationshipModel(path); err == nil {
		t.Fatal("expected error for influence above 1")
	}
}

func TestDefaultTemplateCatalogCoversEveryAxis(t *testing.T) {
	catalog := DefaultTemplateCatalog()
	for _, axis := range models.AllAxes() {
		templates := catalog.ForAxis(axis)
		if len(templates) != 2 {
			t.Fatalf("axis %s: expected 2 templates, got %d", axis, len(templates))
		}
		for _, tmpl := range templates {
			if tmpl.Name == "" || tmpl.BaseImpact <= 0 || tmpl.BaseEffort <= 0 || tmpl.BaseDurationDays <= 0 {
				t.Fatalf("axis %s: malformed template %+v", axis, tmpl)
			}
		}
	}
}

func TestLoadTemplateCatalogFromFile(t *testing.T) {
	path := writePack(t, "templates.yaml", `
templates:
  growth:
    - name: Expand channels
      category: acquisition
      baseImpact: 9
      baseEffort: 5
      baseDurationDays: 11
  economics:
    - {name: Reprice, category: pricing, baseImpact: 7, baseEffort: 4, baseDurationDays: 7}
  product:
    - {name: Ship feature, category: delivery, baseImpact: 8, baseEffort: 7, baseDurationDays: 14}
  proof:
    - {name: Case study, category: evidence, baseImpact: 6, baseEffort: 4, baseDurationDays: 9}
  team:
    - {name: Hire, category: hiring, baseImpact: 7, baseEffort: 7, baseDurationDays: 15}
`)
	catalog, err := LoadTemplateCatalog(path)
	if err != nil {
		t.Fatalf("LoadTemplateCatalog: %v", err)
	}
	growth := catalog.ForAxis(models.AxisGrowth)
	if len(growth) != 1 || growth[0].Name != "Expand channels" || growth[0].BaseDurationDays != 11 {
		t.Fatalf("unexpected growth templates: %+v", growth)
	}
}

func TestLoadTemplateCatalogRequiresEveryAxis(t *testing.T) {
	path := writePack(t, "templates.yaml", `
templates:
  growth:
    - {name: Expand channels, category: acquisition, baseImpact: 9, baseEffort: 5, baseDurationDays: 11}
`)
	if _, err := LoadTemplateCatalog(path); err == nil {
		t.Fatal("expected error for axes without templates")
	}
}

func TestLoadTemplateCatalogMissingFileUsesDefaults(t *testing.T) {
	catalog, err := LoadTemplateCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadTemplateCatalog: %v", err)
	}
	if len(catalog.ForAxis(models.AxisTeam)) != 2 {
		t.Fatal("expected compiled-in defaults for missing file")
	}
}
