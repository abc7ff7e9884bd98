package models

// Axis identifies one of the five fixed performance dimensions of a profile.
type Axis string

const (
	AxisGrowth    Axis = "growth"
	AxisEconomics Axis = "economics"
	AxisProduct   Axis = "product"
	AxisProof     Axis = "proof"
	AxisTeam      Axis = "team"
)

// AllAxes returns the five axes in canonical order.
func AllAxes() []Axis {
	return []Axis{AxisGrowth, AxisEconomics, AxisProduct, AxisProof, AxisTeam}
}

// ValidAxis reports whether the value names a known axis.
func ValidAxis(a Axis) bool {
	switch a {
	case AxisGrowth, AxisEconomics, AxisProduct, AxisProof, AxisTeam:
		return true
	}
	return false
}

// ScoreMap holds one 0-100 score per axis.
type ScoreMap map[Axis]float64

// Average returns the mean score across the entries in the map.
func (s ScoreMap) Average() float64 {
	if len(s) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total / float64(len(s))
}

// Clone returns an independent copy of the map.
func (s ScoreMap) Clone() ScoreMap {
	out := make(ScoreMap, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
