// Package analytics buckets normalized register batches into the shapes the
// dashboard charts consume: the probability×impact heat map, status and
// risk-level histograms, overdue buckets, and cross-project benchmarking.
package analytics

import (
	"math"

	"vantage/internal/domain"
)

// The dashboard's probability and impact inputs come from fixed pick lists;
// the heat map is the 5×5 grid over those discrete levels.
var (
	// ProbabilityLevels are the discrete probability pick-list values,
	// lowest first.
	ProbabilityLevels = [5]float64{0.1, 0.3, 0.5, 0.7, 0.9}

	// ImpactLevels are the discrete impact-rating pick-list values,
	// lowest first.
	ImpactLevels = [5]float64{0.05, 0.1, 0.2, 0.4, 0.8}
)

// AxisLabels names the five levels of either heat-map axis, lowest first.
var AxisLabels = [5]string{"Very Low", "Low", "Medium", "High", "Very High"}

const heatMapTolerance = 1e-4

// HeatMap is a count grid: Counts[i][j] is the number of risks at
// probability level i and impact level j.
type HeatMap struct {
	Probability [5]float64 `json:"probability_levels"`
	Impact      [5]float64 `json:"impact_levels"`
	Counts      [5][5]int  `json:"counts"`
	Dropped     int        `json:"dropped"`
}

// BuildHeatMap buckets every risk in the batch into the grid. A risk lands
// in cell (i,j) when its probability×impact product matches the cell's
// precomputed product within tolerance; a risk whose product matches no
// cell is dropped from the map (counted in Dropped, reported nowhere else).
// Issues are not probability-scored and never appear here.
func BuildHeatMap(items []domain.RiskIssue) HeatMap {
	hm := HeatMap{Probability: ProbabilityLevels, Impact: ImpactLevels}
	for _, v := range items {
		if v.Type != domain.TypeRisk || v.Probability == nil || v.ImpactRating == nil {
			continue
		}
		product := *v.Probability * *v.ImpactRating
		if i, j, ok := matchCell(product); ok {
			hm.Counts[i][j]++
		} else {
			hm.Dropped++
		}
	}
	return hm
}

func matchCell(product float64) (int, int, bool) {
	for i, p := range ProbabilityLevels {
		for j, imp := range ImpactLevels {
			if math.Abs(product-p*imp) < heatMapTolerance {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
