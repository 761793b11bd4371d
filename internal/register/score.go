package register

import "vantage/internal/domain"

// Scoring applies to risks only; issues are realized problems and carry no
// probabilistic score. All derived values are pure functions of their
// inputs, absent inputs count as zero, and nothing here can fail.

// Derived holds the scorer's outputs for one risk.
type Derived struct {
	Score          float64
	Level          domain.RiskLevel
	EMV            float64
	DeficitSurplus float64
	Nature         domain.RiskNature
}

// ScoreRisk computes the derived numeric fields for a risk.
//
//	score          = probability × impact rating
//	emv            = probability × impact value
//	deficitSurplus = budget contingency − emv (negative means under-funded)
func ScoreRisk(probability, impactRating, impactValue, budgetContingency float64) Derived {
	score := probability * impactRating
	emv := probability * impactValue
	nature := domain.NatureNonFinancial
	if impactValue > 0 {
		nature = domain.NatureFinancial
	}
	return Derived{
		Score:          score,
		Level:          LevelFor(score),
		EMV:            emv,
		DeficitSurplus: budgetContingency - emv,
		Nature:         nature,
	}
}

// LevelFor buckets a risk score into the canonical level table. This is the
// single threshold table used everywhere a level is computed, including the
// level histogram.
func LevelFor(score float64) domain.RiskLevel {
	switch {
	case score < 0.10:
		return domain.LevelLow
	case score < 0.30:
		return domain.LevelMedium
	case score < 0.60:
		return domain.LevelHigh
	default:
		return domain.LevelCritical
	}
}
