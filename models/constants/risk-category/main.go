package riskCategory

import (
	"github.com/odurisile/DNA-Insight/models/constants"
)

const (
	Unknown constants.RiskCategory = "Unknown"

	// percentile ladder
	VeryLow  constants.RiskCategory = "Very Low"
	Low      constants.RiskCategory = "Low"
	Average  constants.RiskCategory = "Average"
	Moderate constants.RiskCategory = "Moderate"
	High     constants.RiskCategory = "High"

	// targeted single-variant ladder
	Elevated constants.RiskCategory = "Elevated"

	// APOE
	Reduced          constants.RiskCategory = "Reduced"
	SlightlyElevated constants.RiskCategory = "Slightly Elevated"

	// no dominant finding
	None constants.RiskCategory = "None"
)

// FromPercentile maps a polygenic percentile onto the ordinal ladder.
// A nil percentile means the score was undefined.
func FromPercentile(percentile *float64) constants.RiskCategory {
	if percentile == nil {
		return Unknown
	}
	p := *percentile
	switch {
	case p >= 90:
		return High
	case p >= 70:
		return Moderate
	case p >= 30:
		return Average
	case p >= 10:
		return Low
	default:
		return VeryLow
	}
}

// FromDosage classifies a count of risk alleles (0-2).
func FromDosage(dosage int) constants.RiskCategory {
	switch {
	case dosage >= 2:
		return High
	case dosage == 1:
		return Elevated
	default:
		return Average
	}
}

// Rank orders the targeted ladder: Unknown < Average < Elevated < High.
func Rank(category constants.RiskCategory) int {
	switch category {
	case Average:
		return 1
	case Elevated:
		return 2
	case High:
		return 3
	default:
		return 0
	}
}

// Highest returns the highest ranked category, the first one winning ties.
func Highest(categories ...constants.RiskCategory) constants.RiskCategory {
	best := Unknown
	for _, c := range categories {
		if Rank(c) > Rank(best) {
			best = c
		}
	}
	return best
}
