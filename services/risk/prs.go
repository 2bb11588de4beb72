package risk

import (
	"math"
	"sort"

	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/health"
	"github.com/odurisile/DNA-Insight/services/reference"
)

const (
	TraitHeight       = "height"
	TraitBMI          = "bmi"
	TraitDiabetes     = "diabetes"
	TraitHeartDisease = "heart_disease"
	// polygenic only, APOE is scored separately
	TraitAlzheimers = "alzheimer_prs"
)

func PolygenicTraits() []string {
	return []string{TraitHeight, TraitBMI, TraitDiabetes, TraitHeartDisease, TraitAlzheimers}
}

// Placeholder standardisation: the raw score is treated as already having
// mean 0 and sd 1. Percentiles are therefore not population calibrated.
const (
	prsMean = 0.0
	prsSD   = 1.0
)

// ScorePolygenic sums weight x dosage over every coefficient row whose rsid
// is called. It returns nil when nothing overlaps.
func ScorePolygenic(g genome.Genome, table reference.CoefficientTable, trait string) *health.PolygenicScore {
	rows, ok := table.Trait(trait)
	if !ok || len(rows) == 0 {
		return nil
	}

	// summed in rsid order so the float result does not depend on map order
	var overlap []string
	for rsid := range rows {
		if g.Has(rsid) {
			overlap = append(overlap, rsid)
		}
	}
	if len(overlap) == 0 {
		return nil
	}
	sort.Strings(overlap)

	score := 0.0
	for _, rsid := range overlap {
		gt, _ := g.Genotype(rsid)
		c := rows[rsid]
		score += c.Weight * float64(genome.Dosage(gt, c.EffectAllele))
	}

	z := (score - prsMean) / prsSD
	return &health.PolygenicScore{
		RawScore:   score,
		Z:          z,
		Percentile: normalPercentile(z),
		SnpsUsed:   len(overlap),
	}
}

// normalPercentile is 100 * Phi(z).
func normalPercentile(z float64) float64 {
	return 100 * 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

func ScoreAllPolygenic(g genome.Genome, table reference.CoefficientTable) health.PolygenicScores {
	out := health.PolygenicScores{}
	for _, t := range PolygenicTraits() {
		out[t] = ScorePolygenic(g, table, t)
	}
	return out
}
