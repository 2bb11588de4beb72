package risk

import (
	"github.com/odurisile/DNA-Insight/models/constants"
	"github.com/odurisile/DNA-Insight/models/constants/condition"
	riskCategory "github.com/odurisile/DNA-Insight/models/constants/risk-category"
	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/health"
)

type marker struct {
	Key        string
	Rsid       string
	RiskAllele string
}

var (
	celiacMarkers = []marker{
		{"celiac", "rs2187668", "T"},
		{"celiac_support", "rs7454108", "C"},
	}
	hypertensionMarkers = []marker{
		{"hypertension", "rs699", "T"}, // AGT
	}
	hemochromatosisMarkers = []marker{
		{"hemo_c282y", "rs1800562", "A"}, // HFE C282Y
		{"hemo_h63d", "rs1799945", "G"},  // HFE H63D
	}
)

var targetedConditions = map[constants.Condition][]marker{
	condition.Celiac:          celiacMarkers,
	condition.Hypertension:    hypertensionMarkers,
	condition.Hemochromatosis: hemochromatosisMarkers,
}

func classifyMarker(g genome.Genome, m marker) health.TargetedResult {
	res := health.TargetedResult{Rsid: m.Rsid, RiskAllele: m.RiskAllele, Category: riskCategory.Unknown}

	gt, ok := g.Genotype(m.Rsid)
	if !ok {
		return res
	}
	res.Genotype = gt
	res.Dosage = genome.Dosage(gt, m.RiskAllele)
	res.Category = riskCategory.FromDosage(res.Dosage)
	return res
}

// ClassifyTargeted labels every targeted marker, keyed by marker name.
func ClassifyTargeted(g genome.Genome) map[string]health.TargetedResult {
	out := map[string]health.TargetedResult{}
	for _, markers := range targetedConditions {
		for _, m := range markers {
			out[m.Key] = classifyMarker(g, m)
		}
	}
	return out
}

// targetedCategory reports the highest ranked marker of a condition.
func targetedCategory(targeted map[string]health.TargetedResult, c constants.Condition) constants.RiskCategory {
	var categories []constants.RiskCategory
	for _, m := range targetedConditions[c] {
		if r, ok := targeted[m.Key]; ok {
			categories = append(categories, r.Category)
		}
	}
	return riskCategory.Highest(categories...)
}
