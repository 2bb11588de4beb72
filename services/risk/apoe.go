package risk

import (
	"sort"

	"github.com/odurisile/DNA-Insight/models/constants"
	riskCategory "github.com/odurisile/DNA-Insight/models/constants/risk-category"
	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/health"
)

const (
	apoeRs429358 = "rs429358"
	apoeRs7412   = "rs7412"

	UnknownGenotype = "Unknown"
)

// one chromosome copy: (rs429358, rs7412) -> APOE allele
var apoeAlleles = map[[2]byte]string{
	{'T', 'T'}: "e2",
	{'T', 'C'}: "e3",
	{'C', 'C'}: "e4",
}

var apoeRisk = map[string]constants.RiskCategory{
	"e2/e2": riskCategory.Reduced,
	"e2/e3": riskCategory.Reduced,
	"e3/e3": riskCategory.Average,
	"e2/e4": riskCategory.SlightlyElevated,
	"e3/e4": riskCategory.Elevated,
	"e4/e4": riskCategory.High,
}

// ClassifyAPOE derives the APOE genotype from rs429358 and rs7412.
// A missing variant gives confidence 0; variants that are present but do not
// resolve to a known allele give confidence 0.5.
func ClassifyAPOE(g genome.Genome) health.APOEResult {
	gt1, ok1 := g.Genotype(apoeRs429358)
	gt2, ok2 := g.Genotype(apoeRs7412)
	if !ok1 || !ok2 {
		return health.APOEResult{Genotype: UnknownGenotype, Risk: riskCategory.Unknown, Confidence: 0.0}
	}

	uninterpretable := health.APOEResult{Genotype: UnknownGenotype, Risk: riskCategory.Unknown, Confidence: 0.5}

	a1, b1, ok1 := genome.Alleles(gt1)
	a2, b2, ok2 := genome.Alleles(gt2)
	if !ok1 || !ok2 {
		return uninterpretable
	}

	first, okA := apoeAlleles[[2]byte{a1, a2}]
	second, okB := apoeAlleles[[2]byte{b1, b2}]
	if !okA || !okB {
		return uninterpretable
	}

	copies := []string{first, second}
	sort.Strings(copies)
	genotype := copies[0] + "/" + copies[1]

	risk, ok := apoeRisk[genotype]
	if !ok {
		risk = riskCategory.Unknown
	}

	return health.APOEResult{Genotype: genotype, Risk: risk, Confidence: 1.0}
}
