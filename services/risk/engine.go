// Package risk computes the health risk profile of a genome: polygenic
// scores, APOE, carrier and dominant pathogenic findings, targeted markers,
// and one summary category per condition.
package risk

import (
	"github.com/odurisile/DNA-Insight/models/constants"
	"github.com/odurisile/DNA-Insight/models/constants/condition"
	riskCategory "github.com/odurisile/DNA-Insight/models/constants/risk-category"
	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/health"
	"github.com/odurisile/DNA-Insight/services/reference"

	linq "github.com/ahmetb/go-linq"
)

type Engine struct {
	refs   reference.Provider
	panels *Panels
}

// NewEngine uses the curated default panels. A nil provider behaves as one
// with empty datasets.
func NewEngine(refs reference.Provider) *Engine {
	return NewEngineWithPanels(refs, DefaultPanels())
}

func NewEngineWithPanels(refs reference.Provider, panels *Panels) *Engine {
	if refs == nil {
		refs = reference.NewStaticProvider(nil, nil)
	}
	return &Engine{refs: refs, panels: panels}
}

// signal yields Unknown when it has nothing to say about a condition.
type signal func(p *health.Profile, touched map[constants.Condition]bool) constants.RiskCategory

func dominantSignal(c constants.Condition) signal {
	return func(_ *health.Profile, touched map[constants.Condition]bool) constants.RiskCategory {
		if touched[c] {
			return riskCategory.High
		}
		return riskCategory.Unknown
	}
}

func apoeSignal(p *health.Profile, _ map[constants.Condition]bool) constants.RiskCategory {
	return p.APOE.Risk
}

func prsSignal(trait string) signal {
	return func(p *health.Profile, _ map[constants.Condition]bool) constants.RiskCategory {
		return riskCategory.FromPercentile(p.PRS.PercentileOf(trait))
	}
}

func targetedSignal(c constants.Condition) signal {
	return func(p *health.Profile, _ map[constants.Condition]bool) constants.RiskCategory {
		return targetedCategory(p.Targeted, c)
	}
}

// chains lists, per condition, the signals in priority order; the first one
// that is not Unknown decides. Carrier findings are never a signal.
var chains = map[constants.Condition][]signal{
	condition.Alzheimers:      {dominantSignal(condition.Alzheimers), apoeSignal, prsSignal(TraitAlzheimers)},
	condition.Diabetes:        {dominantSignal(condition.Diabetes), prsSignal(TraitDiabetes)},
	condition.HeartDisease:    {dominantSignal(condition.HeartDisease), prsSignal(TraitHeartDisease)},
	condition.Obesity:         {dominantSignal(condition.Obesity), prsSignal(TraitBMI)},
	condition.Celiac:          {dominantSignal(condition.Celiac), targetedSignal(condition.Celiac)},
	condition.Hypertension:    {dominantSignal(condition.Hypertension), targetedSignal(condition.Hypertension)},
	condition.Hemochromatosis: {dominantSignal(condition.Hemochromatosis), targetedSignal(condition.Hemochromatosis)},
}

func (e *Engine) Compute(g genome.Genome) health.Profile {
	p := health.Profile{
		APOE:     ClassifyAPOE(g),
		PRS:      ScoreAllPolygenic(g, e.refs.Coefficients()),
		Targeted: ClassifyTargeted(g),
	}
	p.Carriers, p.Dominant = DetectCarriers(g, e.refs.Pathogenic(), e.panels)
	p.HeightPercentile = p.PRS.PercentileOf(TraitHeight)
	p.Summary = e.summarise(&p)
	return p
}

func (e *Engine) summarise(p *health.Profile) health.Summary {
	touched := e.touchedConditions(p.Dominant)

	summary := health.Summary{}
	for _, c := range condition.Summarised() {
		if c == condition.DominantMutations {
			summary[c] = riskCategory.None
			if len(p.Dominant) > 0 {
				summary[c] = riskCategory.High
			}
			continue
		}

		summary[c] = riskCategory.Unknown
		for _, s := range chains[c] {
			if category := s(p, touched); category != riskCategory.Unknown {
				summary[c] = category
				break
			}
		}
	}
	return summary
}

// touchedConditions maps the distinct genes of the dominant findings onto
// the conditions they bear on.
func (e *Engine) touchedConditions(dominant []health.Finding) map[constants.Condition]bool {
	touched := map[constants.Condition]bool{}
	if e.panels == nil {
		return touched
	}

	var genes []string
	linq.From(dominant).
		SelectT(func(f health.Finding) string { return f.Gene }).
		Distinct().
		ToSlice(&genes)

	for _, gene := range genes {
		for _, c := range e.panels.ConditionsOf(gene) {
			touched[c] = true
		}
	}
	return touched
}
