package phenotype

import (
	"fmt"

	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/traits"
)

type term struct {
	Rsid   string
	Allele string
	Weight float64
}

// threshold labels a score strictly below Below.
type threshold struct {
	Below float64
	Label string
}

// additive is a weighted dosage sum mapped through ascending thresholds;
// scores past the last threshold get Top.
type additive struct {
	Terms      []term
	Thresholds []threshold
	Top        string
}

func (m additive) predict(g genome.Genome) traits.Result {
	score, present := 0.0, 0
	for _, t := range m.Terms {
		gt, ok := g.Genotype(t.Rsid)
		if !ok {
			continue
		}
		present++
		score += float64(genome.Dosage(gt, t.Allele)) * t.Weight
	}
	if present == 0 {
		return traits.Unknown{Reason: "none of the model's variants called"}
	}

	label := m.Top
	for _, th := range m.Thresholds {
		if score < th.Below {
			label = th.Label
			break
		}
	}

	return traits.Categorical{
		Value: label,
		Conf:  float64(present) / float64(len(m.Terms)),
		Score: score,
	}
}

var mc1rRedHair = []string{"rs1805007", "rs1805008", "rs1805009"}

var frecklingModel = additive{
	Terms: append(termsFor(mc1rRedHair, "T", 1.2),
		term{"rs12203592", "T", 0.9}, // IRF4
		term{herc2, "G", 0.4},
	),
	Thresholds: []threshold{{1.0, "Low"}, {2.5, "Moderate"}},
	Top:        "High",
}

var tanningModel = additive{
	Terms: append([]term{
		{"rs16891982", "C", 1.1}, // SLC45A2
		{"rs1426654", "A", 1.3},  // SLC24A5
	}, termsFor(mc1rRedHair, "T", -1.2)...),
	Thresholds: []threshold{{-0.5, "Burns Easily"}, {1.5, "Burns then Tans"}},
	Top:        "Tans Easily",
}

var morphologyThresholds = []threshold{{1.0, "Low"}, {2.0, "Moderate"}}

var faceParts = map[string]additive{
	"nose_width":       {Terms: []term{{"rs4648379", "A", 1.2}}, Thresholds: morphologyThresholds, Top: "High"},
	"lip_fullness":     {Terms: []term{{"rs11807848", "T", 1.1}}, Thresholds: morphologyThresholds, Top: "High"},
	"cheek_prominence": {Terms: []term{{"rs3827760", "G", 1.4}}, Thresholds: morphologyThresholds, Top: "High"},
}

func termsFor(rsids []string, allele string, weight float64) []term {
	out := make([]term, 0, len(rsids))
	for _, r := range rsids {
		out = append(out, term{r, allele, weight})
	}
	return out
}

func PredictFreckling(g genome.Genome) traits.Result { return frecklingModel.predict(g) }

func PredictTanning(g genome.Genome) traits.Result { return tanningModel.predict(g) }

// PredictFace reports nose width, lip fullness and cheek prominence together.
func PredictFace(g genome.Genome) traits.Result {
	parts := make(map[string]traits.Result, len(faceParts))
	known := 0
	for name, m := range faceParts {
		parts[name] = m.predict(g)
		if !traits.IsUnknown(parts[name]) {
			known++
		}
	}
	if known == 0 {
		return traits.Unknown{Reason: "no facial morphology variants called"}
	}
	return traits.Composite{Parts: parts}
}

// lookup is a single-variant genotype table keyed by the canonical pair.
type lookup struct {
	Rsid   string
	Labels map[string]string
}

func (l lookup) predict(g genome.Genome) traits.Result {
	gt, ok := g.Genotype(l.Rsid)
	if !ok {
		return traits.Unknown{Reason: l.Rsid + " not called"}
	}
	label, ok := l.Labels[genome.Canonical(gt)]
	if !ok {
		return traits.Unknown{Reason: fmt.Sprintf("%s genotype %s not interpretable", l.Rsid, gt)}
	}
	return traits.Categorical{Value: label, Conf: 1.0}
}

var (
	// CYP1A2
	caffeineLookup = lookup{"rs762551", map[string]string{
		"A/A": "Fast metabolizer",
		"A/C": "Intermediate",
		"C/C": "Slow / sensitive",
	}}
	// ACTN3
	muscleLookup = lookup{"rs1815739", map[string]string{
		"C/C": "Power / sprint",
		"C/T": "Mixed",
		"T/T": "Endurance leaning",
	}}
	// ALDH2
	alcoholFlushLookup = lookup{"rs671", map[string]string{
		"G/G": "No flush predisposition",
		"A/G": "Likely flush (heterozygous)",
		"A/A": "Strong flush (homozygous)",
	}}
	// CHRNA5
	nicotineLookup = lookup{"rs16969968", map[string]string{
		"A/A": "Higher dependence risk",
		"A/G": "Moderate dependence risk",
		"G/G": "Lower dependence risk",
	}}
	// MTHFR C677T
	folateLookup = lookup{"rs1801133", map[string]string{
		"T/T": "Reduced activity (TT)",
		"C/T": "Slightly reduced (CT)",
		"C/C": "Typical activity (CC)",
	}}
)

const lactaseVariant = "rs4988235"

// PredictLactose: any T at the LCT enhancer confers persistence.
func PredictLactose(g genome.Genome) traits.Result {
	gt, ok := g.Genotype(lactaseVariant)
	if !ok {
		return traits.Unknown{Reason: lactaseVariant + " not called"}
	}
	switch t := genome.Dosage(gt, "T"); {
	case t == 2:
		return traits.Categorical{Value: "Likely tolerant (TT)", Conf: 1.0, Score: 2}
	case t == 1:
		return traits.Categorical{Value: "Tolerant carrier (CT)", Conf: 1.0, Score: 1}
	case genome.Canonical(gt) == "C/C":
		return traits.Categorical{Value: "Likely lactose sensitive (CC)", Conf: 1.0}
	}
	return traits.Unknown{Reason: fmt.Sprintf("%s genotype %s not interpretable", lactaseVariant, gt)}
}

func PredictCaffeine(g genome.Genome) traits.Result     { return caffeineLookup.predict(g) }
func PredictMuscle(g genome.Genome) traits.Result       { return muscleLookup.predict(g) }
func PredictAlcoholFlush(g genome.Genome) traits.Result { return alcoholFlushLookup.predict(g) }
func PredictNicotine(g genome.Genome) traits.Result     { return nicotineLookup.predict(g) }
func PredictFolate(g genome.Genome) traits.Result       { return folateLookup.predict(g) }
