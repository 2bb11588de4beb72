package phenotype

import (
	"math"

	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/traits"
)

const herc2 = "rs12913832"

// herc2Margin lets the rs12913832 call overrule a softmax winner it trails by
// less than this much probability.
const herc2Margin = 0.15

type weight struct {
	Rsid   string
	Effect string
	Beta   float64
}

type category struct {
	Label     string
	Intercept float64
	Weights   []weight
}

func (c category) logit(g genome.Genome) float64 {
	x := c.Intercept
	for _, w := range c.Weights {
		gt, ok := g.Genotype(w.Rsid)
		if !ok {
			continue
		}
		x += w.Beta * float64(genome.Dosage(gt, w.Effect))
	}
	return x
}

var eyeModel = []category{
	{Label: "Blue", Intercept: 1.523, Weights: []weight{
		{"rs1129038", "A", 1.85},
		{herc2, "G", 4.12},
		{"rs1800407", "T", 1.31},
		{"rs12896399", "T", 0.47},
		{"rs16891982", "C", 0.78},
	}},
	{Label: "Intermediate", Intercept: -0.83, Weights: []weight{
		{herc2, "G", -2.51},
		{"rs12203592", "T", 1.25},
		{"rs16891982", "C", 0.32},
	}},
	{Label: "Brown", Intercept: -2.19, Weights: []weight{
		{herc2, "A", 2.71},
		{"rs1800407", "C", -1.12},
		{"rs12896399", "C", 0.41},
		{"rs16891982", "G", 0.76},
	}},
}

var hairModel = []category{
	{Label: "Blond", Intercept: -1.55, Weights: []weight{
		{"rs12821256", "T", 2.25},
		{"rs1805008", "T", -1.31},
		{"rs1805007", "T", -1.02},
	}},
	{Label: "Brown", Intercept: 0.61, Weights: []weight{
		{herc2, "A", 1.14},
		{"rs16891982", "G", -0.42},
	}},
	{Label: "Red", Intercept: -3.41, Weights: []weight{
		{"rs1805007", "T", 3.1},
		{"rs1805008", "T", 2.55},
		{"rs1805009", "T", 1.85},
	}},
	{Label: "Black", Intercept: -0.92, Weights: []weight{
		{"rs16891982", "C", 2.12},
		{"rs1426654", "A", 1.41},
	}},
}

var skinModel = category{Label: "Skin", Intercept: -1.95, Weights: []weight{
	{"rs1426654", "A", 3.88},
	{"rs16891982", "C", 1.27},
	{"rs1042602", "A", 0.96},
	{"rs1800407", "T", 0.57},
	{"rs2228479", "A", 0.74},
	{"rs4959270", "G", 0.44},
	{"rs885479", "A", -0.62},
}}

type shade struct {
	Label  string
	Target float64
}

// ordered light to dark
var skinShades = []shade{
	{"Very Light", 0.15},
	{"Light", 0.30},
	{"Medium", 0.45},
	{"Brown", 0.60},
	{"Dark", 0.75},
	{"Very Dark", 0.90},
}

const skinShadeSpacing = 0.15

const (
	eyeOverrideModel = "HERC2 override (A allele present)"
	eyeQuickModel    = "rs12913832 heuristic (low SNP coverage)"
	eyeSparseModel   = "HIrisPlex-S (Eye) - insufficient SNPs"
	eyeModelName     = "HIrisPlex-S (Eye) + rs12913832 safety net"
	hairModelName    = "HIrisPlex-S (Hair)"
	skinModelName    = "HIrisPlex-S (Skin)"
)

// the intermediate class is reported as Green and Hazel in these proportions
const (
	greenShare = 0.7
	hazelShare = 0.3
)

func softmax(logits []float64) []float64 {
	max := math.Inf(-1)
	for _, v := range logits {
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(logits))
	total := 0.0
	for i, v := range logits {
		out[i] = math.Exp(v - max)
		total += out[i]
	}
	if total == 0 || math.IsNaN(total) {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}
		return out
	}
	for i := range out {
		out[i] /= total
	}
	return out
}

// argmax returns the first label holding the largest probability.
func argmax(labels []string, probs map[string]float64) string {
	best := labels[0]
	for _, l := range labels[1:] {
		if probs[l] > probs[best] {
			best = l
		}
	}
	return best
}

func informative(g genome.Genome, models ...category) int {
	seen := map[string]bool{}
	for _, m := range models {
		for _, w := range m.Weights {
			if g.Has(w.Rsid) {
				seen[w.Rsid] = true
			}
		}
	}
	return len(seen)
}

// herc2Call is the rs12913832 safety net: any A is Brown, G/G is Blue.
func herc2Call(g genome.Genome) string {
	gt, ok := g.Genotype(herc2)
	if !ok {
		return ""
	}
	if genome.Contains(gt, "A") {
		return "Brown"
	}
	if genome.Compact(gt) == "GG" {
		return "Blue"
	}
	return ""
}

func PredictEye(g genome.Genome) traits.Result {
	// any A at rs12913832 settles it before the model runs
	if gt, ok := g.Genotype(herc2); ok && genome.Contains(gt, "A") {
		return traits.Probabilistic{
			Value:         "Brown",
			Probabilities: map[string]float64{"Brown": 0.82, "Hazel": 0.10, "Green": 0.06, "Blue": 0.02},
			Conf:          0.82,
			Model:         eyeOverrideModel,
		}
	}

	if informative(g, eyeModel...) < 2 {
		if quick := herc2Call(g); quick != "" {
			return traits.Probabilistic{
				Value:         quick,
				Probabilities: map[string]float64{quick: 1.0},
				Conf:          1.0,
				Model:         eyeQuickModel,
			}
		}
		return traits.Unknown{Reason: eyeSparseModel}
	}

	logits := make([]float64, len(eyeModel))
	for i, c := range eyeModel {
		logits[i] = c.logit(g)
	}
	p := softmax(logits)

	probs := map[string]float64{
		"Blue":  p[0],
		"Green": p[1] * greenShare,
		"Hazel": p[1] * hazelShare,
		"Brown": p[2],
	}
	best := argmax([]string{"Blue", "Green", "Hazel", "Brown"}, probs)

	if quick := herc2Call(g); quick != "" && (quick == "Brown" || probs[quick]+herc2Margin > probs[best]) {
		best = quick
	}

	return traits.Probabilistic{
		Value:         best,
		Probabilities: probs,
		Conf:          probs[best],
		Model:         eyeModelName,
	}
}

func PredictHair(g genome.Genome) traits.Result {
	if informative(g, hairModel...) == 0 {
		return traits.Unknown{Reason: "no hair pigmentation variants called"}
	}

	labels := make([]string, len(hairModel))
	logits := make([]float64, len(hairModel))
	for i, c := range hairModel {
		labels[i] = c.Label
		logits[i] = c.logit(g)
	}
	p := softmax(logits)

	probs := make(map[string]float64, len(labels))
	for i, l := range labels {
		probs[l] = p[i]
	}
	best := argmax(labels, probs)

	return traits.Probabilistic{
		Value:         best,
		Probabilities: probs,
		Conf:          probs[best],
		Model:         hairModelName,
	}
}

// PredictSkin maps one logistic melanin index onto the nearest shade.
func PredictSkin(g genome.Genome) traits.Result {
	if informative(g, skinModel) == 0 {
		return traits.Unknown{Reason: "no skin pigmentation variants called"}
	}

	index := 1 / (1 + math.Exp(-skinModel.logit(g)))

	best := skinShades[0]
	distance := math.Abs(best.Target - index)
	for _, s := range skinShades[1:] {
		if d := math.Abs(s.Target - index); d < distance {
			best, distance = s, d
		}
	}

	return traits.Continuous{
		Value: best.Label,
		Index: index,
		Conf:  clamp01(1 - distance/skinShadeSpacing),
		Model: skinModelName,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
