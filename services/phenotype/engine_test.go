package phenotype

import (
	"testing"

	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/traits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genomeOf(calls map[string]string) genome.Genome {
	g := genome.Genome{}
	pos := 1
	for rsid, gt := range calls {
		g[rsid] = genome.Call{Genotype: gt, Chromosome: "1", Position: pos}
		pos++
	}
	return g
}

func TestEyeHerc2Override(t *testing.T) {
	res := PredictEye(genomeOf(map[string]string{"rs12913832": "A/G", "rs1129038": "A/A"}))

	eye, ok := res.(traits.Probabilistic)
	require.True(t, ok)
	assert.Equal(t, "Brown", eye.Value)
	assert.Equal(t, 0.82, eye.Conf)
	assert.Equal(t, eyeOverrideModel, eye.Model)
	assert.Equal(t, 0.02, eye.Probabilities["Blue"])
}

func TestEyeLowCoverage(t *testing.T) {
	res := PredictEye(genomeOf(map[string]string{"rs12913832": "G/G"}))
	eye, ok := res.(traits.Probabilistic)
	require.True(t, ok)
	assert.Equal(t, "Blue", eye.Value)
	assert.Equal(t, 1.0, eye.Conf)
	assert.Equal(t, map[string]float64{"Blue": 1.0}, eye.Probabilities)

	assert.True(t, traits.IsUnknown(PredictEye(genome.Genome{})))
	assert.True(t, traits.IsUnknown(PredictEye(genomeOf(map[string]string{"rs1800407": "C/T"}))))
}

func TestEyeSoftmax(t *testing.T) {
	res := PredictEye(genomeOf(map[string]string{"rs12913832": "G/G", "rs1129038": "A/A"}))
	eye, ok := res.(traits.Probabilistic)
	require.True(t, ok)

	assert.Equal(t, "Blue", eye.Value)
	assert.Equal(t, eyeModelName, eye.Model)
	assert.Equal(t, eye.Probabilities["Blue"], eye.Conf)

	total := 0.0
	for _, p := range eye.Probabilities {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, eye.Probabilities["Green"]/0.7, eye.Probabilities["Hazel"]/0.3, 1e-12)
}

func TestHair(t *testing.T) {
	assert.True(t, traits.IsUnknown(PredictHair(genome.Genome{})))

	res := PredictHair(genomeOf(map[string]string{"rs1805007": "T/T", "rs1805008": "C/T"}))
	hair, ok := res.(traits.Probabilistic)
	require.True(t, ok)
	assert.Equal(t, "Red", hair.Value)
	assert.Len(t, hair.Probabilities, 4)
}

func TestSkin(t *testing.T) {
	assert.True(t, traits.IsUnknown(PredictSkin(genome.Genome{})))

	dark, ok := PredictSkin(genomeOf(map[string]string{"rs1426654": "A/A", "rs16891982": "C/C"})).(traits.Continuous)
	require.True(t, ok)
	assert.Equal(t, "Very Dark", dark.Value)
	assert.InDelta(t, 0.99976, dark.Index, 1e-4)
	assert.InDelta(t, 0.3349, dark.Conf, 1e-3)

	light, ok := PredictSkin(genomeOf(map[string]string{"rs1426654": "G/G"})).(traits.Continuous)
	require.True(t, ok)
	assert.Equal(t, "Very Light", light.Value)
	assert.InDelta(t, 0.8303, light.Conf, 1e-3)
}

func TestFrecklingAndTanning(t *testing.T) {
	f, ok := PredictFreckling(genomeOf(map[string]string{"rs1805007": "T/T"})).(traits.Categorical)
	require.True(t, ok)
	assert.Equal(t, "Moderate", f.Value)
	assert.InDelta(t, 2.4, f.Score, 1e-9)
	assert.InDelta(t, 0.2, f.Conf, 1e-9)

	f, _ = PredictFreckling(genomeOf(map[string]string{"rs1805007": "T/T", "rs12203592": "C/T"})).(traits.Categorical)
	assert.Equal(t, "High", f.Value)

	assert.Equal(t, "Tans Easily", PredictTanning(genomeOf(map[string]string{"rs1426654": "A/A"})).Label())
	assert.Equal(t, "Burns Easily", PredictTanning(genomeOf(map[string]string{"rs1805007": "T/T"})).Label())
	assert.Equal(t, "Burns then Tans", PredictTanning(genomeOf(map[string]string{"rs1805007": "C/C"})).Label())
	assert.True(t, traits.IsUnknown(PredictTanning(genome.Genome{})))
}

func TestFace(t *testing.T) {
	assert.True(t, traits.IsUnknown(PredictFace(genome.Genome{})))

	face, ok := PredictFace(genomeOf(map[string]string{"rs4648379": "A/A", "rs3827760": "A/G"})).(traits.Composite)
	require.True(t, ok)
	assert.Equal(t, "High", face.Parts["nose_width"].Label())
	assert.Equal(t, "Moderate", face.Parts["cheek_prominence"].Label())
	assert.True(t, traits.IsUnknown(face.Parts["lip_fullness"]))
	assert.Equal(t, `{"cheek_prominence":"Moderate","lip_fullness":"Unknown","nose_width":"High"}`, face.OutcomeKey())
}

func TestSingleVariantLookups(t *testing.T) {
	g := genomeOf(map[string]string{
		"rs4988235":  "T/T",
		"rs762551":   "C/A",
		"rs1815739":  "T/C",
		"rs671":      "G/A",
		"rs16969968": "G/G",
		"rs1801133":  "C/G",
	})

	assert.Equal(t, "Likely tolerant (TT)", PredictLactose(g).Label())
	assert.Equal(t, "Intermediate", PredictCaffeine(g).Label())
	assert.Equal(t, "Mixed", PredictMuscle(g).Label())
	assert.Equal(t, "Likely flush (heterozygous)", PredictAlcoholFlush(g).Label())
	assert.Equal(t, "Lower dependence risk", PredictNicotine(g).Label())
	assert.Equal(t, 1.0, PredictNicotine(g).Confidence())

	// present but not in the table
	assert.True(t, traits.IsUnknown(PredictFolate(g)))

	assert.Equal(t, "Tolerant carrier (CT)", PredictLactose(genomeOf(map[string]string{"rs4988235": "C/T"})).Label())
	assert.Equal(t, "Likely lactose sensitive (CC)", PredictLactose(genomeOf(map[string]string{"rs4988235": "C/C"})).Label())
	assert.True(t, traits.IsUnknown(PredictLactose(genomeOf(map[string]string{"rs4988235": "G/G"}))))
	assert.True(t, traits.IsUnknown(PredictLactose(genome.Genome{})))
}

func TestPredictAPOE(t *testing.T) {
	apoe, ok := PredictAPOE(genomeOf(map[string]string{"rs429358": "T/C", "rs7412": "C/C"})).(traits.Genotyped)
	require.True(t, ok)
	assert.Equal(t, "e3/e4", apoe.Genotype)
	assert.Equal(t, "Elevated", apoe.Risk)

	partial, ok := PredictAPOE(genomeOf(map[string]string{"rs429358": "C/T", "rs7412": "T/C"})).(traits.Genotyped)
	require.True(t, ok)
	assert.Equal(t, 0.5, partial.Conf)

	assert.True(t, traits.IsUnknown(PredictAPOE(genome.Genome{})))
}

func TestPredictIsPure(t *testing.T) {
	g := genomeOf(map[string]string{
		"rs12913832": "G/G", "rs1129038": "A/G", "rs16891982": "C/G",
		"rs1805007": "C/T", "rs4988235": "C/T", "rs671": "G/G",
	})

	first := Predict(g)
	second := Predict(g)

	assert.Len(t, first, len(traits.Names()))
	for _, name := range traits.Names() {
		assert.Contains(t, first, name)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, first.Summary(), second.Summary())
}
