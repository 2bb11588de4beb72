package genome

import (
	"testing"

	z "github.com/odurisile/DNA-Insight/models/constants/zygosity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGenotype(t *testing.T) {
	cases := map[string]string{
		"AG":    "A/G",
		"A G":   "A/G",
		"A|G":   "A/G",
		"a/g":   "A/G",
		"A\\G":  "A/G",
		" tt ":  "T/T",
		"--":    "N/N",
		"":      "",
		"   ":   "",
		"A":     "A",
		"G/A":   "G/A",
		"di":    "D/I",
		"0/0":   "N/N",
		"ACGT":  "ACGT",
		"c | t": "C/T",
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeGenotype(raw), "raw %q", raw)
	}
}

func TestNormalizeGenotypeIsIdempotent(t *testing.T) {
	for _, raw := range []string{"AG", "a|g", "--", "T", "C C", "G/A", "N/N"} {
		once := NormalizeGenotype(raw)
		assert.Equal(t, once, NormalizeGenotype(once), "raw %q", raw)
	}
}

func TestAllelesAndCanonical(t *testing.T) {
	a, b, ok := Alleles("G/A")
	assert.True(t, ok)
	assert.Equal(t, byte('G'), a)
	assert.Equal(t, byte('A'), b)

	a, b, ok = Alleles("A")
	assert.False(t, ok)
	assert.Equal(t, UnknownAllele, a)
	assert.Equal(t, UnknownAllele, b)

	assert.Equal(t, "A/G", Canonical("G/A"))
	assert.Equal(t, Canonical("A/G"), Canonical("G/A"))
	assert.Equal(t, "C/C", Canonical("C/C"))
}

func TestDosage(t *testing.T) {
	assert.Equal(t, 0, Dosage("", "A"))
	assert.Equal(t, 0, Dosage("C/C", "A"))
	assert.Equal(t, 1, Dosage("A/C", "a"))
	assert.Equal(t, 2, Dosage("A/A", "A"))
	assert.Equal(t, 2, Dosage("A|A", "A"))
	assert.True(t, Contains("N/A", "A"))
}

func TestZygosity(t *testing.T) {
	assert.Equal(t, z.Homozygous, Zygosity("A/A"))
	assert.Equal(t, z.Heterozygous, Zygosity("A/G"))
	assert.Equal(t, z.Unknown, Zygosity("N/G"))
	assert.Equal(t, z.Unknown, Zygosity("A"))
	assert.True(t, IsHeterozygous("C/T"))
	assert.False(t, IsHeterozygous("T/T"))
}

func TestGenomeLookups(t *testing.T) {
	g := Genome{
		"rs2": {Genotype: "A/G", Chromosome: "1", Position: 20},
		"rs1": {Genotype: "C/C", Chromosome: "1", Position: 10},
	}

	gt, ok := g.Genotype("rs2")
	assert.True(t, ok)
	assert.Equal(t, "A/G", gt)

	_, ok = g.Genotype("rs3")
	assert.False(t, ok)
	assert.False(t, g.Has("rs3"))
	assert.Equal(t, []string{"rs1", "rs2"}, g.Keys())
}
