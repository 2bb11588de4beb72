package panel

import (
	"testing"

	"github.com/odurisile/DNA-Insight/models/genome"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	require.Len(t, defaultCatalog.Blocks, 9)
	assert.Equal(t, "Pigmentation (HERC2 / OCA2)", defaultCatalog.Blocks[0].Title)
	assert.Len(t, defaultCatalog.KeySnps[EyeSnps], 5)
	assert.Len(t, defaultCatalog.KeySnps[HairSnps], 5)
	assert.Len(t, defaultCatalog.KeySnps[SkinSnps], 5)
}

func TestExtractKeepsOnlyCalledBlocks(t *testing.T) {
	g := genome.Genome{
		"rs12913832": {Genotype: "A/G", Chromosome: "15", Position: 1},
		"rs671":      {Genotype: "G/G", Chromosome: "12", Position: 2},
		"rs9999999":  {Genotype: "C/C", Chromosome: "1", Position: 3},
	}

	blocks := Extract(g)
	require.Len(t, blocks, 2)

	assert.Equal(t, "Pigmentation (HERC2 / OCA2)", blocks[0].Title)
	assert.Equal(t, []Snp{{Rsid: "rs12913832", Gene: "HERC2", Genotype: "A/G"}}, blocks[0].Snps)
	assert.Equal(t, "Alcohol Flush", blocks[1].Title)

	assert.Empty(t, Extract(genome.Genome{}))
	assert.NotNil(t, Extract(genome.Genome{}))
}

func TestKeySnps(t *testing.T) {
	g := genome.Genome{
		"rs16891982": {Genotype: "C/G", Chromosome: "5", Position: 1},
		"rs1805007":  {Genotype: "C/T", Chromosome: "16", Position: 2},
	}

	keys := KeySnps(g)
	assert.Equal(t, map[string]string{"rs16891982": "C/G"}, keys[EyeSnps])
	assert.Equal(t, map[string]string{"rs16891982": "C/G", "rs1805007": "C/T"}, keys[HairSnps])
	assert.Equal(t, map[string]string{"rs16891982": "C/G", "rs1805007": "C/T"}, keys[SkinSnps])
}

func TestParseCatalogRejectsGarbage(t *testing.T) {
	_, err := ParseCatalog([]byte("blocks: [unterminated"))
	assert.Error(t, err)
}
