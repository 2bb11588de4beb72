// Package panel extracts the curated evidence view of a genome: a handful of
// named gene blocks and the key pigmentation markers compared across parents.
package panel

import (
	_ "embed"
	"fmt"

	"github.com/odurisile/DNA-Insight/models/genome"

	yaml "gopkg.in/yaml.v2"
)

//go:embed blocks.yml
var blocksYml []byte

const (
	EyeSnps  = "eye"
	HairSnps = "hair"
	SkinSnps = "skin"
)

type Snp struct {
	Rsid     string `yaml:"rsid" json:"rsid"`
	Gene     string `yaml:"gene" json:"gene"`
	Genotype string `yaml:"-" json:"genotype"`
}

type Block struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Snps        []Snp  `yaml:"snps" json:"snps"`
}

type Catalog struct {
	Blocks  []Block             `yaml:"blocks"`
	KeySnps map[string][]string `yaml:"key_snps"`
}

var defaultCatalog = mustParse(blocksYml)

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing gene blocks: %w", err)
	}
	return &c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Extract returns the default catalog's blocks that have at least one call.
func Extract(g genome.Genome) []Block {
	return defaultCatalog.Extract(g)
}

// KeySnps returns the eye, hair and skin marker genotypes present in g.
func KeySnps(g genome.Genome) map[string]map[string]string {
	return defaultCatalog.KeySnpsOf(g)
}

func (c *Catalog) Extract(g genome.Genome) []Block {
	out := []Block{}
	for _, block := range c.Blocks {
		calls := []Snp{}
		for _, snp := range block.Snps {
			if gt, ok := g.Genotype(snp.Rsid); ok {
				calls = append(calls, Snp{Rsid: snp.Rsid, Gene: snp.Gene, Genotype: gt})
			}
		}
		if len(calls) == 0 {
			continue
		}
		out = append(out, Block{Title: block.Title, Description: block.Description, Snps: calls})
	}
	return out
}

func (c *Catalog) KeySnpsOf(g genome.Genome) map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.KeySnps))
	for group, rsids := range c.KeySnps {
		calls := map[string]string{}
		for _, rsid := range rsids {
			if gt, ok := g.Genotype(rsid); ok {
				calls[rsid] = gt
			}
		}
		out[group] = calls
	}
	return out
}
