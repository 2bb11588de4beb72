package offspring

import (
	"strings"

	"github.com/odurisile/DNA-Insight/models/genome"
)

// Template decides which variants a child genome carries.
type Template int

const (
	// TemplateUnion covers every variant called in either parent.
	TemplateUnion Template = iota
	// TemplateFirstParent covers only the first parent's variants; variants
	// seen only in the second parent are dropped.
	TemplateFirstParent
)

func (t Template) String() string {
	if t == TemplateFirstParent {
		return "first-parent"
	}
	return "union"
}

func ParseTemplate(text string) Template {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "first-parent", "first_parent", "firstparent":
		return TemplateFirstParent
	default:
		return TemplateUnion
	}
}

// MakeChild pairs an allele from each gamete per templated variant.
// Chromosome and position come from the first parent when it has the
// variant. A gamete without the variant contributes the unknown allele.
func MakeChild(a, b Gamete, parentA, parentB genome.Genome, tpl Template) genome.Genome {
	child := make(genome.Genome, len(parentA))

	add := func(rsid string, meta genome.Call) {
		alleleA, ok := a[rsid]
		if !ok {
			alleleA = genome.UnknownAllele
		}
		alleleB, ok := b[rsid]
		if !ok {
			alleleB = genome.UnknownAllele
		}
		child[rsid] = genome.Call{
			Genotype:   genome.Join(alleleA, alleleB),
			Chromosome: meta.Chromosome,
			Position:   meta.Position,
		}
	}

	for rsid, c := range parentA {
		add(rsid, c)
	}
	if tpl == TemplateUnion {
		for rsid, c := range parentB {
			if _, ok := parentA[rsid]; !ok {
				add(rsid, c)
			}
		}
	}
	return child
}
