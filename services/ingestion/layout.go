package ingestion

import (
	"strings"

	"github.com/odurisile/DNA-Insight/models/constants"
	"github.com/odurisile/DNA-Insight/models/constants/vendor"
)

// Layout gives the column order of one vendor export.
type Layout struct {
	Rsid       int
	Chromosome int
	Position   int
	Genotype   int
	// SecondAllele is the column of a split second allele, or -1.
	SecondAllele int
}

var defaultLayout = Layout{Rsid: 0, Chromosome: 1, Position: 2, Genotype: 3, SecondAllele: -1}

// Layouts is keyed by vendor. Every known export shares the same four leading
// columns; AncestryDNA writes each allele in its own column.
var Layouts = map[constants.Vendor]Layout{
	vendor.TwentyThreeAndMe: defaultLayout,
	vendor.Ancestry:         {Rsid: 0, Chromosome: 1, Position: 2, Genotype: 3, SecondAllele: 4},
	vendor.MyHeritage:       defaultLayout,
	vendor.FTDNA:            defaultLayout,
	vendor.Generic:          defaultLayout,
	vendor.Unknown:          defaultLayout,
}

func LayoutFor(v constants.Vendor) Layout {
	if l, ok := Layouts[v]; ok {
		return l
	}
	return defaultLayout
}

func (l Layout) minColumns() int {
	max := l.Rsid
	for _, c := range []int{l.Chromosome, l.Position, l.Genotype} {
		if c > max {
			max = c
		}
	}
	return max + 1
}

// rawGenotype reads the genotype cell, joining split single-allele columns
// when the layout has them and the row carries them.
func (l Layout) rawGenotype(row []string) string {
	first := strings.TrimSpace(row[l.Genotype])
	if l.SecondAllele < 0 || l.SecondAllele >= len(row) {
		return first
	}
	second := strings.TrimSpace(row[l.SecondAllele])
	if len(first) == 1 && len(second) == 1 {
		return first + second
	}
	return first
}
