// Package reference exposes the two read-only datasets the risk engine
// consults: the polygenic coefficient table and the pathogenic-variant
// database. Both are optional; an absent dataset reads as empty.
package reference

import (
	"sort"
	"strings"
)

type Coefficient struct {
	EffectAllele string  `json:"effectAllele"`
	Weight       float64 `json:"weight"`
}

type CoefficientTable interface {
	// Trait returns rsid -> coefficient for one (lower-case) trait.
	Trait(name string) (map[string]Coefficient, bool)
	Traits() []string
}

type PathogenicVariant struct {
	Gene         string `json:"gene"`
	Name         string `json:"variant"`
	Significance string `json:"type"`
	Inheritance  string `json:"inheritance"`
}

func (v PathogenicVariant) IsPathogenic() bool {
	return strings.Contains(strings.ToLower(v.Significance), "patho")
}

func (v PathogenicVariant) IsRecessive() bool {
	return strings.Contains(strings.ToLower(v.Inheritance), "recess")
}

type PathogenicDatabase interface {
	Lookup(rsid string) (PathogenicVariant, bool)
	Len() int
}

type Provider interface {
	Coefficients() CoefficientTable
	Pathogenic() PathogenicDatabase
}

type coefficientTable map[string]map[string]Coefficient

func (t coefficientTable) Trait(name string) (map[string]Coefficient, bool) {
	rows, ok := t[strings.ToLower(name)]
	return rows, ok
}

func (t coefficientTable) Traits() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (t coefficientTable) rows() int {
	n := 0
	for _, r := range t {
		n += len(r)
	}
	return n
}

type pathogenicDatabase map[string]PathogenicVariant

func (d pathogenicDatabase) Lookup(rsid string) (PathogenicVariant, bool) {
	v, ok := d[rsid]
	return v, ok
}

func (d pathogenicDatabase) Len() int {
	return len(d)
}

// StaticProvider serves fixed in-memory tables.
type StaticProvider struct {
	coefficients coefficientTable
	pathogenic   pathogenicDatabase
}

// NewStaticProvider copies the given tables; trait names are lower-cased and
// effect alleles upper-cased the same way the file loaders do.
func NewStaticProvider(coefficients map[string]map[string]Coefficient, pathogenic map[string]PathogenicVariant) *StaticProvider {
	ct := coefficientTable{}
	for trait, rows := range coefficients {
		key := strings.ToLower(trait)
		if ct[key] == nil {
			ct[key] = map[string]Coefficient{}
		}
		for rsid, c := range rows {
			ct[key][rsid] = Coefficient{EffectAllele: strings.ToUpper(c.EffectAllele), Weight: c.Weight}
		}
	}

	pd := pathogenicDatabase{}
	for rsid, v := range pathogenic {
		pd[rsid] = v
	}

	return &StaticProvider{coefficients: ct, pathogenic: pd}
}

func (p *StaticProvider) Coefficients() CoefficientTable { return p.coefficients }
func (p *StaticProvider) Pathogenic() PathogenicDatabase { return p.pathogenic }
