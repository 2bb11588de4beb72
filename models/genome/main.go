// Package genome holds the canonical in-memory genotype model shared by every
// engine: a map from variant identifier (rsID) to a single diploid call.
package genome

import (
	"sort"
	"strings"

	"github.com/odurisile/DNA-Insight/models/constants"
	z "github.com/odurisile/DNA-Insight/models/constants/zygosity"
)

// UnknownAllele stands in for any allele that could not be read.
const UnknownAllele byte = 'N'

const separator = "/"

type Call struct {
	Genotype   string `json:"genotype"`
	Chromosome string `json:"chrom"`
	Position   int    `json:"pos"`
}

// Genome maps a variant identifier to its call. An absent key means no
// information; a present key always carries a non-empty genotype.
type Genome map[string]Call

func (g Genome) Has(rsid string) bool {
	_, ok := g[rsid]
	return ok
}

// Genotype returns the normalized genotype of rsid, if present.
func (g Genome) Genotype(rsid string) (string, bool) {
	call, ok := g[rsid]
	if !ok || call.Genotype == "" {
		return "", false
	}
	return call.Genotype, true
}

// Keys returns the variant identifiers in sorted order.
func (g Genome) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeGenotype renders raw vendor genotype text as "X/Y".
//
// Whitespace is stripped, pipe and backslash separators become "/", a separator
// is inserted into unseparated two-character pairs and the result is upper-cased.
// No-call characters inside a pair become UnknownAllele. Allele order is kept.
func NormalizeGenotype(raw string) string {
	g := strings.Join(strings.Fields(raw), "")
	if g == "" {
		return ""
	}
	g = strings.ToUpper(g)
	g = strings.NewReplacer("|", separator, "\\", separator).Replace(g)

	if len(g) == 2 && !strings.Contains(g, separator) {
		g = g[:1] + separator + g[1:]
	}

	if len(g) == 3 && g[1] == '/' {
		return string(noCall(g[0])) + separator + string(noCall(g[2]))
	}
	return g
}

func noCall(b byte) byte {
	switch b {
	case '-', '0', '.':
		return UnknownAllele
	}
	return b
}

// Compact drops separators and whitespace: "A/G" -> "AG".
func Compact(genotype string) string {
	g := strings.ToUpper(genotype)
	g = strings.NewReplacer(separator, "", "|", "", "\\", "", " ", "").Replace(g)
	return g
}

// Alleles splits a diploid genotype into its two alleles. Anything that is not
// exactly two alleles yields the unknown sentinel for both copies.
func Alleles(genotype string) (byte, byte, bool) {
	g := Compact(genotype)
	if len(g) != 2 {
		return UnknownAllele, UnknownAllele, false
	}
	return g[0], g[1], true
}

// Join renders two alleles as a genotype.
func Join(a, b byte) string {
	return string(a) + separator + string(b)
}

// Canonical renders the unordered pair deterministically, alleles sorted.
func Canonical(genotype string) string {
	a, b, ok := Alleles(genotype)
	if !ok {
		return Compact(genotype)
	}
	if b < a {
		a, b = b, a
	}
	return Join(a, b)
}

// Dosage counts copies (0-2) of allele in genotype.
func Dosage(genotype string, allele string) int {
	if genotype == "" || allele == "" {
		return 0
	}
	return strings.Count(Compact(genotype), strings.ToUpper(allele))
}

// Contains reports whether any copy of allele is present.
func Contains(genotype string, allele string) bool {
	return Dosage(genotype, allele) > 0
}

// Zygosity classifies a genotype; unreadable pairs are Unknown.
func Zygosity(genotype string) constants.Zygosity {
	a, b, ok := Alleles(genotype)
	if !ok || a == UnknownAllele || b == UnknownAllele {
		return z.Unknown
	}
	if a == b {
		return z.Homozygous
	}
	return z.Heterozygous
}

func IsHeterozygous(genotype string) bool {
	return Zygosity(genotype) == z.Heterozygous
}
