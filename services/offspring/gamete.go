package offspring

import (
	"sort"

	"github.com/odurisile/DNA-Insight/models/genome"
)

const maxCrossovers = 3

// Gamete holds one allele per variant of the parent it was drawn from.
type Gamete map[string]byte

type locus struct {
	rsid     string
	position int
	genotype string
}

// MakeGamete simulates meiosis over one parent. Each chromosome gets 1 to 3
// crossovers (never more than it has variants) at distinct indices of its
// position-ordered variants, and a random starting copy. Unreadable
// genotypes contribute the unknown allele.
func MakeGamete(parent genome.Genome, src Source) Gamete {
	byChromosome := map[string][]locus{}
	for rsid, c := range parent {
		byChromosome[c.Chromosome] = append(byChromosome[c.Chromosome], locus{rsid, c.Position, c.Genotype})
	}

	// fixed visiting order so a seed always consumes the source identically
	chromosomes := make([]string, 0, len(byChromosome))
	for chrom := range byChromosome {
		chromosomes = append(chromosomes, chrom)
	}
	sort.Strings(chromosomes)

	gamete := make(Gamete, len(parent))
	for _, chrom := range chromosomes {
		loci := byChromosome[chrom]
		sort.Slice(loci, func(i, j int) bool {
			if loci[i].position != loci[j].position {
				return loci[i].position < loci[j].position
			}
			return loci[i].rsid < loci[j].rsid
		})

		k := 1 + src.Intn(maxCrossovers)
		if k > len(loci) {
			k = len(loci)
		}
		crossovers := sampleDistinct(len(loci), k, src)
		side := src.Intn(2)

		next := 0
		for i, l := range loci {
			gamete[l.rsid] = allele(l.genotype, side)
			if next < len(crossovers) && i == crossovers[next] {
				side = 1 - side
				next++
			}
		}
	}
	return gamete
}

func allele(genotype string, side int) byte {
	a, b, ok := genome.Alleles(genotype)
	if !ok {
		return genome.UnknownAllele
	}
	if side == 0 {
		return a
	}
	return b
}

// sampleDistinct draws k distinct indices from [0, n) by a partial
// Fisher-Yates shuffle over a sparse swap map, and returns them sorted.
func sampleDistinct(n, k int, src Source) []int {
	swapped := make(map[int]int, 2*k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		out[i] = at(j)
		swapped[j] = at(i)
	}
	sort.Ints(out)
	return out
}
