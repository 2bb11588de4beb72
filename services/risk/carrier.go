package risk

import (
	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/health"
	"github.com/odurisile/DNA-Insight/services/reference"
)

const (
	panelCarrierVariant  = "Known Pathogenic Mutation"
	panelDominantVariant = "Known Pathogenic"
)

// DetectCarriers runs the database pass and then both curated panels.
// Findings from the different sources are concatenated, so one variant can
// be reported once per source.
func DetectCarriers(g genome.Genome, db reference.PathogenicDatabase, panels *Panels) (carriers, dominant []health.Finding) {
	carriers = []health.Finding{}
	dominant = []health.Finding{}

	if db != nil && db.Len() > 0 {
		for _, rsid := range g.Keys() {
			v, ok := db.Lookup(rsid)
			if !ok || !v.IsPathogenic() {
				continue
			}
			gt, _ := g.Genotype(rsid)

			if v.IsRecessive() {
				// homozygous recessive calls are not carriers
				if genome.IsHeterozygous(gt) {
					carriers = append(carriers, health.Finding{
						Gene: v.Gene, Rsid: rsid, Variant: v.Name,
						Status: health.StatusDatabaseCarrier, Genotype: gt, Source: health.SourceDatabase,
					})
				}
				continue
			}

			dominant = append(dominant, health.Finding{
				Gene: v.Gene, Rsid: rsid, Variant: v.Name,
				Status: health.StatusDominant, Genotype: gt, Source: health.SourceDatabase,
			})
		}
	}

	if panels == nil {
		return carriers, dominant
	}

	for _, p := range panels.Recessive {
		for _, rsid := range p.Rsids {
			gt, ok := g.Genotype(rsid)
			if !ok || !genome.IsHeterozygous(gt) {
				continue
			}
			carriers = append(carriers, health.Finding{
				Gene: p.Gene, Rsid: rsid, Variant: panelCarrierVariant,
				Status: health.StatusPanelCarrier, Genotype: gt, Source: health.SourcePanel,
			})
		}
	}

	for _, p := range panels.Dominant {
		for _, rsid := range p.Rsids {
			gt, ok := g.Genotype(rsid)
			if !ok {
				continue
			}
			dominant = append(dominant, health.Finding{
				Gene: p.Gene, Rsid: rsid, Variant: panelDominantVariant,
				Status: health.StatusDominant, Genotype: gt, Source: health.SourcePanel,
			})
		}
	}

	return carriers, dominant
}
