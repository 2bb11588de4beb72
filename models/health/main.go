package health

import (
	"github.com/odurisile/DNA-Insight/models/constants"
)

// Finding sources
const (
	SourceDatabase = "database"
	SourcePanel    = "panel"
)

// Finding statuses
const (
	StatusDatabaseCarrier = "Carrier (ClinVar)"
	StatusPanelCarrier    = "Carrier"
	StatusDominant        = "Pathogenic (Dominant)"
)

// PolygenicScore is one trait's PRS. The z-score is the raw score read as if
// already standardised (mean 0, sd 1); it is not population calibrated.
type PolygenicScore struct {
	RawScore   float64 `json:"raw_score"`
	Z          float64 `json:"z"`
	Percentile float64 `json:"percentile"`
	SnpsUsed   int     `json:"snps_used"`
}

// PolygenicScores holds one entry per scored trait; a nil entry means no
// reference variant overlapped the genome (undefined, not zero).
type PolygenicScores map[string]*PolygenicScore

// PercentileOf returns nil when the trait is absent or undefined.
func (p PolygenicScores) PercentileOf(trait string) *float64 {
	s, ok := p[trait]
	if !ok || s == nil {
		return nil
	}
	v := s.Percentile
	return &v
}

type APOEResult struct {
	Genotype   string                 `json:"genotype"`
	Risk       constants.RiskCategory `json:"risk"`
	Confidence float64                `json:"confidence"`
}

type Finding struct {
	Gene     string `json:"gene"`
	Rsid     string `json:"rsid"`
	Variant  string `json:"variant"`
	Status   string `json:"status"`
	Genotype string `json:"genotype"`
	Source   string `json:"source"`
}

type TargetedResult struct {
	Rsid       string                 `json:"rsid"`
	RiskAllele string                 `json:"risk_allele"`
	Category   constants.RiskCategory `json:"category"`
	Dosage     int                    `json:"dosage"`
	Genotype   string                 `json:"genotype,omitempty"`
}

type Summary map[constants.Condition]constants.RiskCategory

type Profile struct {
	APOE             APOEResult                `json:"apoe"`
	PRS              PolygenicScores           `json:"prs"`
	Carriers         []Finding                 `json:"carrier_status"`
	Dominant         []Finding                 `json:"dominant_mutations"`
	Summary          Summary                   `json:"risk_summary"`
	HeightPercentile *float64                  `json:"height_percentile"`
	Targeted         map[string]TargetedResult `json:"targeted"`
}
