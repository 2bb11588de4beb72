package dtos

import (
	"time"

	"github.com/odurisile/DNA-Insight/models/health"
	"github.com/odurisile/DNA-Insight/models/ingest"
	"github.com/odurisile/DNA-Insight/models/traits"
	"github.com/odurisile/DNA-Insight/services/ingestion"
	"github.com/odurisile/DNA-Insight/services/offspring"
	"github.com/odurisile/DNA-Insight/services/panel"
)

type GeneralError struct {
	Message string `json:"message"`
}

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type StatusResponseDto struct {
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints,omitempty"`
}

type IngestionSummaryDto struct {
	Request ingest.UploadResponseDTO `json:"request"`
	Stats   ingestion.Stats          `json:"stats"`
}

// UploadDnaResponseDto is the single-genome analysis. Risk repeats Health
// for older clients.
type UploadDnaResponseDto struct {
	Status        string              `json:"status"`
	ReportId      string              `json:"reportId,omitempty"`
	Ingestion     IngestionSummaryDto `json:"ingestion"`
	Traits        traits.Set          `json:"traits"`
	Health        health.Profile      `json:"health"`
	Risk          health.Profile      `json:"risk"`
	GenotypePanel []panel.Block       `json:"genotype_panel"`
}

type ParentSummaryDto struct {
	Ingestion    IngestionSummaryDto          `json:"ingestion"`
	Traits       traits.Set                   `json:"traits"`
	Health       health.Profile               `json:"health"`
	KeyGenotypes map[string]*string           `json:"key_genotypes"`
	KeySnps      map[string]map[string]string `json:"key_snps"`
}

type UploadParentsResponseDto struct {
	ReportId string             `json:"reportId,omitempty"`
	ParentA  ParentSummaryDto   `json:"parentA"`
	ParentB  ParentSummaryDto   `json:"parentB"`
	Child    *offspring.Outcome `json:"child"`
}
