package analysis

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/odurisile/DNA-Insight/contexts"
	"github.com/odurisile/DNA-Insight/models/dtos"
	dtoErrors "github.com/odurisile/DNA-Insight/models/dtos/errors"
	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/indexes"
	"github.com/odurisile/DNA-Insight/models/ingest"
	"github.com/odurisile/DNA-Insight/mvc"
	"github.com/odurisile/DNA-Insight/services/ingestion"
	"github.com/odurisile/DNA-Insight/services/offspring"
	"github.com/odurisile/DNA-Insight/services/panel"
	"github.com/odurisile/DNA-Insight/services/phenotype"

	"github.com/labstack/echo"
)

// key genotypes echoed for each parent, null when not called
var keyGenotypeRsids = []string{"rs12913832"}

func UploadDna(c echo.Context) error {
	fmt.Printf("[%s] - UploadDna hit!\n", time.Now())
	gc := c.(*contexts.InsightContext)

	res, req, err := mvc.IngestFormFile(gc, "file")
	if err != nil {
		return mvc.IngestionErrorResponse(c, err)
	}

	traitSet := phenotype.Predict(res.Genome)
	profile := gc.RiskEngine.Compute(res.Genome)

	respDTO := dtos.UploadDnaResponseDto{
		Status:        "ok",
		ReportId:      mvc.NewReportId(gc),
		Ingestion:     mvc.IngestionSummary(res, req),
		Traits:        traitSet,
		Health:        profile,
		Risk:          profile,
		GenotypePanel: panel.Extract(res.Genome),
	}

	if respDTO.ReportId != "" {
		summary := traitSet.Summary()
		for condition, category := range mvc.RiskSummary(profile) {
			summary[condition] = category
		}
		report := indexes.Report{
			Id:        respDTO.ReportId,
			Kind:      indexes.SingleReport,
			Filenames: []string{req.Filename},
			Vendor:    string(res.Vendor),
			Summary:   summary,
		}
		if err := mvc.StoreReport(gc, report, respDTO); err != nil {
			respDTO.ReportId = ""
		}
	}

	return c.JSON(http.StatusOK, respDTO)
}

func UploadParents(c echo.Context) error {
	fmt.Printf("[%s] - UploadParents hit!\n", time.Now())
	gc := c.(*contexts.InsightContext)

	resA, reqA, err := mvc.IngestFormFile(gc, "file1")
	if err != nil {
		return mvc.IngestionErrorResponse(c, err)
	}
	resB, reqB, err := mvc.IngestFormFile(gc, "file2")
	if err != nil {
		return mvc.IngestionErrorResponse(c, err)
	}

	child, err := gc.Simulator.Simulate(gc.Request().Context(), resA.Genome, resB.Genome, offspring.Request{
		Trials: gc.Simulations,
		Seed:   gc.Seed,
	})
	if errors.Is(err, offspring.ErrMissingParent) {
		return c.JSON(http.StatusUnprocessableEntity, dtoErrors.CreateSimpleUnprocessableEntity(
			"No genotype calls could be read from one of the parent files"))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dtoErrors.CreateSimpleInternalServerError(err.Error()))
	}

	respDTO := dtos.UploadParentsResponseDto{
		ReportId: mvc.NewReportId(gc),
		ParentA:  summariseParent(gc, resA, reqA),
		ParentB:  summariseParent(gc, resB, reqB),
		Child:    child,
	}

	if respDTO.ReportId != "" {
		report := indexes.Report{
			Id:        respDTO.ReportId,
			Kind:      indexes.OffspringReport,
			Filenames: []string{reqA.Filename, reqB.Filename},
			Summary:   child.ChildTraits.Summary(),
		}
		if err := mvc.StoreReport(gc, report, respDTO); err != nil {
			respDTO.ReportId = ""
		}
	}

	return c.JSON(http.StatusOK, respDTO)
}

func summariseParent(gc *contexts.InsightContext, res *ingestion.Result, req *ingest.UploadRequest) dtos.ParentSummaryDto {
	return dtos.ParentSummaryDto{
		Ingestion:    mvc.IngestionSummary(res, req),
		Traits:       phenotype.Predict(res.Genome),
		Health:       gc.RiskEngine.Compute(res.Genome),
		KeyGenotypes: keyGenotypes(res.Genome),
		KeySnps:      panel.KeySnps(res.Genome),
	}
}

func keyGenotypes(g genome.Genome) map[string]*string {
	out := make(map[string]*string, len(keyGenotypeRsids))
	for _, rsid := range keyGenotypeRsids {
		if gt, ok := g.Genotype(rsid); ok {
			out[rsid] = &gt
		} else {
			out[rsid] = nil
		}
	}
	return out
}
