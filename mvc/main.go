package mvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/odurisile/DNA-Insight/contexts"
	"github.com/odurisile/DNA-Insight/models/dtos"
	dtoErrors "github.com/odurisile/DNA-Insight/models/dtos/errors"
	"github.com/odurisile/DNA-Insight/models/health"
	"github.com/odurisile/DNA-Insight/models/indexes"
	"github.com/odurisile/DNA-Insight/models/ingest"
	"github.com/odurisile/DNA-Insight/services/ingestion"
	"github.com/odurisile/DNA-Insight/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo"
)

// IngestFormFile parses the multipart file in field through the ingestion service.
func IngestFormFile(gc *contexts.InsightContext, field string) (*ingestion.Result, *ingest.UploadRequest, error) {
	fh, err := gc.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ingestion.ErrEmptyUpload, err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening '%s': %w", field, err)
	}
	defer f.Close()

	return gc.IngestionService.Ingest(utils.SafeFilename(fh.Filename), f)
}

// IngestionErrorResponse maps ingestion failures onto HTTP statuses.
func IngestionErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ingestion.ErrUploadTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, dtoErrors.CreateSimpleRequestEntityTooLarge(err.Error()))
	case errors.Is(err, ingestion.ErrEmptyUpload):
		return c.JSON(http.StatusBadRequest, dtoErrors.CreateSimpleBadRequest(err.Error()))
	case errors.Is(err, ingestion.ErrUnreadableContainer), errors.Is(err, ingestion.ErrNoTextPayload):
		return c.JSON(http.StatusUnprocessableEntity, dtoErrors.CreateSimpleUnprocessableEntity(err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, dtoErrors.CreateSimpleInternalServerError(err.Error()))
}

func IngestionSummary(res *ingestion.Result, req *ingest.UploadRequest) dtos.IngestionSummaryDto {
	return dtos.IngestionSummaryDto{
		Request: req.ToResponseDTO(),
		Stats:   res.Stats,
	}
}

// NewReportId returns a fresh id, or "" when no report store is configured.
func NewReportId(gc *contexts.InsightContext) string {
	if gc.Reports == nil {
		return ""
	}
	return uuid.New().String()
}

// StoreReport saves payload under report.Id. Failing to store never fails
// the request; the caller drops the id instead.
func StoreReport(gc *contexts.InsightContext, report indexes.Report, payload interface{}) error {
	if gc.Reports == nil || report.Id == "" {
		return nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	report.Payload = b
	report.CreatedTime = time.Now().UTC()

	if err := gc.Reports.Save(gc.Request().Context(), report); err != nil {
		fmt.Printf("[%s] - Could not store report %s: %s\n", time.Now(), report.Id, err)
		return err
	}
	return nil
}

// RiskSummary flattens a profile's per-condition categories.
func RiskSummary(p health.Profile) map[string]string {
	out := make(map[string]string, len(p.Summary))
	for condition, category := range p.Summary {
		out[string(condition)] = string(category)
	}
	return out
}
