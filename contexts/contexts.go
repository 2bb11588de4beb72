package contexts

import (
	"context"

	"github.com/odurisile/DNA-Insight/models"
	"github.com/odurisile/DNA-Insight/models/indexes"
	"github.com/odurisile/DNA-Insight/services"
	"github.com/odurisile/DNA-Insight/services/offspring"
	"github.com/odurisile/DNA-Insight/services/risk"

	"github.com/labstack/echo"
)

// ReportStore keeps analysis results so they can be fetched again by id.
type ReportStore interface {
	Save(ctx context.Context, report indexes.Report) error
	Get(ctx context.Context, id string) (*indexes.Report, error)
}

type (
	// "Helper" Context to pass into routes that need
	//  the engines, services and other variables
	InsightContext struct {
		echo.Context
		Config           *models.Config
		IngestionService *services.IngestionService
		RiskEngine       *risk.Engine
		Simulator        *offspring.Simulator

		// nil when no report store is configured
		Reports ReportStore

		// set by ValidateOptionalSimulationParameters
		Simulations int
		Seed        *int64
	}
)
