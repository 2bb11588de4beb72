package reports

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/odurisile/DNA-Insight/contexts"
	dtoErrors "github.com/odurisile/DNA-Insight/models/dtos/errors"
	esRepo "github.com/odurisile/DNA-Insight/repositories/elasticsearch"

	"github.com/labstack/echo"
)

func GetReport(c echo.Context) error {
	fmt.Printf("[%s] - GetReport hit!\n", time.Now())
	gc := c.(*contexts.InsightContext)

	if gc.Reports == nil {
		return c.JSON(http.StatusNotFound, dtoErrors.CreateSimpleNotFound("Reports are not stored on this instance"))
	}

	id := c.Param("id")
	report, err := gc.Reports.Get(gc.Request().Context(), id)
	if errors.Is(err, esRepo.ErrReportNotFound) {
		return c.JSON(http.StatusNotFound, dtoErrors.CreateSimpleNotFound(fmt.Sprintf("No report with id '%s'", id)))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dtoErrors.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, report)
}
