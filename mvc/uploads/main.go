package uploads

import (
	"fmt"
	"net/http"
	"time"

	"github.com/odurisile/DNA-Insight/contexts"
	"github.com/odurisile/DNA-Insight/models/ingest"

	"github.com/labstack/echo"
)

func GetAllUploadRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllUploadRequests hit!\n", time.Now())
	requests := c.(*contexts.InsightContext).IngestionService.GetAllRequests()

	m := make([]ingest.UploadResponseDTO, 0, len(requests))
	for i := range requests {
		m = append(m, requests[i].ToResponseDTO())
	}
	return c.JSON(http.StatusOK, m)
}
