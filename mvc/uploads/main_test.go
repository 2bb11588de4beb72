package uploads

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/odurisile/DNA-Insight/common"
	"github.com/odurisile/DNA-Insight/contexts"
	"github.com/odurisile/DNA-Insight/models/ingest"
	"github.com/odurisile/DNA-Insight/services"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllUploadRequests(t *testing.T) {
	cfg := common.InitConfig()
	iz := services.NewIngestionService(cfg)

	_, _, err := iz.Ingest("first.txt", strings.NewReader("# 23andMe\nrs1\t1\t10\tAG\n"))
	require.NoError(t, err)
	_, _, err = iz.Ingest("second.txt", strings.NewReader(""))
	require.Error(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/uploads/requests", nil)
	rec := httptest.NewRecorder()
	gc := &contexts.InsightContext{
		Context:          e.NewContext(req, rec),
		Config:           cfg,
		IngestionService: iz,
	}

	require.NoError(t, GetAllUploadRequests(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []ingest.UploadResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)

	assert.Equal(t, "second.txt", body[0].Filename)
	assert.Equal(t, ingest.Error, body[0].State)
	assert.Equal(t, "first.txt", body[1].Filename)
	assert.Equal(t, ingest.Done, body[1].State)
	assert.Equal(t, 1, body[1].Calls)
}
