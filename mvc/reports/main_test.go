package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/odurisile/DNA-Insight/common"
	"github.com/odurisile/DNA-Insight/contexts"
	"github.com/odurisile/DNA-Insight/models/indexes"
	esRepo "github.com/odurisile/DNA-Insight/repositories/elasticsearch"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	reports map[string]indexes.Report
	err     error
}

func (f *fakeStore) Save(_ context.Context, report indexes.Report) error {
	f.reports[report.Id] = report
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*indexes.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.reports[id]
	if !ok {
		return nil, esRepo.ErrReportNotFound
	}
	return &r, nil
}

func setUpEcho(id string, store contexts.ReportStore) (*contexts.InsightContext, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return &contexts.InsightContext{
		Context: c,
		Config:  common.InitConfig(),
		Reports: store,
	}, rec
}

func TestGetReport(t *testing.T) {
	store := &fakeStore{reports: map[string]indexes.Report{
		"abc": {
			Id:          "abc",
			Kind:        indexes.SingleReport,
			Filenames:   []string{"genome.txt"},
			CreatedTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Summary:     map[string]string{"eye_color": "Blue"},
			Payload:     json.RawMessage(`{"status":"ok"}`),
		},
	}}

	t.Run("should return a stored report", func(t *testing.T) {
		gc, rec := setUpEcho("abc", store)

		require.NoError(t, GetReport(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "single", body["kind"])
		assert.Equal(t, "ok", body["payload"].(map[string]interface{})["status"])
	})

	t.Run("should return 404 for an unknown id", func(t *testing.T) {
		gc, rec := setUpEcho("nope", store)

		require.NoError(t, GetReport(gc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 404 when reports are disabled", func(t *testing.T) {
		gc, rec := setUpEcho("abc", nil)

		require.NoError(t, GetReport(gc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 500 when the store fails", func(t *testing.T) {
		gc, rec := setUpEcho("abc", &fakeStore{err: errors.New("cluster unavailable")})

		require.NoError(t, GetReport(gc))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
