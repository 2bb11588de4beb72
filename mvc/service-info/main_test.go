package serviceInfo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	serviceInfo "github.com/odurisile/DNA-Insight/models/constants/service-info"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceEndpoints(t *testing.T) {
	setUpEcho := func(path string) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	getJsonBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		var bodyJson map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bodyJson))
		return bodyJson
	}

	t.Run("service-info describes the service", func(t *testing.T) {
		c, rec := setUpEcho("/service-info")
		require.NoError(t, GetServiceInfo(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, string(serviceInfo.SERVICE_ID), body["id"])
		assert.Equal(t, string(serviceInfo.SERVICE_NAME), body["name"])
		assert.Equal(t, string(serviceInfo.SERVICE_VERSION), body["version"])
	})

	t.Run("status reports the backend as running", func(t *testing.T) {
		c, rec := setUpEcho("/status")
		require.NoError(t, GetStatus(c))
		assert.Equal(t, "Backend running", getJsonBody(rec)["status"])
	})

	t.Run("root lists the endpoints", func(t *testing.T) {
		c, rec := setUpEcho("/")
		require.NoError(t, GetRoot(c))
		assert.Contains(t, getJsonBody(rec)["endpoints"], "/upload_parents")
	})
}
