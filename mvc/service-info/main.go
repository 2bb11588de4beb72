package serviceInfo

import (
	"fmt"
	"net/http"
	"time"

	serviceInfo "github.com/odurisile/DNA-Insight/models/constants/service-info"
	"github.com/odurisile/DNA-Insight/models/dtos"

	"github.com/labstack/echo"
)

var endpoints = []string{"/status", "/service-info", "/upload_dna", "/upload_parents", "/uploads/requests", "/reports/:id"}

// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  serviceInfo.SERVICE_VERSION,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"version":     serviceInfo.SERVICE_VERSION,
	})
}

func GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, dtos.StatusResponseDto{Status: string(serviceInfo.SERVICE_STATUS)})
}

func GetRoot(c echo.Context) error {
	fmt.Printf("[%s] - Root hit!\n", time.Now())
	return c.JSON(http.StatusOK, dtos.StatusResponseDto{
		Status:    string(serviceInfo.SERVICE_STATUS),
		Endpoints: endpoints,
	})
}
