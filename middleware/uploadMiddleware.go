package middleware

import (
	"fmt"
	"net/http"

	"github.com/odurisile/DNA-Insight/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure every named multipart file field was provided with a file name
*/
func MandateUploadFile(fields ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, field := range fields {
				fh, err := c.FormFile(field)
				if err != nil {
					if len(fields) > 1 {
						return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(
							fmt.Sprintf("%d DNA files required: missing '%s'", len(fields), field)))
					}
					return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("No file uploaded"))
				}
				if fh.Filename == "" {
					return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest(
						fmt.Sprintf("Empty filename for '%s'", field)))
				}
			}
			return next(c)
		}
	}
}
