package middleware

import (
	"net/http"
	"strconv"

	"github.com/odurisile/DNA-Insight/contexts"
	"github.com/odurisile/DNA-Insight/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to prepare the context for the optional `simulations` and `seed` parameters
(query string or form fields). The trial count is clamped by the simulator itself.
*/
func ValidateOptionalSimulationParameters(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.InsightContext)

		gc.Simulations = gc.Config.Api.DefaultSimulations
		if simulationsQP := c.FormValue("simulations"); len(simulationsQP) > 0 {
			n, err := strconv.Atoi(simulationsQP)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Error converting 'simulations' parameter! Check your input"))
			}
			if n <= 0 {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Please provide a 'simulations' greater than 0!"))
			}
			gc.Simulations = n
		}

		if seedQP := c.FormValue("seed"); len(seedQP) > 0 {
			seed, err := strconv.ParseInt(seedQP, 10, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Error converting 'seed' parameter! Check your input"))
			}
			gc.Seed = &seed
		}

		return next(gc)
	}
}
