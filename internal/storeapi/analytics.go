package storeapi

import (
	"net/http"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/storeware/stockroom/internal/webserver"
)

func (a *API) registerAnalyticsRoutes() {
	webserver.ApiGET("/manufacturers", a.listManufacturers)
	webserver.ApiGET("/supply-data", a.supplyData)
}

func (a *API) listManufacturers(c echo.Context) error {
	names, err := a.repo.DistinctManufacturers(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query manufacturers", err.Error())
	}
	return ok(c, names)
}

func (a *API) supplyData(c echo.Context) error {
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")
	if startDate == "" || endDate == "" {
		return fail(c, http.StatusBadRequest, "MISSING_RANGE", "startDate and endDate are required", nil)
	}
	for _, v := range []string{startDate, endDate} {
		if _, err := dateparse.ParseStrict(v); err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_RANGE", "Unparsable date bound", v)
		}
	}

	points, err := a.repo.SupplyByDeliveryDate(c.Request().Context(), startDate, endDate)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to aggregate supply data", err.Error())
	}
	return ok(c, points)
}
