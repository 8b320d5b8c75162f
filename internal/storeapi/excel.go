package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/storeware/stockroom/internal/webserver"
)

func (a *API) registerExcelRoutes() {
	webserver.ApiGET("/export/excel", a.exportExcel)
	webserver.ApiPOST("/import/excel", a.importExcel)
}

func (a *API) exportExcel(c echo.Context) error {
	path, err := a.bridge.Export(c.Request().Context(), a.appConfig.GetExportsDir())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", err.Error())
	}
	return c.Attachment(path, "products.xlsx")
}

func (a *API) importExcel(c echo.Context) error {
	// persist the upload before processing, the daily sweep removes it later
	path, saved, err := a.saveSpreadsheetUpload(c, "file")
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store uploaded file", err.Error())
	}
	if !saved {
		return fail(c, http.StatusBadRequest, "MISSING_FILE", "No file uploaded", nil)
	}

	imported, err := a.bridge.ImportFile(c.Request().Context(), path)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "IMPORT_ERROR", "Failed to import products", err.Error())
	}
	return ok(c, echo.Map{"imported": imported})
}
