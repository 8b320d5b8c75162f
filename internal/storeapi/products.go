package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/storeware/stockroom/internal/inventory"
	"github.com/storeware/stockroom/internal/webserver"
)

func (a *API) registerProductRoutes() {
	webserver.ApiGET("/products", a.listProducts)
	webserver.ApiPOST("/products", a.createProduct)
	webserver.ApiPUT("/products/:id", a.updateProduct)
	webserver.ApiDELETE("/products/:id", a.deleteProduct)
}

func (a *API) listProducts(c echo.Context) error {
	filter := inventory.ProductFilter{
		Search:       c.QueryParam("search"),
		Manufacturer: c.QueryParam("manufacturer"),
		Availability: c.QueryParam("availability"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		min := cast.ToFloat64(v)
		filter.MinPrice = &min
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		max := cast.ToFloat64(v)
		filter.MaxPrice = &max
	}

	products, err := a.repo.List(c.Request().Context(), filter)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	return ok(c, products)
}

func (a *API) createProduct(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product form", err.Error())
	}
	form, err := inventory.ParseProductForm(values)
	if errors.Is(err, inventory.ErrNameRequired) {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Product name is required", nil)
	}

	image, _, err := a.saveImageUpload(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store product image", err.Error())
	}

	p := form.Product()
	p.Image = image
	id, err := a.repo.Create(c.Request().Context(), &p)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	return ok(c, echo.Map{"id": id})
}

func (a *API) updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	values, err := c.FormParams()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product form", err.Error())
	}
	form, err := inventory.ParseProductForm(values)
	if errors.Is(err, inventory.ErrNameRequired) {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Product name is required", nil)
	}

	// the stored image reference survives unless a new asset arrives
	image, uploaded, err := a.saveImageUpload(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store product image", err.Error())
	}

	updated, err := a.repo.Update(c.Request().Context(), id,
		form.Update(inventory.OptionalString{Value: image, Set: uploaded}))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, echo.Map{"updated": updated})
}

func (a *API) deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	deleted, err := a.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, echo.Map{"deleted": deleted})
}
