package inventory

import (
	"net/url"
	"strings"

	"github.com/spf13/cast"
	"github.com/storeware/stockroom/internal/domain"
)

// ProductForm is the typed result of parsing a loose text submission.
// Malformed or absent numeric input defaults to zero; negative values
// are clamped to zero.
type ProductForm struct {
	Name         string
	Material     string
	Size         string
	Description  string
	Manufacturer string
	Quantity     int
	Price        float64
	DeliveryDate string
	Supplier     string
	Availability string
}

// ParseProductForm converts untyped form values into a ProductForm.
// Fails with ErrNameRequired when name is blank after trimming.
func ParseProductForm(values url.Values) (ProductForm, error) {
	form := ProductForm{
		Name:         strings.TrimSpace(values.Get("name")),
		Material:     values.Get("material"),
		Size:         values.Get("size"),
		Description:  values.Get("description"),
		Manufacturer: values.Get("manufacturer"),
		Quantity:     nonNegativeInt(values.Get("quantity")),
		Price:        nonNegativeFloat(values.Get("price")),
		DeliveryDate: values.Get("delivery_date"),
		Supplier:     values.Get("supplier"),
		Availability: values.Get("availability"),
	}
	if form.Name == "" {
		return form, ErrNameRequired
	}
	return form, nil
}

// Product builds a new record from the form. TotalPrice is left for the
// repository to derive.
func (f ProductForm) Product() domain.Product {
	return domain.Product{
		Name:         f.Name,
		Material:     f.Material,
		Size:         f.Size,
		Description:  f.Description,
		Manufacturer: f.Manufacturer,
		Quantity:     f.Quantity,
		Price:        f.Price,
		DeliveryDate: f.DeliveryDate,
		Supplier:     f.Supplier,
		Availability: f.Availability,
	}
}

// Update builds the full-replace update state from the form. The image
// reference is attached by the caller since only it knows whether a new
// asset was uploaded.
func (f ProductForm) Update(image OptionalString) ProductUpdate {
	return ProductUpdate{
		Name:         f.Name,
		Image:        image,
		Material:     f.Material,
		Size:         f.Size,
		Description:  f.Description,
		Manufacturer: f.Manufacturer,
		Quantity:     f.Quantity,
		Price:        f.Price,
		DeliveryDate: f.DeliveryDate,
		Supplier:     f.Supplier,
		Availability: f.Availability,
	}
}

func nonNegativeInt(s string) int {
	v := cast.ToInt(strings.TrimSpace(s))
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeFloat(s string) float64 {
	v := cast.ToFloat64(strings.TrimSpace(s))
	if v < 0 {
		return 0
	}
	return v
}
