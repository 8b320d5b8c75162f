package inventory

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/storeware/stockroom/internal/domain"
	"gorm.io/gorm"
)

// ErrNameRequired is returned when a product is written without a name.
var ErrNameRequired = errors.New("product name is required")

// OptionalString distinguishes a value explicitly supplied by the caller
// from one that was absent from the input.
type OptionalString struct {
	Value string
	Set   bool
}

// ProductUpdate carries the full replacement state for an update. Every
// field overwrites the stored row except Image, which is only written
// when Set is true; otherwise the stored image reference is preserved.
type ProductUpdate struct {
	Name         string
	Image        OptionalString
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

// SupplyPoint is one row of the delivery-date quantity aggregation.
type SupplyPoint struct {
	DeliveryDate  string `json:"delivery_date"`
	TotalQuantity int64  `json:"total_quantity"`
}

// ProductRepository is the record store contract for inventory products.
type ProductRepository interface {
	// Create inserts a new product, computes TotalPrice and returns the
	// assigned id. Fails with ErrNameRequired on a blank name.
	Create(ctx context.Context, p *domain.Product) (int64, error)

	// Update fully replaces the row matching id and recomputes
	// TotalPrice. Returns the number of rows affected; a missing id
	// yields 0, not an error.
	Update(ctx context.Context, id int64, up ProductUpdate) (int64, error)

	// Delete removes the row matching id. Returns rows affected.
	Delete(ctx context.Context, id int64) (int64, error)

	// List returns every product matching the filter in store order.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// DistinctManufacturers returns each unique non-null manufacturer once.
	DistinctManufacturers(ctx context.Context) ([]string, error)

	// SupplyByDeliveryDate sums quantity per delivery date over the
	// inclusive range, counting only in-stock rows, ascending by date.
	SupplyByDeliveryDate(ctx context.Context, startDate, endDate string) ([]SupplyPoint, error)
}

// GormProductRepository is the GORM implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) (int64, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, ErrNameRequired
	}
	p.TotalPrice = float64(p.Quantity) * p.Price
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return 0, errors.Wrap(err, "create product")
	}
	return p.ID, nil
}

func (r *GormProductRepository) Update(ctx context.Context, id int64, up ProductUpdate) (int64, error) {
	if strings.TrimSpace(up.Name) == "" {
		return 0, ErrNameRequired
	}
	values := map[string]interface{}{
		"name":          strings.TrimSpace(up.Name),
		"material":      up.Material,
		"size":          up.Size,
		"description":   up.Description,
		"manufacturer":  up.Manufacturer,
		"quantity":      up.Quantity,
		"price":         up.Price,
		"total_price":   float64(up.Quantity) * up.Price,
		"delivery_date": up.DeliveryDate,
		"supplier":      up.Supplier,
		"availability":  up.Availability,
	}
	if up.Image.Set {
		values["image"] = up.Image.Value
	}
	ret := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(values)
	if ret.Error != nil {
		return 0, errors.Wrap(ret.Error, "update product")
	}
	return ret.RowsAffected, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ret := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if ret.Error != nil {
		return 0, errors.Wrap(ret.Error, "delete product")
	}
	return ret.RowsAffected, nil
}

func (r *GormProductRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	var products []domain.Product
	err := filter.apply(r.db.WithContext(ctx).Model(&domain.Product{})).
		Find(&products).Error
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func (r *GormProductRepository) DistinctManufacturers(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Distinct("manufacturer").
		Where("manufacturer IS NOT NULL").
		Pluck("manufacturer", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "list manufacturers")
	}
	return names, nil
}

func (r *GormProductRepository) SupplyByDeliveryDate(ctx context.Context, startDate, endDate string) ([]SupplyPoint, error) {
	var points []SupplyPoint
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Select("delivery_date, SUM(quantity) AS total_quantity").
		Where("delivery_date BETWEEN ? AND ?", startDate, endDate).
		Where("availability = ?", domain.AvailabilityInStock).
		Group("delivery_date").
		Order("delivery_date ASC").
		Scan(&points).Error
	if err != nil {
		return nil, errors.Wrap(err, "supply aggregation")
	}
	return points, nil
}
