package domain

import "time"

// AvailabilityInStock is the canonical availability value counted by the
// supply aggregation. Availability is otherwise free text.
const AvailabilityInStock = "In Stock"

// Product is a single inventory record. TotalPrice is derived from
// Quantity and Price on every write and is never set by callers.
type Product struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null;index" json:"name"`
	Image        string    `gorm:"size:1024" json:"image"` // relative path under /images, empty when no asset
	Material     string    `gorm:"size:200" json:"material"`
	Size         string    `gorm:"size:200" json:"size"`
	Description  string    `json:"description"`
	Manufacturer string    `gorm:"size:200;index" json:"manufacturer"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	TotalPrice   float64   `json:"total_price"`
	DeliveryDate string    `gorm:"size:32;index" json:"delivery_date"` // YYYY-MM-DD
	Supplier     string    `gorm:"size:200" json:"supplier"`
	Availability string    `gorm:"size:64;index" json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
