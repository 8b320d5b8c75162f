package inventory

import "gorm.io/gorm"

// ProductFilter is the AND-combination of the optional list constraints.
// A zero member means no constraint on that field. Every value is passed
// as a bound parameter; nothing is concatenated into the query text.
type ProductFilter struct {
	Search       string   // substring match against name
	MinPrice     *float64 // inclusive lower bound
	MaxPrice     *float64 // inclusive upper bound
	Manufacturer string   // exact match
	Availability string   // exact match
}

// apply chains a Where clause per supplied constraint. Case sensitivity
// of the substring match follows the store's default collation.
func (f ProductFilter) apply(db *gorm.DB) *gorm.DB {
	if f.Search != "" {
		db = db.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}
	if f.Manufacturer != "" {
		db = db.Where("manufacturer = ?", f.Manufacturer)
	}
	if f.Availability != "" {
		db = db.Where("availability = ?", f.Availability)
	}
	return db
}
