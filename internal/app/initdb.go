package app

import (
	"github.com/storeware/stockroom/internal/domain"
	"go.uber.org/zap"
)

// checkSampleProducts seeds a few demo records into an empty debug
// database so the UI has something to show on first run.
func (a *Application) checkSampleProducts() {
	if !a.appConfig.System.Debug {
		return
	}

	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	sampleProducts := []domain.Product{
		{
			Name: "Oak dining table", Material: "oak", Size: "180x90",
			Manufacturer: "Woodline", Supplier: "Woodline Distribution",
			Quantity: 4, Price: 420.0, DeliveryDate: "2025-01-15",
			Availability: domain.AvailabilityInStock,
		},
		{
			Name: "Steel shelf unit", Material: "steel", Size: "200x60",
			Manufacturer: "MetalWorks", Supplier: "Nordic Supply",
			Quantity: 12, Price: 89.5, DeliveryDate: "2025-02-01",
			Availability: domain.AvailabilityInStock,
		},
		{
			Name: "Walnut bar stool", Material: "walnut", Size: "45x45",
			Manufacturer: "Woodline", Supplier: "Woodline Distribution",
			Quantity: 0, Price: 75.0, DeliveryDate: "2025-03-10",
			Availability: "Out of stock",
		},
	}

	for _, p := range sampleProducts {
		p.TotalPrice = float64(p.Quantity) * p.Price
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create sample product", zap.String("name", p.Name), zap.Error(err))
		} else {
			zap.L().Info("initialized sample product", zap.String("name", p.Name))
		}
	}
}
