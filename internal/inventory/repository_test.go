package inventory

import (
	"context"
	"testing"

	"github.com/storeware/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestCreateComputesTotalPrice(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))

	p := domain.Product{Name: "Oak table", Quantity: 3, Price: 10.5}
	id, err := repo.Create(context.Background(), &p)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
	assert.Equal(t, 31.5, p.TotalPrice)

	products, err := repo.List(context.Background(), ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 31.5, products[0].TotalPrice)
}

func TestCreateRequiresName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)

	_, err := repo.Create(context.Background(), &domain.Product{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be persisted on validation failure")
}

func TestUpdateImageSemantics(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	ctx := context.Background()

	p := domain.Product{Name: "Shelf", Image: "/images/shelf.png", Quantity: 2, Price: 5}
	id, err := repo.Create(ctx, &p)
	require.NoError(t, err)

	up := ProductUpdate{
		Name:     "Shelf v2",
		Quantity: 4,
		Price:    6,
	}

	t.Run("image preserved when not supplied", func(t *testing.T) {
		affected, err := repo.Update(ctx, id, up)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		products, err := repo.List(ctx, ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Shelf v2", products[0].Name)
		assert.Equal(t, "/images/shelf.png", products[0].Image)
		assert.Equal(t, 24.0, products[0].TotalPrice)
	})

	t.Run("image replaced when supplied", func(t *testing.T) {
		up.Image = OptionalString{Value: "/images/shelf-v2.png", Set: true}
		affected, err := repo.Update(ctx, id, up)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		products, err := repo.List(ctx, ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, "/images/shelf-v2.png", products[0].Image)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := repo.Update(ctx, id, ProductUpdate{Name: ""})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("missing id yields zero affected", func(t *testing.T) {
		affected, err := repo.Update(ctx, 99999, up)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestDeleteMissingReturnsZero(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))

	deleted, err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func seedCatalog(t *testing.T, repo *GormProductRepository) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []domain.Product{
		{Name: "Oak dining table", Manufacturer: "Woodline", Price: 420, Quantity: 4,
			DeliveryDate: "2025-01-15", Availability: domain.AvailabilityInStock},
		{Name: "Steel shelf unit", Manufacturer: "MetalWorks", Price: 89.5, Quantity: 12,
			DeliveryDate: "2025-01-15", Availability: domain.AvailabilityInStock},
		{Name: "Walnut bar stool", Manufacturer: "Woodline", Price: 75, Quantity: 6,
			DeliveryDate: "2025-02-01", Availability: "Out of stock"},
		{Name: "Pine table lamp", Manufacturer: "Lumen", Price: 35, Quantity: 9,
			DeliveryDate: "2025-02-05", Availability: domain.AvailabilityInStock},
	} {
		prod := p
		_, err := repo.Create(ctx, &prod)
		require.NoError(t, err)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	seedCatalog(t, repo)
	ctx := context.Background()

	t.Run("no filters returns every row", func(t *testing.T) {
		products, err := repo.List(ctx, ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, products, 4)
	})

	t.Run("manufacturer exact match", func(t *testing.T) {
		products, err := repo.List(ctx, ProductFilter{Manufacturer: "Woodline"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "Woodline", p.Manufacturer)
		}
	})

	t.Run("search is a substring match", func(t *testing.T) {
		products, err := repo.List(ctx, ProductFilter{Search: "table"})
		require.NoError(t, err)
		names := make([]string, 0, len(products))
		for _, p := range products {
			names = append(names, p.Name)
		}
		assert.ElementsMatch(t, []string{"Oak dining table", "Pine table lamp"}, names)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min, max := 75.0, 89.5
		products, err := repo.List(ctx, ProductFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("availability exact match", func(t *testing.T) {
		products, err := repo.List(ctx, ProductFilter{Availability: "Out of stock"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Walnut bar stool", products[0].Name)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		min := 100.0
		products, err := repo.List(ctx, ProductFilter{Manufacturer: "Woodline", MinPrice: &min})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Oak dining table", products[0].Name)
	})
}

func TestDistinctManufacturers(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	seedCatalog(t, repo)

	names, err := repo.DistinctManufacturers(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Woodline", "MetalWorks", "Lumen"}, names)
}

func TestSupplyByDeliveryDate(t *testing.T) {
	repo := NewGormProductRepository(setupTestDB(t))
	seedCatalog(t, repo)

	points, err := repo.SupplyByDeliveryDate(context.Background(), "2025-01-01", "2025-02-28")
	require.NoError(t, err)

	// out-of-stock rows are excluded, in-range dates ascend
	require.Len(t, points, 2)
	assert.Equal(t, "2025-01-15", points[0].DeliveryDate)
	assert.Equal(t, int64(16), points[0].TotalQuantity)
	assert.Equal(t, "2025-02-05", points[1].DeliveryDate)
	assert.Equal(t, int64(9), points[1].TotalQuantity)

	t.Run("range bounds are inclusive", func(t *testing.T) {
		points, err := repo.SupplyByDeliveryDate(context.Background(), "2025-01-15", "2025-01-15")
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, int64(16), points[0].TotalQuantity)
	})

	t.Run("empty range", func(t *testing.T) {
		points, err := repo.SupplyByDeliveryDate(context.Background(), "2030-01-01", "2030-12-31")
		require.NoError(t, err)
		assert.Empty(t, points)
	})
}
