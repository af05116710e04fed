package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory database")
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, stock int) *models.Product {
	t.Helper()

	category := &models.Category{Name: "Gudang"}
	require.NoError(t, repositories.NewGORMCategoryRepository(db).Create(category))

	product := &models.Product{
		Name:       "Beras 5kg",
		Brand:      "Acme",
		Stock:      stock,
		Price:      150.0,
		CategoryID: category.ID,
	}
	require.NoError(t, repositories.NewGORMProductRepository(db).Create(product))
	return product
}

func TestApplyStockDelta(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	product := seedProduct(t, db, 10)

	stock, err := repo.ApplyStockDelta(product.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, 15, stock)

	stock, err = repo.ApplyStockDelta(product.ID, -15)
	assert.NoError(t, err)
	assert.Equal(t, 0, stock)
}

func TestApplyStockDelta_RejectsNegativeResult(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	product := seedProduct(t, db, 3)

	_, err := repo.ApplyStockDelta(product.ID, -4)
	assert.ErrorIs(t, err, ledger.ErrInsufficientStock)

	// The guard left the row untouched.
	stock, err := repo.GetStock(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, stock)
}

func TestApplyStockDelta_UnknownProduct(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	_, err := repo.ApplyStockDelta("no-such-product", 1)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.NotErrorIs(t, err, ledger.ErrInsufficientStock)
}
