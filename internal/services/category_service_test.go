package services_test

import (
	"testing"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_DeleteCategory_BlockedWhileProductsExist(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCategoryService(categoryRepo, productRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1", Name: "Elektronik"}, nil).Once()
	productRepo.On("CountByCategory", "cat-1").Return(int64(3), nil).Once()

	err := service.DeleteCategory("cat-1")

	assert.True(t, ledger.IsValidation(err))
	assert.Contains(t, err.Error(), "3 products")
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
	categoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory_Empty(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCategoryService(categoryRepo, productRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1"}, nil).Once()
	productRepo.On("CountByCategory", "cat-1").Return(int64(0), nil).Once()
	categoryRepo.On("Delete", "cat-1").Return(nil).Once()

	err := service.DeleteCategory("cat-1")

	assert.NoError(t, err)
	categoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCategoryService_CategoryStats(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCategoryService(categoryRepo, productRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1", Name: "Elektronik"}, nil).Once()
	productRepo.On("GetByCategory", "cat-1").Return([]models.Product{
		{ID: "p1", Stock: 10, Price: 100.0},
		{ID: "p2", Stock: 5, Price: 33.335},
	}, nil).Once()

	category, stats, err := service.CategoryStats("cat-1")

	assert.NoError(t, err)
	assert.Equal(t, "Elektronik", category.Name)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 15, stats.TotalStock)
	assert.Equal(t, 66.67, stats.AveragePrice)
	categoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCategoryService_CategoryStats_NoProducts(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCategoryService(categoryRepo, productRepo)

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1"}, nil).Once()
	productRepo.On("GetByCategory", "cat-1").Return([]models.Product{}, nil).Once()

	_, stats, err := service.CategoryStats("cat-1")

	assert.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalStock)
	assert.Zero(t, stats.AveragePrice)
}
