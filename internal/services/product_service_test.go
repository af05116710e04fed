package services_test

import (
	"fmt"
	"testing"

	"inventaris/internal/ledger"
	"inventaris/internal/models"
	"inventaris/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of repositories.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(page, limit int) ([]models.Product, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(term string, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(term, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) CountByCategory(categoryID string) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) GetStock(id string) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) ApplyStockDelta(id string, delta int) (int, error) {
	args := m.Called(id, delta)
	return args.Int(0), args.Error(1)
}

// MockCategoryRepository is a testify mock of repositories.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(page, limit int) ([]models.Category, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Search(term string, page, limit int) ([]models.Category, int64, error) {
	args := m.Called(term, page, limit)
	return args.Get(0).([]models.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_ListProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := services.NewProductService(productRepo, categoryRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Stock: 100, CategoryID: "cat-1"},
		{ID: "2", Name: "Product B", Price: 20.0, Stock: 50, CategoryID: "cat-1"},
	}

	productRepo.On("List", 1, 10).Return(expectedProducts, int64(2), nil).Once()

	products, total, err := service.ListProducts(1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, expectedProducts, products)
	productRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := services.NewProductService(productRepo, categoryRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Stock: 100}

	productRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	productRepo.On("GetByID", "99").
		Return(nil, fmt.Errorf("product with ID 99: %w", ledger.ErrNotFound)).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, product)
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := services.NewProductService(productRepo, categoryRepo)

	newProduct := &models.Product{Name: "New Product", Price: 50.0, Stock: 20, CategoryID: "cat-1"}

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1"}, nil).Once()
	productRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)

	// Unknown category is refused before the product is written.
	categoryRepo.On("GetByID", "missing").
		Return(nil, fmt.Errorf("category with ID missing: %w", ledger.ErrNotFound)).Once()
	err = service.CreateProduct(&models.Product{Name: "Orphan", Price: 1.0, CategoryID: "missing"})
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_NegativeStock(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := services.NewProductService(productRepo, categoryRepo)

	err := service.CreateProduct(&models.Product{Name: "Bad", Price: 1.0, Stock: -1, CategoryID: "cat-1"})
	assert.True(t, ledger.IsValidation(err))
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := services.NewProductService(productRepo, categoryRepo)

	updatedProduct := &models.Product{ID: "1", Name: "Product A Updated", Price: 12.0, Stock: 95, CategoryID: "cat-1"}

	categoryRepo.On("GetByID", "cat-1").Return(&models.Category{ID: "cat-1"}, nil).Once()
	productRepo.On("Update", updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := services.NewProductService(productRepo, categoryRepo)

	productRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)

	productRepo.On("Delete", "99").
		Return(fmt.Errorf("product with ID 99: %w", ledger.ErrNotFound)).Once()
	err = service.DeleteProduct("99")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	productRepo.AssertExpectations(t)
}
