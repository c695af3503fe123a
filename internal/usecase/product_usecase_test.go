package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocking repositories
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func newProductUsecaseWithMocks() (*usecase.ProductUsecase, *MockProductRepository, *MockInventoryRepository) {
	productRepo := new(MockProductRepository)
	inventoryRepo := new(MockInventoryRepository)
	return usecase.NewProductUsecase(productRepo, inventoryRepo), productRepo, inventoryRepo
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Test: 必須フィールドの検証
func TestCreateProduct_Validation(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()
	ctx := context.Background()

	cases := []struct {
		name string
		in   usecase.CreateProductInput
	}{
		{"missing name", usecase.CreateProductInput{Description: "d", Price: price(100)}},
		{"missing description", usecase.CreateProductInput{Name: "n", Price: price(100)}},
		{"missing price", usecase.CreateProductInput{Name: "n", Description: "d"}},
		{"negative price", usecase.CreateProductInput{Name: "n", Description: "d", Price: price(-1)}},
	}
	for _, tc := range cases {
		_, err := uc.CreateProduct(ctx, tc.in)
		requireHTTPError(t, err, 400)
	}

	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 省略時のデフォルト（絵文字・カテゴリ・在庫0）
func TestCreateProduct_Defaults(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	productRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
			return p.Category == "general" && p.Emoji == "🛍️" && p.Stock == 0
		})).
		Return(model.Product{ID: 7, Name: "n"}, nil)

	p, err := uc.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:        "n",
		Description: "d",
		Price:       price(100),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	productRepo.AssertExpectations(t)
}

func TestGetProductDetail_NotFound(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	productRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	requireHTTPError(t, err, 404)

	productRepo.AssertExpectations(t)
}

// Test: 在庫の更新はInventoryRepositoryを経由する
func TestUpdateProduct_StockGoesThroughInventory(t *testing.T) {
	uc, productRepo, inventoryRepo := newProductUsecaseWithMocks()

	existing := model.Product{ID: 1, Name: "n", Description: "d", Price: decimal.NewFromInt(100), Stock: 10}
	productRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	productRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	inventoryRepo.On("SetStock", mock.Anything, int64(1), int64(7)).Return(nil)

	newStock := int64(7)
	p, err := uc.UpdateProduct(context.Background(), 1, usecase.UpdateProductInput{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Stock)

	productRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
}

func TestUpdateProduct_WithoutStockSkipsInventory(t *testing.T) {
	uc, productRepo, inventoryRepo := newProductUsecaseWithMocks()

	existing := model.Product{ID: 1, Name: "n", Description: "d", Price: decimal.NewFromInt(100), Stock: 10}
	productRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	productRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	name := "renamed"
	p, err := uc.UpdateProduct(context.Background(), 1, usecase.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", p.Name)
	assert.Equal(t, int64(10), p.Stock)

	inventoryRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	productRepo.On("Delete", mock.Anything, int64(5)).Return(repo.ErrNotFound)

	err := uc.DeleteProduct(context.Background(), 5)
	requireHTTPError(t, err, 404)
}

func TestListProducts_InvalidPriceRange(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		MinPrice: price(100),
		MaxPrice: price(50),
	})
	requireHTTPError(t, err, 400)

	productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestSearchProducts_EmptyQuery(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	_, err := uc.SearchProducts(context.Background(), usecase.SearchProductsInput{Query: "  "})
	requireHTTPError(t, err, 400)

	productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestSearchProducts_FilterAndSort(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	all := []model.Product{
		{ID: 1, Name: "Smartphone", Description: "High-spec smartphone", Price: decimal.NewFromInt(1500), Category: "electronics"},
		{ID: 2, Name: "Laptop", Description: "Powerful laptop", Price: decimal.NewFromInt(3500), Category: "electronics"},
		{ID: 3, Name: "Smart Watch", Description: "Fitness tracking", Price: decimal.NewFromInt(800), Category: "electronics"},
	}
	productRepo.On("List", mock.Anything, repo.ProductListQuery{}).Return(all, nil)

	out, err := uc.SearchProducts(context.Background(), usecase.SearchProductsInput{
		Query: "smart",
		Sort:  "price",
		Order: "desc",
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, int64(3), out.Items[1].ID)
}

// sort=idもdescを無視しない
func TestSearchProducts_SortByIDDesc(t *testing.T) {
	uc, productRepo, _ := newProductUsecaseWithMocks()

	all := []model.Product{
		{ID: 1, Name: "Smartphone", Description: "High-spec smartphone", Price: decimal.NewFromInt(1500), Category: "electronics"},
		{ID: 2, Name: "Laptop", Description: "Powerful laptop", Price: decimal.NewFromInt(3500), Category: "electronics"},
		{ID: 3, Name: "Smart Watch", Description: "Fitness tracking", Price: decimal.NewFromInt(800), Category: "electronics"},
	}
	productRepo.On("List", mock.Anything, repo.ProductListQuery{}).Return(all, nil)

	out, err := uc.SearchProducts(context.Background(), usecase.SearchProductsInput{
		Query: "smart",
		Sort:  "id",
		Order: "desc",
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, int64(3), out.Items[0].ID)
	assert.Equal(t, int64(1), out.Items[1].ID)
}

func TestSearchProducts_InvalidSortKey(t *testing.T) {
	uc, _, _ := newProductUsecaseWithMocks()

	_, err := uc.SearchProducts(context.Background(), usecase.SearchProductsInput{Query: "x", Sort: "emoji"})
	requireHTTPError(t, err, 400)
}
