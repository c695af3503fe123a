package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GET /api/productsの入力DTO
type ListProductsInput struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type ProductListOutput struct {
	Items []model.Product
	Total int
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.MinPrice != nil && in.MinPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "minPrice must be >= 0")
	}
	if in.MaxPrice != nil && in.MaxPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "maxPrice must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.Cmp(*in.MaxPrice) > 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "minPrice must be <= maxPrice")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Search:   strings.TrimSpace(in.Search),
		Category: strings.TrimSpace(in.Category),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return p, nil
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       *decimal.Decimal
	Stock       *int64
	Category    string
	Emoji       string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "description required")
	}
	if in.Price == nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price required")
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	//省略時のデフォルト
	var stock int64
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
		}
		stock = *in.Stock
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "general"
	}
	emoji := in.Emoji
	if emoji == "" {
		emoji = "🛍️"
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		Stock:       stock,
		Category:    category,
		Emoji:       emoji,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return p, nil
}

// PUT /api/products/:id は部分更新。nilのフィールドは変更しない。
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int64
	Category    *string
	Emoji       *string
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Emoji != nil {
		p.Emoji = *in.Emoji
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	//在庫はInventoryRepository経由で更新する
	if in.Stock != nil {
		if err := u.inventoryRepo.SetStock(ctx, productID, *in.Stock); err != nil {
			if err == repo.ErrNotFound {
				return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
			}
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
		}
		p.Stock = *in.Stock
	}

	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return nil
}

// GET /api/searchの入力DTO
type SearchProductsInput struct {
	Query string
	Sort  string
	Order string
}

func (u *ProductUsecase) SearchProducts(ctx context.Context, in SearchProductsInput) (ProductListOutput, error) {
	q := strings.ToLower(strings.TrimSpace(in.Query))
	if q == "" {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "search query required")
	}
	switch in.Sort {
	case "", "id", "name", "price", "stock", "category":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}
	switch in.Order {
	case "", "asc", "desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order")
	}

	all, err := u.productRepo.List(ctx, repo.ProductListQuery{})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	//名前・説明・カテゴリを横断して部分一致
	items := make([]model.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			items = append(items, p)
		}
	}

	if in.Sort != "" {
		desc := in.Order == "desc"
		sort.SliceStable(items, func(i, j int) bool {
			less := lessProduct(items[i], items[j], in.Sort)
			if desc {
				return lessProduct(items[j], items[i], in.Sort)
			}
			return less
		})
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func lessProduct(a, b model.Product, key string) bool {
	switch key {
	case "name":
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case "price":
		return a.Price.Cmp(b.Price) < 0
	case "stock":
		return a.Stock < b.Stock
	case "category":
		return strings.ToLower(a.Category) < strings.ToLower(b.Category)
	default:
		return a.ID < b.ID
	}
}
