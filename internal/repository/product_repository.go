package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// 商品カタログの保存・取得だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// Updateは在庫以外のフィールドを更新する。在庫はInventoryRepository経由。
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}

// 在庫操作の約束。
type InventoryRepository interface {
	// 在庫が足りるときだけ減らす
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
	SetStock(ctx context.Context, productID int64, newStock int64) error
}
