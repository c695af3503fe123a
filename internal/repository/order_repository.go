package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderListFilter struct {
	Status string
	Limit  int
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// 新しい順で返す
	List(ctx context.Context, f OrderListFilter) ([]model.Order, error)
	// IDは台帳のカウンターから採番する（単調増加、再利用しない）
	Create(ctx context.Context, order model.Order) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error)

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, key string) (model.Order, bool, error)
}
