package memstore

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文台帳はWithinTx経由でのみ触る。
type txOrderRepo struct {
	s *Store
}

func (r *txOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	i, ok := r.s.findOrder(orderID)
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return r.s.orders[i], nil
}

func (r *txOrderRepo) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, error) {
	return r.s.listOrders(f), nil
}

func (r *txOrderRepo) Create(ctx context.Context, order model.Order) (model.Order, error) {
	return r.s.appendOrder(order), nil
}

func (r *txOrderRepo) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error) {
	return r.s.updateOrderStatus(orderID, status)
}

func (r *txOrderRepo) FindByIdempotencyKey(ctx context.Context, key string) (model.Order, bool, error) {
	o, found := r.s.findOrderByKey(key)
	return o, found, nil
}
