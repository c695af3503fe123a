package memstore

import (
	"context"
)

type InventoryRepo struct {
	s *Store
}

func NewInventoryRepo(s *Store) *InventoryRepo {
	return &InventoryRepo{s: s}
}

// 在庫が足りるときだけ減らす
func (r *InventoryRepo) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.decreaseStockIfEnough(productID, qty)
}

// 在庫の現在値を設定
func (r *InventoryRepo) SetStock(ctx context.Context, productID int64, newStock int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.setStock(productID, newStock)
}

type txInventoryRepo struct {
	s *Store
}

func (r *txInventoryRepo) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	return r.s.decreaseStockIfEnough(productID, qty)
}

func (r *txInventoryRepo) SetStock(ctx context.Context, productID int64, newStock int64) error {
	return r.s.setStock(productID, newStock)
}
