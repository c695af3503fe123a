package memstore

import (
	"context"

	repo "app/internal/repository"
)

// TxManagerはストアの書き込みロックでクロージャ全体を直列化する。
// 検証→在庫減算→台帳追記の並びに他のリクエストが割り込めないので、
// 同じ商品への同時注文が二重に検証を通ることはない。
type TxManager struct {
	s *Store
}

func NewTxManager(s *Store) *TxManager {
	return &TxManager{s: s}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return fn(txRepos{s: m.s})
}

type txRepos struct {
	s *Store
}

func (r txRepos) Orders() repo.OrderRepository {
	return &txOrderRepo{s: r.s}
}

func (r txRepos) Inventory() repo.InventoryRepository {
	return &txInventoryRepo{s: r.s}
}

func (r txRepos) Products() repo.ProductRepository {
	return &txProductRepo{s: r.s}
}
