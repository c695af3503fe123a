package memstore

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductRepo struct {
	s *Store
}

func NewProductRepo(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listProducts(q), nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.findProduct(id)
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return r.s.products[i], nil
}

func (r *ProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createProduct(p), nil
}

func (r *ProductRepo) Update(ctx context.Context, p model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.updateProduct(p)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.deleteProduct(id)
}

// txProductRepoはWithinTx内で使う。ロックはTxManagerが保持している。
type txProductRepo struct {
	s *Store
}

func (r *txProductRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	return r.s.listProducts(q), nil
}

func (r *txProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	i, ok := r.s.findProduct(id)
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return r.s.products[i], nil
}

func (r *txProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	return r.s.createProduct(p), nil
}

func (r *txProductRepo) Update(ctx context.Context, p model.Product) error {
	return r.s.updateProduct(p)
}

func (r *txProductRepo) Delete(ctx context.Context, id int64) error {
	return r.s.deleteProduct(id)
}
