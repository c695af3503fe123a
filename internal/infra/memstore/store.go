package memstore

import (
	"strings"
	"sync"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// Storeはカタログと注文台帳を丸ごと持つプロセス内ストア。
// 起動時に一度だけ作り、リポジトリへ参照で渡す（グローバル変数にしない）。
// 永続化はしない。プロセス終了でデータは消える。
type Store struct {
	mu sync.RWMutex

	products      []model.Product
	orders        []model.Order
	nextProductID int64
	nextOrderID   int64
}

// Newは初期カタログを採番しながら取り込む。
func New(seed []model.Product) *Store {
	s := &Store{nextProductID: 1, nextOrderID: 1}
	for _, p := range seed {
		p.ID = s.nextProductID
		s.nextProductID++
		s.products = append(s.products, p)
	}
	return s
}

// ここから下はロック保持前提のヘルパー。

func (s *Store) findProduct(id int64) (int, bool) {
	for i, p := range s.products {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) listProducts(q repo.ProductListQuery) []model.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price.Cmp(*q.MinPrice) < 0 {
			continue
		}
		if q.MaxPrice != nil && p.Price.Cmp(*q.MaxPrice) > 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Store) createProduct(p model.Product) model.Product {
	//削除があってもIDは再利用しない
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return p
}

// updateProductは在庫以外を書き換える。在庫はsetStock/decreaseStock経由。
func (s *Store) updateProduct(p model.Product) error {
	i, ok := s.findProduct(p.ID)
	if !ok {
		return repo.ErrNotFound
	}
	p.Stock = s.products[i].Stock
	s.products[i] = p
	return nil
}

func (s *Store) deleteProduct(id int64) error {
	i, ok := s.findProduct(id)
	if !ok {
		return repo.ErrNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

func (s *Store) setStock(id int64, newStock int64) error {
	i, ok := s.findProduct(id)
	if !ok {
		return repo.ErrNotFound
	}
	s.products[i].Stock = newStock
	return nil
}

func (s *Store) decreaseStockIfEnough(id int64, qty int64) (bool, error) {
	i, ok := s.findProduct(id)
	if !ok {
		return false, repo.ErrNotFound
	}
	if s.products[i].Stock < qty {
		return false, nil
	}
	s.products[i].Stock -= qty
	return true, nil
}

func (s *Store) findOrder(id int64) (int, bool) {
	for i, o := range s.orders {
		if o.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) findOrderByKey(key string) (model.Order, bool) {
	for _, o := range s.orders {
		if o.IdempotencyKey == key {
			return o, true
		}
	}
	return model.Order{}, false
}

// 新しい順。limitは新しい側からの件数。
func (s *Store) listOrders(f repo.OrderListFilter) []model.Order {
	out := make([]model.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if f.Status != "" && string(o.Status) != f.Status {
			continue
		}
		out = append(out, o)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out
}

func (s *Store) appendOrder(o model.Order) model.Order {
	o.ID = s.nextOrderID
	s.nextOrderID++
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) updateOrderStatus(id int64, status model.OrderStatus) (model.Order, error) {
	i, ok := s.findOrder(id)
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	s.orders[i].Status = status
	s.orders[i].UpdatedAt = time.Now()
	return s.orders[i], nil
}
