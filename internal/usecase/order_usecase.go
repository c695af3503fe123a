package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	Items          []OrderItemInput
	CustomerInfo   map[string]any
	IdempotencyKey string
}

type PlaceOrderOutput struct {
	Order model.Order
	//同じキーの再送で既存注文を返したかどうか
	Replayed bool
}

// PlaceOrderは注文確定の本体。
// 全明細の検証が通るまで在庫には一切触らない。途中の明細で失敗しても
// カタログと台帳は無傷のままなので、巻き戻しは不要。
// WithinTxの中は直列化されていて、検証と減算の間に他の注文は割り込めない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if len(in.Items) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "no items in order")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be positive")
		}
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if len(key) > 255 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency key")
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果（在庫は二度減らない）
		if key != "" {
			existing, found, err := r.Orders().FindByIdempotencyKey(ctx, key)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "store error")
			}
			if found {
				out = PlaceOrderOutput{Order: existing, Replayed: true}
				return nil
			}
		}

		//同一商品が複数行に分かれていても合算で検証する
		requested := make(map[int64]int64, len(in.Items))
		ids := make([]int64, 0, len(in.Items))
		for _, it := range in.Items {
			if _, ok := requested[it.ProductID]; !ok {
				ids = append(ids, it.ProductID)
			}
			requested[it.ProductID] += it.Quantity
		}

		//検証フェーズ：存在確認
		products := make(map[int64]model.Product, len(ids))
		for _, id := range ids {
			p, err := r.Products().FindByID(ctx, id)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", id))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "store error")
			}
			products[id] = p
		}

		//検証フェーズ：在庫確認
		for _, id := range ids {
			p := products[id]
			if p.Stock < requested[id] {
				return NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("insufficient stock for %s: available %d", p.Name, p.Stock))
			}
		}

		//更新フェーズ：ここから先は失敗しない
		for _, id := range ids {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, id, requested[id])
			if err != nil || !ok {
				return NewHTTPError(http.StatusInternalServerError, "store error")
			}
		}

		//明細スナップショット（後の価格変更は過去の注文に影響しない）
		items := make([]model.OrderItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			p := products[it.ProductID]
			lineTotal := p.Price.Mul(decimal.NewFromInt(it.Quantity))
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  it.Quantity,
				Total:     lineTotal,
			})
			total = total.Add(lineTotal)
		}

		info := in.CustomerInfo
		if info == nil {
			info = map[string]any{}
		}

		now := time.Now()
		created, err := r.Orders().Create(ctx, model.Order{
			Items:          items,
			TotalAmount:    total,
			CustomerInfo:   info,
			Status:         model.OrderStatusPending,
			IdempotencyKey: key,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "store error")
		}

		out = PlaceOrderOutput{Order: created}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

// ステータス更新。cancelledでも在庫は戻さない。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(status))
	switch newStatus {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled:
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order status")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().UpdateStatus(ctx, orderID, newStatus)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "store error")
		}
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

type ListOrdersInput struct {
	Status string
	Limit  int
}

type OrderListOutput struct {
	Items []model.Order
	Total int
}

func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) (OrderListOutput, error) {
	if in.Limit < 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx, repo.OrderListFilter{
			Status: strings.TrimSpace(in.Status),
			Limit:  in.Limit,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "store error")
		}
		out = OrderListOutput{Items: orders, Total: len(orders)}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetOrderDetail(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "store error")
		}
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}
