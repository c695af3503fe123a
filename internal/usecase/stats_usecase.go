package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// これ未満の在庫を「残りわずか」として集計する
const lowStockThreshold = 5

type StatsUsecase struct {
	tx repo.TransactionManager
}

func NewStatsUsecase(tx repo.TransactionManager) *StatsUsecase {
	return &StatsUsecase{tx: tx}
}

type StoreStats struct {
	TotalProducts      int             `json:"totalProducts"`
	TotalOrders        int             `json:"totalOrders"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue  decimal.Decimal `json:"averageOrderValue"`
	OrdersByStatus     map[string]int  `json:"ordersByStatus"`
	ProductsByCategory map[string]int  `json:"productsByCategory"`
	LowStockProducts   []model.Product `json:"lowStockProducts"`
}

// GetStoreStatsはカタログと台帳をひとつのスナップショットとして集計する。
func (u *StatsUsecase) GetStoreStats(ctx context.Context) (StoreStats, error) {
	var out StoreStats

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		products, err := r.Products().List(ctx, repo.ProductListQuery{})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "store error")
		}
		orders, err := r.Orders().List(ctx, repo.OrderListFilter{})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "store error")
		}

		revenue := decimal.Zero
		byStatus := make(map[string]int)
		for _, o := range orders {
			revenue = revenue.Add(o.TotalAmount)
			byStatus[string(o.Status)]++
		}

		avg := decimal.Zero
		if len(orders) > 0 {
			avg = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
		}

		byCategory := make(map[string]int)
		lowStock := make([]model.Product, 0)
		for _, p := range products {
			byCategory[p.Category]++
			if p.Stock < lowStockThreshold {
				lowStock = append(lowStock, p)
			}
		}

		out = StoreStats{
			TotalProducts:      len(products),
			TotalOrders:        len(orders),
			TotalRevenue:       revenue,
			AverageOrderValue:  avg,
			OrdersByStatus:     byStatus,
			ProductsByCategory: byCategory,
			LowStockProducts:   lowStock,
		}
		return nil
	})

	if err != nil {
		return StoreStats{}, err
	}
	return out, nil
}
