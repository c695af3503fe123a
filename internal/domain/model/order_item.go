package model

import "github.com/shopspring/decimal"

// 注文時点の商品スナップショット。後から商品を編集しても明細は変わらない。
type OrderItem struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}
