package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	Inventory() InventoryRepository
	Products() ProductRepository
}

// Usecaseから排他制御の開始/終了を隠す。
// WithinTxの中はストア全体に対して直列化される（検証→在庫減算を分割させない）。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
