package main

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/memstore"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg := config.Load()

	//価格を文字列ではなく数値のままJSONに出す
	decimal.MarshalJSONWithoutQuotes = true

	//プロセス内ストア（初期カタログ入り）。再起動でデータは消える。
	store := memstore.New(memstore.DefaultCatalog())

	//Repository（メモリ実装）生成
	productRepo := memstore.NewProductRepo(store)
	inventoryRepo := memstore.NewInventoryRepo(store)
	tx := memstore.NewTxManager(store)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, inventoryRepo)
	orderUC := usecase.NewOrderUsecase(tx)
	statsUC := usecase.NewStatsUsecase(tx)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)
	statsH := handler.NewStatsHandler(statsUC)

	//Server起動
	if err := server.Start(cfg, productH, orderH, statsH); err != nil {
		panic(err)
	}
}
