package memstore

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// DefaultCatalogは開発用の初期カタログ。
func DefaultCatalog() []model.Product {
	return []model.Product{
		{
			Name:        "Smartphone",
			Description: "High-spec smartphone with an advanced camera",
			Price:       decimal.NewFromInt(1500),
			Emoji:       "📱",
			Stock:       25,
			Category:    "electronics",
		},
		{
			Name:        "Laptop",
			Description: "Powerful laptop for gaming and work",
			Price:       decimal.NewFromInt(3500),
			Emoji:       "💻",
			Stock:       10,
			Category:    "electronics",
		},
		{
			Name:        "Wireless Headphones",
			Description: "High quality bluetooth headphones",
			Price:       decimal.NewFromInt(250),
			Emoji:       "🎧",
			Stock:       50,
			Category:    "accessories",
		},
		{
			Name:        "Smart Watch",
			Description: "Smart watch for fitness and health tracking",
			Price:       decimal.NewFromInt(800),
			Emoji:       "⌚",
			Stock:       15,
			Category:    "electronics",
		},
		{
			Name:        "Digital Camera",
			Description: "Professional camera for photography",
			Price:       decimal.NewFromInt(2200),
			Emoji:       "📷",
			Stock:       8,
			Category:    "electronics",
		},
		{
			Name:        "Smart TV",
			Description: "55 inch 4K smart TV",
			Price:       decimal.NewFromInt(2800),
			Emoji:       "📺",
			Stock:       5,
			Category:    "electronics",
		},
	}
}
