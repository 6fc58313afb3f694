package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL      string          `json:"image_url"`
	AgeRange      string          `json:"age_range"` // e.g. "0-6m", "6-12m", "1-2y"
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    uint            `gorm:"index" json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
