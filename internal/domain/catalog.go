// internal/domain/catalog.go
package domain

import "github.com/shopspring/decimal"

// JewelryItem is a catalog entry. Items with an empty StoreID belong to the
// shared catalog; otherwise they are scoped to a store.
type JewelryItem struct {
	ItemID        string          `db:"item_id" json:"item_id"`
	StoreID       string          `db:"store_id" json:"store_id,omitempty"`
	StoreName     string          `db:"store_name" json:"store_name,omitempty"`
	Name          string          `db:"name" json:"name"`
	NameAr        string          `db:"name_ar" json:"name_ar"`
	Description   string          `db:"description" json:"description"`
	DescriptionAr string          `db:"description_ar" json:"description_ar"`
	Price         decimal.Decimal `db:"price" json:"price"`
	WeightGrams   decimal.Decimal `db:"weight_grams" json:"weight_grams"`
	Karat         int             `db:"karat" json:"karat"`
	Category      string          `db:"category" json:"category"` // necklace, ring, bracelet, earrings
	ImageURL      *string         `db:"image_url" json:"image_url,omitempty"`
	InStock       bool            `db:"in_stock" json:"in_stock"`
	Rating        float64         `db:"rating" json:"rating,omitempty"`
}

// Store is a jewelry store record.
type Store struct {
	StoreID       string  `db:"store_id" json:"store_id"`
	Name          string  `db:"name" json:"name"`
	NameAr        string  `db:"name_ar" json:"name_ar"`
	Description   string  `db:"description" json:"description"`
	DescriptionAr string  `db:"description_ar" json:"description_ar"`
	LogoURL       *string `db:"logo_url" json:"logo_url,omitempty"`
	Rating        float64 `db:"rating" json:"rating"`
	TotalProducts int     `db:"total_products" json:"total_products"`
	Location      *string `db:"location" json:"location"`
	Phone         *string `db:"phone" json:"phone"`
	IsVerified    bool    `db:"is_verified" json:"is_verified"`
}
