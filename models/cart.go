package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a product snapshot plus a quantity. Invariants maintained by the
// cart controller: at most one item per product id, quantity always >= 1.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	CartID     uint      `gorm:"index" json:"-"`
	ProductID  uint      `json:"product_id"`
	EName      string    `json:"e_name"`
	ARName     string    `json:"ar_name"`
	ECategory  string    `json:"e_category"`
	ARCategory string    `json:"ar_category"`
	ImageURL   string    `json:"image_url"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

// ItemFromProduct snapshots a product into a cart line.
func ItemFromProduct(p Product, quantity int) CartItem {
	return CartItem{
		ProductID:  p.ID,
		EName:      p.EName,
		ARName:     p.ARName,
		ECategory:  p.ECategory,
		ARCategory: p.ARCategory,
		ImageURL:   p.ImageURL,
		Price:      p.Price,
		Quantity:   quantity,
		AddedAt:    time.Now(),
	}
}
