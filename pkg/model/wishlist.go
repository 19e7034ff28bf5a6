package model

import "time"

// WishlistItem is a purely client-local snapshot of a product. No server
// entity backs it; it lives only in local storage.
//
// WishlistItem 是纯客户端本地的产品快照。没有服务器实体支持它；它只存在于本地存储中。
type WishlistItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	AddedAt     time.Time `json:"addedAt"`
}

// NewWishlistItem snapshots a product into a wishlist entry.
// NewWishlistItem 将产品快照为愿望清单条目。
func NewWishlistItem(p Product) WishlistItem {
	return WishlistItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		AddedAt:     time.Now(),
	}
}
