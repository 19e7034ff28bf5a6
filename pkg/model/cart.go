package model

import "time"

// CartItem is one line of the server-backed cart. The name and unit price are
// snapshots taken by the backend when the item was added; Subtotal is
// recomputed by the backend on every mutation and mirrored as-is.
//
// CartItem 是服务器支持的购物车中的一行。名称和单价是后端在添加商品时
// 获取的快照；Subtotal由后端在每次变更时重新计算，客户端按原样镜像。
type CartItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Cart is the authoritative cart state as last reported by the backend.
// TotalAmount is server-computed; the client never derives it.
//
// Cart 是后端最后报告的权威购物车状态。
// TotalAmount由服务器计算；客户端从不自行推导。
type Cart struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ItemCount returns the aggregate item count: the sum of item quantities.
//
// ItemCount 返回聚合商品数量：各商品数量之和。
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no items.
// IsEmpty 报告购物车是否为空。
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// AddToCartRequest is the body for adding an item to the cart.
// AddToCartRequest 是向购物车添加商品的请求体。
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r AddToCartRequest) Validate() error {
	if r.ProductID == "" {
		return errValidation("product id is required")
	}
	if r.Quantity < 1 {
		return errValidation("quantity must be at least 1")
	}
	return nil
}

// UpdateCartItemRequest is the body for changing an item's quantity.
// UpdateCartItemRequest 是更改商品数量的请求体。
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r UpdateCartItemRequest) Validate() error {
	if r.Quantity < 1 {
		return errValidation("quantity must be at least 1")
	}
	return nil
}
