package model

import (
	"strings"
	"time"
)

// OrderStatus is the lifecycle state of an order.
// OrderStatus 是订单的生命周期状态。
type OrderStatus string

// Order lifecycle: PENDING → PROCESSING → SHIPPED → DELIVERED, with
// CANCELLED reachable from any non-terminal state. Only an admin
// capability may transition status; customers never mutate orders.
//
// 订单生命周期：PENDING → PROCESSING → SHIPPED → DELIVERED，
// CANCELLED可从任何非终止状态到达。只有管理员能力可以转换状态。
const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known enum values.
// Valid 报告状态是否是已知的枚举值之一。
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
// Terminal 报告该状态是否不再允许任何转换。
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether moving from s to next is a legal
// status transition.
//
// CanTransition 报告从s转换到next是否是合法的状态转换。
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

// OrderItem is one line of an order, frozen at order-creation time.
// OrderItem 是订单的一行，在订单创建时冻结。
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

// Address is a shipping address. All fields are required.
// Address 是收货地址。所有字段都是必填的。
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Validate checks that no required field is blank.
// Validate 检查没有必填字段为空。
func (a Address) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zip code", a.ZipCode},
		{"country", a.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return errValidation("shipping address " + f.name + " is required")
		}
	}
	return nil
}

// Order is a customer order. Orders are created, never mutated by the
// customer; items are snapshots frozen at creation time.
//
// Order 是客户订单。订单创建后客户从不修改；商品是创建时冻结的快照。
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	ShippingAddress Address     `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// CreateOrderRequest is the body for creating an order from the current cart.
// CreateOrderRequest 是从当前购物车创建订单的请求体。
type CreateOrderRequest struct {
	ShippingAddress Address `json:"shippingAddress"`
}

// Validate checks the request before it is sent to the backend.
// Validate 在请求发送到后端之前对其进行检查。
func (r CreateOrderRequest) Validate() error {
	return r.ShippingAddress.Validate()
}
