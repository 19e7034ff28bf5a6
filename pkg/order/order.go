// Package order implements order placement and history. Orders are created
// from the server-side cart: the client sends only a shipping address, and
// the backend freezes the cart lines into the order. The local cart mirror
// is deliberately left untouched on success; the next cart fetch observes
// the emptied server cart.
//
// Package order 实现订单下达和历史。订单从服务器端购物车创建：
// 客户端只发送收货地址，后端将购物车行冻结到订单中。
// 成功时本地购物车镜像有意保持不变；下一次购物车获取会观察到清空的服务器购物车。
package order

import (
	"context"
	"net/url"
	"strconv"

	"github.com/yourusername/storefront/pkg/api"
	"github.com/yourusername/storefront/pkg/cart"
	"github.com/yourusername/storefront/pkg/errors"
	"github.com/yourusername/storefront/pkg/model"
)

// Orders provides order placement, history, and the admin status operations.
//
// Orders 提供订单下达、历史和管理员状态操作。
type Orders struct {
	client *api.Client
	cart   *cart.Cart
}

// New creates an Orders holder. The cart holder is consulted before
// placement: an order from an empty or unfetched cart is rejected locally.
//
// New 创建Orders持有者。下单前会查询购物车持有者：
// 来自空的或未获取的购物车的订单在本地被拒绝。
func New(client *api.Client, cart *cart.Cart) *Orders {
	return &Orders{client: client, cart: cart}
}

// Create places an order from the current cart. The shipping address and
// the cart mirror are validated locally; neither failure produces a request.
// On success the local cart mirror is not cleared, matching the server-side
// cart only after the next fetch.
//
// Create 从当前购物车下订单。收货地址和购物车镜像在本地验证；
// 两种失败都不产生请求。成功时本地购物车镜像不会被清除，
// 仅在下一次获取后才与服务器端购物车一致。
func (o *Orders) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if o.cart.Mirror().Get().IsEmpty() {
		return nil, errors.NewValidation("cannot place an order with an empty cart")
	}

	var out model.Order
	if err := o.client.Post(ctx, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns a single order by its identifier.
//
// Get 按标识符返回单个订单。
func (o *Orders) Get(ctx context.Context, id string) (*model.Order, error) {
	var out model.Order
	if err := o.client.Get(ctx, "/api/orders/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns one page of the authenticated user's order history, newest
// first.
//
// List 返回已认证用户订单历史的一页，最新的在前。
func (o *Orders) List(ctx context.Context, page, size int) (*model.Page[model.Order], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out model.Page[model.Order]
	if err := o.client.Get(ctx, "/api/orders?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All returns every order in the system. Requires an admin token.
//
// All 返回系统中的每个订单。需要管理员令牌。
func (o *Orders) All(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := o.client.Get(ctx, "/api/orders/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves an order to a new lifecycle status. Requires an admin
// token. Unknown statuses are rejected locally.
//
// UpdateStatus 将订单移动到新的生命周期状态。需要管理员令牌。
// 未知状态在本地被拒绝。
func (o *Orders) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, errors.NewValidation("unknown order status: " + string(status))
	}

	q := url.Values{}
	q.Set("status", string(status))
	path := "/api/orders/" + url.PathEscape(id) + "/status?" + q.Encode()

	var out model.Order
	if err := o.client.Put(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
