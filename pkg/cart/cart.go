// Package cart implements the shopping cart state holder. It mirrors the
// server-side cart: every successful mutation replaces the local mirror with
// the cart returned by the backend, and the item count is recomputed as the
// sum of item quantities so badge views stay consistent with the mirror.
//
// Package cart 实现购物车状态持有者。它镜像服务器端购物车：
// 每次成功的变更都用后端返回的购物车替换本地镜像，
// 并将条目计数重新计算为条目数量之和，使徽章视图与镜像保持一致。
package cart

import (
	"context"
	"net/url"

	"github.com/yourusername/storefront/internal/reactive"
	"github.com/yourusername/storefront/pkg/api"
	"github.com/yourusername/storefront/pkg/errors"
	"github.com/yourusername/storefront/pkg/model"
)

// Cart holds the client-side mirror of the authenticated user's cart.
// The mirror and the item count are exposed as signals; both update only on
// successful backend responses. A failed mutation leaves the previous state
// untouched.
//
// Cart 持有已认证用户购物车的客户端镜像。
// 镜像和条目计数作为信号暴露；两者仅在后端成功响应时更新。
// 失败的变更保持先前状态不变。
type Cart struct {
	client *api.Client
	mirror *reactive.Signal[*model.Cart]
	count  *reactive.Signal[int]
}

// New creates an empty cart holder backed by the given API client.
//
// New 创建由给定API客户端支持的空购物车持有者。
func New(client *api.Client) *Cart {
	return &Cart{
		client: client,
		mirror: reactive.NewSignal[*model.Cart](nil),
		count:  reactive.NewSignal(0),
	}
}

// Mirror returns the signal carrying the current cart snapshot.
// The value is nil before the first successful fetch and after Clear.
//
// Mirror 返回携带当前购物车快照的信号。
// 首次成功获取之前和Clear之后该值为nil。
func (c *Cart) Mirror() *reactive.Signal[*model.Cart] {
	return c.mirror
}

// Count returns the signal carrying the total item quantity.
//
// Count 返回携带总条目数量的信号。
func (c *Cart) Count() *reactive.Signal[int] {
	return c.count
}

// Fetch loads the cart from the backend and replaces the mirror.
//
// Fetch 从后端加载购物车并替换镜像。
//
// Returns:
//   - *model.Cart: The fetched cart
//   - error: An error if the request fails
func (c *Cart) Fetch(ctx context.Context) (*model.Cart, error) {
	var out model.Cart
	if err := c.client.Get(ctx, "/api/cart", &out); err != nil {
		return nil, err
	}
	c.replace(&out)
	return &out, nil
}

// AddItem adds quantity units of a product to the cart. Adding a product
// already in the cart accumulates its quantity server-side.
//
// AddItem 向购物车添加数量为quantity的产品。
// 添加已在购物车中的产品会在服务器端累加其数量。
func (c *Cart) AddItem(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	req := &model.AddToCartRequest{ProductID: productID, Quantity: quantity}
	var out model.Cart
	if err := c.client.Post(ctx, "/api/cart/items", req, &out); err != nil {
		return nil, err
	}
	c.replace(&out)
	return &out, nil
}

// SetQuantity changes the quantity of a cart line. Quantities below one are
// rejected locally without a request; use RemoveItem to drop a line.
//
// SetQuantity 更改购物车行的数量。小于一的数量在本地被拒绝而不发送请求；
// 使用RemoveItem删除一行。
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	req := &model.UpdateCartItemRequest{Quantity: quantity}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errors.NewValidation("product id is required")
	}
	var out model.Cart
	if err := c.client.Put(ctx, "/api/cart/items/"+url.PathEscape(productID), req, &out); err != nil {
		return nil, err
	}
	c.replace(&out)
	return &out, nil
}

// RemoveItem deletes a line from the cart.
//
// RemoveItem 从购物车中删除一行。
func (c *Cart) RemoveItem(ctx context.Context, productID string) (*model.Cart, error) {
	var out model.Cart
	if err := c.client.Delete(ctx, "/api/cart/items/"+url.PathEscape(productID), &out); err != nil {
		return nil, err
	}
	c.replace(&out)
	return &out, nil
}

// Clear empties the cart on the backend and resets the mirror to nil.
//
// Clear 清空后端购物车并将镜像重置为nil。
func (c *Cart) Clear(ctx context.Context) error {
	if err := c.client.Delete(ctx, "/api/cart", nil); err != nil {
		return err
	}
	c.mirror.Set(nil)
	c.count.Set(0)
	return nil
}

// replace swaps in a new cart snapshot and recomputes the item count.
//
// replace 换入新的购物车快照并重新计算条目计数。
func (c *Cart) replace(cart *model.Cart) {
	c.mirror.Set(cart)
	c.count.Set(cart.ItemCount())
}
