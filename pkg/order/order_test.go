// Package order implements order placement and history.
// This file contains tests for the order operations.
//
// Package order 实现订单下达和历史。
// 本文件包含订单操作的测试。
package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/storefront/pkg/api"
	"github.com/yourusername/storefront/pkg/cart"
	"github.com/yourusername/storefront/pkg/errors"
	"github.com/yourusername/storefront/pkg/model"
)

var testAddress = model.Address{
	Street:  "1 Main St",
	City:    "Springfield",
	State:   "IL",
	ZipCode: "62701",
	Country: "US",
}

// orderBackend serves the cart and order endpoints behind the envelope.
// orderBackend 在信封后面提供购物车和订单端点。
type orderBackend struct {
	requests int
	order    model.Order
}

func (b *orderBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.requests++
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/api/cart":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "ok",
				"data": model.Cart{
					ID:     "c1",
					UserID: "u1",
					Items: []model.CartItem{
						{ProductID: "p1", Quantity: 2, Price: 10, Subtotal: 20},
					},
					TotalAmount: 20,
				},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/orders":
			var req model.CreateOrderRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.order = model.Order{
				ID:              "o1",
				UserID:          "u1",
				Status:          model.StatusPending,
				TotalAmount:     20,
				ShippingAddress: req.ShippingAddress,
				Items: []model.OrderItem{
					{ProductID: "p1", Quantity: 2, Price: 10, Subtotal: 20},
				},
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "Order created",
				"data":    b.order,
			})
		case r.Method == http.MethodPut:
			b.order.Status = model.OrderStatus(r.URL.Query().Get("status"))
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "ok",
				"data":    b.order,
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "ok",
				"data":    b.order,
			})
		}
	}
}

func newTestOrders(t *testing.T) (*Orders, *cart.Cart, *orderBackend) {
	t.Helper()
	backend := &orderBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, api.WithMetricsEnabled(false))
	require.NoError(t, err)
	c := cart.New(client)
	return New(client, c), c, backend
}

// TestCreateRejectsEmptyCart verifies that placing an order before any cart
// fetch, or with an empty mirror, never reaches the backend.
//
// TestCreateRejectsEmptyCart 验证在任何购物车获取之前或镜像为空时下单
// 永远不会到达后端。
func TestCreateRejectsEmptyCart(t *testing.T) {
	orders, _, backend := newTestOrders(t)

	_, err := orders.Create(context.Background(), &model.CreateOrderRequest{ShippingAddress: testAddress})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Zero(t, backend.requests)
}

// TestCreateRejectsBlankAddress verifies that a blank address field blocks
// the request locally.
//
// TestCreateRejectsBlankAddress 验证空白地址字段在本地阻止请求。
func TestCreateRejectsBlankAddress(t *testing.T) {
	orders, c, backend := newTestOrders(t)
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	requestsAfterFetch := backend.requests

	bad := testAddress
	bad.City = "   "
	_, err = orders.Create(context.Background(), &model.CreateOrderRequest{ShippingAddress: bad})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, requestsAfterFetch, backend.requests)
}

// TestCreateKeepsCartMirror verifies the placement happy path and that the
// local cart mirror is not cleared by a successful order.
//
// TestCreateKeepsCartMirror 验证下单成功路径，以及成功订单不会清除本地购物车镜像。
func TestCreateKeepsCartMirror(t *testing.T) {
	orders, c, _ := newTestOrders(t)
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, c.Count().Get())

	placed, err := orders.Create(context.Background(), &model.CreateOrderRequest{ShippingAddress: testAddress})
	require.NoError(t, err)
	assert.Equal(t, "o1", placed.ID)
	assert.Equal(t, model.StatusPending, placed.Status)
	assert.Equal(t, testAddress, placed.ShippingAddress)

	// The mirror still shows the pre-order cart until the next fetch
	// 镜像在下一次获取之前仍显示下单前的购物车
	assert.Equal(t, 2, c.Count().Get())
	assert.NotNil(t, c.Mirror().Get())
}

// TestUpdateStatus verifies the admin status transition call and the local
// rejection of unknown statuses.
//
// TestUpdateStatus 验证管理员状态转换调用和本地拒绝未知状态。
func TestUpdateStatus(t *testing.T) {
	orders, c, backend := newTestOrders(t)
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	_, err = orders.Create(context.Background(), &model.CreateOrderRequest{ShippingAddress: testAddress})
	require.NoError(t, err)

	updated, err := orders.UpdateStatus(context.Background(), "o1", model.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, model.StatusProcessing, updated.Status)

	requestsBefore := backend.requests
	_, err = orders.UpdateStatus(context.Background(), "o1", model.OrderStatus("SHIPPING"))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, requestsBefore, backend.requests)
}

// TestGetOrder verifies single-order lookup.
//
// TestGetOrder 验证单个订单查询。
func TestGetOrder(t *testing.T) {
	orders, c, _ := newTestOrders(t)
	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	_, err = orders.Create(context.Background(), &model.CreateOrderRequest{ShippingAddress: testAddress})
	require.NoError(t, err)

	got, err := orders.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ProductID)
}
