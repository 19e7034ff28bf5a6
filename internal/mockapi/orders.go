package mockapi

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/storefront/pkg/model"
)

// handleCreateOrder freezes the user's server-side cart into a new order.
// The cart is cleared on success.
// POST /api/orders
//
// handleCreateOrder 将用户的服务器端购物车冻结为新订单。成功时清空购物车。
func (s *Server) handleCreateOrder(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	order, err := s.store.CreateOrder(currentUserID(c), req.ShippingAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Order created", order)
}

// handleListOrders returns one page of the user's order history.
// GET /api/orders
//
// handleListOrders 返回用户订单历史的一页。
func (s *Server) handleListOrders(c *gin.Context) {
	page, size := pageParams(c)
	respondOK(c, "ok", paginate(s.store.OrdersForUser(currentUserID(c)), page, size))
}

// handleGetOrder returns a single order. Customers may only read their own
// orders; admins may read any.
// GET /api/orders/:id
//
// handleGetOrder 返回单个订单。客户只能读取自己的订单；管理员可以读取任何订单。
func (s *Server) handleGetOrder(c *gin.Context) {
	order, err := s.store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if order.UserID != currentUserID(c) && c.GetString(ctxRole) != string(model.RoleAdmin) {
		respondFail(c, "Resource not found")
		return
	}
	respondOK(c, "ok", order)
}

// handleAllOrders returns every order in the system. Admin only.
// GET /api/orders/all
//
// handleAllOrders 返回系统中的每个订单。仅限管理员。
func (s *Server) handleAllOrders(c *gin.Context) {
	respondOK(c, "ok", s.store.AllOrders())
}

// handleUpdateOrderStatus transitions an order's lifecycle status,
// enforcing the legal transition chain. Admin only.
// PUT /api/orders/:id/status?status=
//
// handleUpdateOrderStatus 转换订单的生命周期状态，强制执行合法转换链。仅限管理员。
func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	next := model.OrderStatus(c.Query("status"))
	if !next.Valid() {
		respondFail(c, "Unknown order status")
		return
	}
	order, err := s.store.UpdateOrderStatus(c.Param("id"), next)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Order status updated", order)
}
