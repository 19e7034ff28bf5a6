package mockapi

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/storefront/pkg/model"
)

// handleGetCart returns the authenticated user's cart.
// GET /api/cart
//
// handleGetCart 返回已认证用户的购物车。
func (s *Server) handleGetCart(c *gin.Context) {
	respondOK(c, "ok", s.store.Cart(currentUserID(c)))
}

// handleAddCartItem adds a product to the cart, accumulating quantity onto
// an existing line.
// POST /api/cart/items
//
// handleAddCartItem 向购物车添加产品，将数量累加到现有行上。
func (s *Server) handleAddCartItem(c *gin.Context) {
	var req model.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	cart, err := s.store.AddCartItem(currentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Item added to cart", cart)
}

// handleUpdateCartItem replaces the quantity of a cart line.
// PUT /api/cart/items/:productId
//
// handleUpdateCartItem 替换购物车行的数量。
func (s *Server) handleUpdateCartItem(c *gin.Context) {
	var req model.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	cart, err := s.store.SetCartItemQuantity(currentUserID(c), c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Cart item updated", cart)
}

// handleRemoveCartItem deletes a line from the cart.
// DELETE /api/cart/items/:productId
//
// handleRemoveCartItem 从购物车中删除一行。
func (s *Server) handleRemoveCartItem(c *gin.Context) {
	cart, err := s.store.RemoveCartItem(currentUserID(c), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Item removed from cart", cart)
}

// handleClearCart empties the cart.
// DELETE /api/cart
//
// handleClearCart 清空购物车。
func (s *Server) handleClearCart(c *gin.Context) {
	s.store.ClearCart(currentUserID(c))
	respondOK(c, "Cart cleared", nil)
}
