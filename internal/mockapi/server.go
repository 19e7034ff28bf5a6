// Package mockapi implements an in-memory mock of the storefront backend.
// This file assembles the server and its routes.
//
// Package mockapi 实现店面后端的内存模拟。
// 本文件组装服务器及其路由。
package mockapi

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server bundles the store, the signing secret, and the logger behind a gin
// router.
//
// Server 将存储、签名密钥和日志记录器捆绑在gin路由器后面。
type Server struct {
	store  *Store
	secret []byte
	logger logrus.FieldLogger
}

// NewServer creates a mock backend server over the given store.
//
// NewServer 在给定存储上创建模拟后端服务器。
func NewServer(store *Store, secret []byte, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(secret) == 0 {
		secret = []byte("storefront-mock-secret")
	}
	return &Server{store: store, secret: secret, logger: logger}
}

// Router builds the gin engine with all storefront routes mounted.
//
// Router 构建挂载了所有店面路由的gin引擎。
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.POST("/forgot-password", s.handleForgotPassword)
		auth.POST("/reset-password", s.handleResetPassword)
	}

	products := api.Group("/products")
	{
		products.GET("", s.handleListProducts)
		products.GET("/search", s.handleSearchProducts)
		products.GET("/price-range", s.handleProductsByPriceRange)
		products.GET("/category/:category", s.handleProductsByCategory)
		products.GET("/:id", s.handleGetProduct)

		admin := products.Group("", s.authRequired(), s.adminRequired())
		admin.POST("", s.handleCreateProduct)
		admin.PUT("/:id", s.handleUpdateProduct)
		admin.DELETE("/:id", s.handleDeleteProduct)
	}

	users := api.Group("/users", s.authRequired())
	{
		users.GET("/profile", s.handleProfile)
		users.PUT("/profile", s.handleUpdateProfile)
	}

	cart := api.Group("/cart", s.authRequired())
	{
		cart.GET("", s.handleGetCart)
		cart.DELETE("", s.handleClearCart)
		cart.POST("/items", s.handleAddCartItem)
		cart.PUT("/items/:productId", s.handleUpdateCartItem)
		cart.DELETE("/items/:productId", s.handleRemoveCartItem)
	}

	orders := api.Group("/orders", s.authRequired())
	{
		orders.POST("", s.handleCreateOrder)
		orders.GET("", s.handleListOrders)
		orders.GET("/all", s.adminRequired(), s.handleAllOrders)
		orders.GET("/:id", s.handleGetOrder)
		orders.PUT("/:id/status", s.adminRequired(), s.handleUpdateOrderStatus)
	}

	return r
}
