package mockapi

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/storefront/pkg/model"
)

// pageParams reads the zero-based page/size query parameters with defaults.
// pageParams 读取从零开始的page/size查询参数并提供默认值。
func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 10
	}
	return page, size
}

// paginate slices items into the Spring-style page shape.
// paginate 将条目切分为Spring风格的分页形状。
func paginate[T any](items []T, page, size int) model.Page[T] {
	total := int64(len(items))
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}

	start := page * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	content := items[start:end]
	if content == nil {
		content = []T{}
	}

	return model.Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
		Empty:         len(content) == 0,
	}
}

// handleListProducts returns one page of the catalog.
// GET /api/products
//
// handleListProducts 返回目录的一页。
func (s *Server) handleListProducts(c *gin.Context) {
	page, size := pageParams(c)
	respondOK(c, "ok", paginate(s.store.Products(), page, size))
}

// handleGetProduct returns a single product.
// GET /api/products/:id
//
// handleGetProduct 返回单个产品。
func (s *Server) handleGetProduct(c *gin.Context) {
	p, err := s.store.Product(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "ok", p)
}

// handleSearchProducts returns products whose name or description contains
// the keyword, case-insensitively.
// GET /api/products/search?keyword=
//
// handleSearchProducts 返回名称或描述不区分大小写地包含关键字的产品。
func (s *Server) handleSearchProducts(c *gin.Context) {
	keyword := strings.ToLower(c.Query("keyword"))
	page, size := pageParams(c)

	var matched []model.Product
	for _, p := range s.store.Products() {
		if strings.Contains(strings.ToLower(p.Name), keyword) ||
			strings.Contains(strings.ToLower(p.Description), keyword) {
			matched = append(matched, p)
		}
	}
	respondOK(c, "ok", paginate(matched, page, size))
}

// handleProductsByCategory returns products in one category.
// GET /api/products/category/:category
//
// handleProductsByCategory 返回一个类别中的产品。
func (s *Server) handleProductsByCategory(c *gin.Context) {
	category := c.Param("category")
	page, size := pageParams(c)

	var matched []model.Product
	for _, p := range s.store.Products() {
		if p.InCategory(category) {
			matched = append(matched, p)
		}
	}
	respondOK(c, "ok", paginate(matched, page, size))
}

// handleProductsByPriceRange returns products priced within [min, max].
// GET /api/products/price-range?minPrice=&maxPrice=
//
// handleProductsByPriceRange 返回价格在[min, max]范围内的产品。
func (s *Server) handleProductsByPriceRange(c *gin.Context) {
	min, err := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
	if err != nil {
		respondFail(c, "Invalid minPrice")
		return
	}
	max, err := strconv.ParseFloat(c.DefaultQuery("maxPrice", "0"), 64)
	if err != nil {
		respondFail(c, "Invalid maxPrice")
		return
	}
	page, size := pageParams(c)

	var matched []model.Product
	for _, p := range s.store.Products() {
		if p.Price >= min && p.Price <= max {
			matched = append(matched, p)
		}
	}
	respondOK(c, "ok", paginate(matched, page, size))
}

// handleCreateProduct adds a product to the catalog. Admin only.
// POST /api/products
//
// handleCreateProduct 向目录添加产品。仅限管理员。
func (s *Server) handleCreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	respondOK(c, "Product created", s.store.CreateProduct(req))
}

// handleUpdateProduct applies a partial product update. Admin only.
// PUT /api/products/:id
//
// handleUpdateProduct 应用部分产品更新。仅限管理员。
func (s *Server) handleUpdateProduct(c *gin.Context) {
	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondFail(c, err.Error())
		return
	}
	p, err := s.store.UpdateProduct(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Product updated", p)
}

// handleDeleteProduct removes a product. Admin only.
// DELETE /api/products/:id
//
// handleDeleteProduct 删除产品。仅限管理员。
func (s *Server) handleDeleteProduct(c *gin.Context) {
	if err := s.store.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Product deleted", nil)
}
