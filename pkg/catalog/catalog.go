// Package catalog implements product browsing against the backend catalog
// endpoints. It exposes paginated listing, single-product lookup, keyword
// search, category and price-range filtering, and the administrative CRUD
// operations, all returning Spring-style pages decoded from the response
// envelope.
//
// Package catalog 实现针对后端目录端点的产品浏览。
// 它提供分页列表、单个产品查询、关键字搜索、类别和价格区间过滤，
// 以及管理性的增删改操作，全部返回从响应信封解码的Spring风格分页。
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/yourusername/storefront/pkg/api"
	"github.com/yourusername/storefront/pkg/model"
)

// Catalog provides read and admin access to the product catalog.
// It is a thin stateless layer over the API client; every call hits the
// backend and decodes the result.
//
// Catalog 提供对产品目录的读取和管理访问。
// 它是API客户端之上的轻量无状态层；每次调用都访问后端并解码结果。
type Catalog struct {
	client   *api.Client
	pageSize int // Default page size when callers pass size <= 0 / 调用者传入size <= 0时的默认页面大小
}

// New creates a Catalog backed by the given API client.
// pageSize is the default used when a query passes a non-positive size.
//
// New 创建由给定API客户端支持的Catalog。
// pageSize 是查询传入非正数size时使用的默认值。
func New(client *api.Client, pageSize int) *Catalog {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Catalog{client: client, pageSize: pageSize}
}

// pageQuery builds the page/size query string shared by every paginated
// endpoint. Pages are zero-based.
//
// pageQuery 构建每个分页端点共享的page/size查询字符串。页码从零开始。
func (c *Catalog) pageQuery(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = c.pageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// List returns one page of the full catalog.
//
// List 返回完整目录的一页。
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - page: Zero-based page number
//   - size: Page size; non-positive values fall back to the default
//
// Returns:
//   - *model.Page[model.Product]: The requested page
//   - error: An error if the request or decoding fails
func (c *Catalog) List(ctx context.Context, page, size int) (*model.Page[model.Product], error) {
	var out model.Page[model.Product]
	q := c.pageQuery(page, size)
	if err := c.client.Get(ctx, "/api/products?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns a single product by its identifier.
//
// Get 按标识符返回单个产品。
func (c *Catalog) Get(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	if err := c.client.Get(ctx, "/api/products/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search returns one page of products whose name or description matches the
// keyword. Matching is performed by the backend.
//
// Search 返回名称或描述与关键字匹配的产品的一页。匹配由后端执行。
func (c *Catalog) Search(ctx context.Context, keyword string, page, size int) (*model.Page[model.Product], error) {
	var out model.Page[model.Product]
	q := c.pageQuery(page, size)
	q.Set("keyword", keyword)
	if err := c.client.Get(ctx, "/api/products/search?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByCategory returns one page of products in the given category.
//
// ByCategory 返回给定类别中产品的一页。
func (c *Catalog) ByCategory(ctx context.Context, category string, page, size int) (*model.Page[model.Product], error) {
	var out model.Page[model.Product]
	q := c.pageQuery(page, size)
	path := fmt.Sprintf("/api/products/category/%s?%s", url.PathEscape(category), q.Encode())
	if err := c.client.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByPriceRange returns one page of products priced within [min, max].
//
// ByPriceRange 返回价格在[min, max]范围内的产品的一页。
func (c *Catalog) ByPriceRange(ctx context.Context, min, max float64, page, size int) (*model.Page[model.Product], error) {
	var out model.Page[model.Product]
	q := c.pageQuery(page, size)
	q.Set("minPrice", strconv.FormatFloat(min, 'f', -1, 64))
	q.Set("maxPrice", strconv.FormatFloat(max, 'f', -1, 64))
	if err := c.client.Get(ctx, "/api/products/price-range?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchInCategory combines a keyword search with a category filter.
// The keyword is matched by the backend; the category filter is then applied
// locally to the returned page, case-insensitively. Pagination counters keep
// the backend's totals, so a filtered page can hold fewer items than its
// TotalElements suggests.
//
// SearchInCategory 将关键字搜索与类别过滤组合。
// 关键字由后端匹配；然后对返回的页面在本地不区分大小写地应用类别过滤。
// 分页计数保留后端的总数，因此过滤后的页面可能比其TotalElements所示包含更少的条目。
func (c *Catalog) SearchInCategory(ctx context.Context, keyword, category string, page, size int) (*model.Page[model.Product], error) {
	result, err := c.Search(ctx, keyword, page, size)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return result, nil
	}

	filtered := make([]model.Product, 0, len(result.Content))
	for _, p := range result.Content {
		if p.InCategory(category) {
			filtered = append(filtered, p)
		}
	}
	result.Content = filtered
	result.Empty = len(filtered) == 0
	return result, nil
}

// Create adds a new product to the catalog. Requires an admin token on the
// client's token source.
//
// Create 向目录添加新产品。需要客户端令牌源上的管理员令牌。
func (c *Catalog) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	var out model.Product
	if err := c.client.Post(ctx, "/api/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifies an existing product. Only the fields set on the request
// are changed.
//
// Update 修改现有产品。只有请求上设置的字段会被更改。
func (c *Catalog) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	var out model.Product
	if err := c.client.Put(ctx, "/api/products/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product from the catalog.
//
// Delete 从目录中删除产品。
func (c *Catalog) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/api/products/"+url.PathEscape(id), nil)
}
