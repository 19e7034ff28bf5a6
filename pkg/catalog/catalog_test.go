// Package catalog implements product browsing against the backend catalog
// endpoints. This file contains tests for the catalog operations.
//
// Package catalog 实现针对后端目录端点的产品浏览。
// 本文件包含目录操作的测试。
package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/storefront/pkg/api"
	"github.com/yourusername/storefront/pkg/model"
)

// pageResponse wraps products in the envelope and Spring page shape the
// backend produces.
//
// pageResponse 将产品包装为后端生成的信封和Spring分页形状。
func pageResponse(t *testing.T, w http.ResponseWriter, products []model.Product, total int64) {
	t.Helper()
	page := model.Page[model.Product]{
		Content:       products,
		TotalElements: total,
		TotalPages:    1,
		Size:          10,
		Number:        0,
		First:         true,
		Last:          true,
		Empty:         len(products) == 0,
	}
	data, err := json.Marshal(page)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "ok",
		"data":    json.RawMessage(data),
	})
	require.NoError(t, err)
}

func newTestCatalog(t *testing.T, handler http.HandlerFunc) (*Catalog, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := api.New(server.URL, api.WithMetricsEnabled(false))
	require.NoError(t, err)
	return New(client, 10), server
}

// TestListBuildsPagedQuery verifies that List sends zero-based page and size
// parameters and decodes the returned page.
//
// TestListBuildsPagedQuery 验证List发送从零开始的page和size参数并解码返回的分页。
func TestListBuildsPagedQuery(t *testing.T) {
	var gotPage, gotSize string
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		gotPage = r.URL.Query().Get("page")
		gotSize = r.URL.Query().Get("size")
		pageResponse(t, w, []model.Product{{ID: "p1", Name: "Poster"}}, 1)
	})

	page, err := catalog.List(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "5", gotSize)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "p1", page.Content[0].ID)
	assert.Equal(t, int64(1), page.TotalElements)
}

// TestListDefaultsPageSize verifies that non-positive sizes fall back to the
// configured default.
//
// TestListDefaultsPageSize 验证非正数size回退到配置的默认值。
func TestListDefaultsPageSize(t *testing.T) {
	var gotPage, gotSize string
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotSize = r.URL.Query().Get("size")
		pageResponse(t, w, nil, 0)
	})

	_, err := catalog.List(context.Background(), -3, 0)
	require.NoError(t, err)
	assert.Equal(t, "0", gotPage)
	assert.Equal(t, "10", gotSize)
}

// TestGetProduct verifies single-product lookup by identifier.
//
// TestGetProduct 验证按标识符查询单个产品。
func TestGetProduct(t *testing.T) {
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/p42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "ok",
			"data":    model.Product{ID: "p42", Name: "Keyboard", Price: 59.99},
		})
	})

	p, err := catalog.Get(context.Background(), "p42")
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", p.Name)
	assert.Equal(t, 59.99, p.Price)
}

// TestSearchInCategoryFiltersLocally verifies that the keyword query is sent
// to the backend while the category filter is applied locally and
// case-insensitively, keeping the backend's totals.
//
// TestSearchInCategoryFiltersLocally 验证关键字查询发送到后端，
// 而类别过滤在本地不区分大小写地应用，并保留后端的总数。
func TestSearchInCategoryFiltersLocally(t *testing.T) {
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/search", r.URL.Path)
		assert.Equal(t, "figure", r.URL.Query().Get("keyword"))
		pageResponse(t, w, []model.Product{
			{ID: "p1", Name: "Anime Figure", Category: "anime"},
			{ID: "p2", Name: "Custom Figure", Category: "Custom"},
			{ID: "p3", Name: "Anime Figure Deluxe", Category: "ANIME"},
		}, 3)
	})

	page, err := catalog.SearchInCategory(context.Background(), "figure", "Anime", 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "p1", page.Content[0].ID)
	assert.Equal(t, "p3", page.Content[1].ID)
	// Totals still reflect the backend's unfiltered count
	// 总数仍反映后端未过滤的计数
	assert.Equal(t, int64(3), page.TotalElements)
	assert.False(t, page.Empty)
}

// TestSearchInCategoryEmptyCategory verifies that an empty category skips
// local filtering entirely.
//
// TestSearchInCategoryEmptyCategory 验证空类别完全跳过本地过滤。
func TestSearchInCategoryEmptyCategory(t *testing.T) {
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		pageResponse(t, w, []model.Product{
			{ID: "p1", Category: "anime"},
			{ID: "p2", Category: "custom"},
		}, 2)
	})

	page, err := catalog.SearchInCategory(context.Background(), "figure", "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
}

// TestByPriceRange verifies the price range query parameters.
//
// TestByPriceRange 验证价格区间查询参数。
func TestByPriceRange(t *testing.T) {
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/price-range", r.URL.Path)
		assert.Equal(t, "9.99", r.URL.Query().Get("minPrice"))
		assert.Equal(t, "100", r.URL.Query().Get("maxPrice"))
		pageResponse(t, w, nil, 0)
	})

	_, err := catalog.ByPriceRange(context.Background(), 9.99, 100, 0, 10)
	require.NoError(t, err)
}

// TestCreateRejectsInvalidRequest verifies that an invalid create request is
// rejected locally without reaching the backend.
//
// TestCreateRejectsInvalidRequest 验证无效的创建请求在本地被拒绝而不到达后端。
func TestCreateRejectsInvalidRequest(t *testing.T) {
	requests := 0
	catalog, _ := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		pageResponse(t, w, nil, 0)
	})

	_, err := catalog.Create(context.Background(), &model.CreateProductRequest{Name: ""})
	require.Error(t, err)
	assert.Zero(t, requests)
}

// TestRotatorStepsAndWraps verifies manual navigation wraps at both ends.
//
// TestRotatorStepsAndWraps 验证手动导航在两端都回绕。
func TestRotatorStepsAndWraps(t *testing.T) {
	products := []model.Product{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	r := NewRotator(products, time.Minute)

	assert.Equal(t, 0, r.Index().Get())
	r.Next()
	assert.Equal(t, 1, r.Index().Get())
	r.Next()
	r.Next()
	assert.Equal(t, 0, r.Index().Get())
	r.Prev()
	assert.Equal(t, 2, r.Index().Get())

	current, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "c", current.ID)
}

// TestRotatorPauseBlocksAdvance verifies that timed advancement is skipped
// while paused and resumes afterwards.
//
// TestRotatorPauseBlocksAdvance 验证暂停期间跳过定时前进，之后恢复。
func TestRotatorPauseBlocksAdvance(t *testing.T) {
	r := NewRotator([]model.Product{{ID: "a"}, {ID: "b"}}, time.Minute)

	r.Pause()
	r.advance(1)
	assert.Equal(t, 0, r.Index().Get())

	r.Resume()
	r.advance(1)
	assert.Equal(t, 1, r.Index().Get())
}

// TestRotatorEmpty verifies that a rotator without products reports no
// current slide and ignores navigation.
//
// TestRotatorEmpty 验证没有产品的轮播器报告无当前幻灯片并忽略导航。
func TestRotatorEmpty(t *testing.T) {
	r := NewRotator(nil, time.Minute)
	_, ok := r.Current()
	assert.False(t, ok)
	r.Next()
	assert.Equal(t, 0, r.Index().Get())
}

// TestRotatorStartStop verifies that Start and Stop manage the timer loop
// and tolerate repeated calls.
//
// TestRotatorStartStop 验证Start和Stop管理定时器循环并容忍重复调用。
func TestRotatorStartStop(t *testing.T) {
	r := NewRotator([]model.Product{{ID: "a"}, {ID: "b"}}, 5*time.Millisecond)
	r.Start()
	r.Start() // second Start is a no-op / 第二次Start为空操作

	changed := make(chan int, 16)
	cancel := r.Index().Subscribe(func(i int) { changed <- i })
	defer cancel()

	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("rotator never advanced")
	}

	r.Stop()
	r.Stop()
}
