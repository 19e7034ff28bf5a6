// Package wishlist implements the wishlist state holder.
// This file contains tests for the local-only wishlist behavior.
//
// Package wishlist 实现愿望清单状态持有者。
// 本文件包含仅本地愿望清单行为的测试。
package wishlist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/storefront/internal/localstore"
	"github.com/yourusername/storefront/pkg/model"
)

func newTestStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.json")
	store, err := localstore.Open(path)
	require.NoError(t, err)
	return store, path
}

// TestAddIsIdempotent verifies that adding a product twice keeps a single
// entry.
//
// TestAddIsIdempotent 验证两次添加同一产品只保留一个条目。
func TestAddIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	w := New(store, nil)

	p := model.Product{ID: "p1", Name: "Poster", Price: 12.5}
	w.Add(p)
	w.Add(p)

	assert.Equal(t, 1, w.Count())
	assert.True(t, w.Contains("p1"))
}

// TestToggleFlipsMembership verifies that Toggle alternates membership and
// reports the resulting state.
//
// TestToggleFlipsMembership 验证Toggle交替成员资格并报告结果状态。
func TestToggleFlipsMembership(t *testing.T) {
	store, _ := newTestStore(t)
	w := New(store, nil)
	p := model.Product{ID: "p1", Name: "Poster"}

	assert.True(t, w.Toggle(p))
	assert.True(t, w.Contains("p1"))

	assert.False(t, w.Toggle(p))
	assert.False(t, w.Contains("p1"))
	assert.Equal(t, 0, w.Count())
}

// TestRemoveAbsentIsNoop verifies that removing a product not on the list
// changes nothing.
//
// TestRemoveAbsentIsNoop 验证删除不在列表上的产品不改变任何内容。
func TestRemoveAbsentIsNoop(t *testing.T) {
	store, _ := newTestStore(t)
	w := New(store, nil)
	w.Add(model.Product{ID: "p1"})

	w.Remove("missing")
	assert.Equal(t, 1, w.Count())
}

// TestPersistsAcrossRestart verifies that a new holder over the same store
// sees the previously saved items.
//
// TestPersistsAcrossRestart 验证同一存储上的新持有者能看到先前保存的条目。
func TestPersistsAcrossRestart(t *testing.T) {
	store, path := newTestStore(t)
	w := New(store, nil)
	w.Add(model.Product{ID: "p1", Name: "Poster", Price: 12.5, ImageURL: "/img/p1.png"})
	w.Add(model.Product{ID: "p2", Name: "Figure", Price: 30})

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	w2 := New(reopened, nil)

	require.Equal(t, 2, w2.Count())
	items := w2.Items()
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "Poster", items[0].ProductName)
	assert.Equal(t, 12.5, items[0].Price)
	assert.Equal(t, "p2", items[1].ProductID)
}

// TestClear verifies that Clear empties the list and the cleared state
// persists.
//
// TestClear 验证Clear清空列表并且清空状态会持久化。
func TestClear(t *testing.T) {
	store, path := newTestStore(t)
	w := New(store, nil)
	w.Add(model.Product{ID: "p1"})
	w.Clear()
	assert.Equal(t, 0, w.Count())

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, New(reopened, nil).Count())
}

// TestItemsReturnsCopy verifies that mutating the returned slice does not
// affect the holder.
//
// TestItemsReturnsCopy 验证修改返回的切片不影响持有者。
func TestItemsReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	w := New(store, nil)
	w.Add(model.Product{ID: "p1", Name: "Poster"})

	items := w.Items()
	items[0].ProductID = "mutated"
	assert.True(t, w.Contains("p1"))
}
