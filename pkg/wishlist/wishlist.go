// Package wishlist implements the wishlist state holder. Unlike the cart,
// the wishlist never touches the backend: items live entirely in local
// storage under a single key and survive restarts through it. Persistence
// failures are logged and absorbed so the in-memory list keeps working.
//
// Package wishlist 实现愿望清单状态持有者。与购物车不同，
// 愿望清单从不接触后端：条目完全存在于本地存储的单个键下，并通过它在重启后保留。
// 持久化失败会被记录并吸收，使内存列表继续工作。
package wishlist

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/storefront/internal/localstore"
	"github.com/yourusername/storefront/pkg/model"
)

// storageKey is the local storage key holding the serialized wishlist.
// storageKey 是保存序列化愿望清单的本地存储键。
const storageKey = "wishlist_items"

// Wishlist holds the locally persisted list of saved products.
// All methods are safe for concurrent use.
//
// Wishlist 持有本地持久化的已保存产品列表。所有方法都可安全并发使用。
type Wishlist struct {
	mu     sync.Mutex
	items  []model.WishlistItem
	store  *localstore.Store
	logger logrus.FieldLogger
}

// New creates a Wishlist backed by the given store, loading any previously
// persisted items. A corrupt or missing entry yields an empty list.
//
// New 创建由给定存储支持的Wishlist，加载先前持久化的条目。
// 损坏或缺失的条目产生空列表。
func New(store *localstore.Store, logger logrus.FieldLogger) *Wishlist {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	w := &Wishlist{store: store, logger: logger}

	var items []model.WishlistItem
	found, err := store.GetJSON(storageKey, &items)
	if err != nil {
		logger.WithError(err).Warn("failed to load wishlist, starting empty")
	} else if found {
		w.items = items
	}
	return w
}

// Items returns a copy of the current wishlist.
//
// Items 返回当前愿望清单的副本。
func (w *Wishlist) Items() []model.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]model.WishlistItem, len(w.items))
	copy(out, w.items)
	return out
}

// Count returns the number of saved products.
//
// Count 返回已保存产品的数量。
func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Contains reports whether the product is on the wishlist.
//
// Contains 报告产品是否在愿望清单上。
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indexOf(productID) >= 0
}

// Add saves a product snapshot to the wishlist. Adding a product that is
// already saved is a no-op.
//
// Add 将产品快照保存到愿望清单。添加已保存的产品为空操作。
func (w *Wishlist) Add(p model.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.indexOf(p.ID) >= 0 {
		return
	}
	w.items = append(w.items, model.NewWishlistItem(p))
	w.persist()
}

// Remove drops a product from the wishlist. Removing an absent product is a
// no-op.
//
// Remove 从愿望清单中删除产品。删除不存在的产品为空操作。
func (w *Wishlist) Remove(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	i := w.indexOf(productID)
	if i < 0 {
		return
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	w.persist()
}

// Toggle adds the product when absent and removes it when present.
// It returns true when the product ends up on the wishlist.
//
// Toggle 在产品不存在时添加它，存在时删除它。
// 产品最终在愿望清单上时返回true。
func (w *Wishlist) Toggle(p model.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOf(p.ID); i >= 0 {
		w.items = append(w.items[:i], w.items[i+1:]...)
		w.persist()
		return false
	}
	w.items = append(w.items, model.NewWishlistItem(p))
	w.persist()
	return true
}

// Clear removes every saved product.
//
// Clear 删除每个已保存的产品。
func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
	w.persist()
}

// indexOf returns the position of a product or -1. Caller holds the lock.
//
// indexOf 返回产品的位置或-1。调用者持有锁。
func (w *Wishlist) indexOf(productID string) int {
	for i, item := range w.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// persist writes the current list to local storage. Failures are logged and
// absorbed; the in-memory state stays authoritative for this run.
//
// persist 将当前列表写入本地存储。失败会被记录并吸收；
// 内存状态在本次运行中保持权威。
func (w *Wishlist) persist() {
	items := w.items
	if items == nil {
		items = []model.WishlistItem{}
	}
	if err := w.store.SetJSON(storageKey, items); err != nil {
		w.logger.WithError(err).Warn("failed to persist wishlist")
	}
}
