// Package catalog implements product browsing against the backend catalog
// endpoints. This file implements the featured-product carousel rotation.
//
// Package catalog 实现针对后端目录端点的产品浏览。
// 本文件实现精选产品轮播的轮转。
package catalog

import (
	"sync"
	"time"

	"github.com/yourusername/storefront/internal/reactive"
	"github.com/yourusername/storefront/pkg/model"
)

// Rotator cycles through a fixed set of featured products on a timer.
// The active index is exposed as a signal so views can re-render on each
// advance. Rotation pauses while the pointer hovers the carousel and
// resumes when it leaves.
//
// Rotator 按定时器循环一组固定的精选产品。
// 活动索引作为信号暴露，以便视图在每次前进时重新渲染。
// 指针悬停在轮播上时轮转暂停，离开时恢复。
type Rotator struct {
	mu       sync.Mutex
	products []model.Product
	index    *reactive.Signal[int]
	interval time.Duration
	paused   bool
	running  bool
	stop     chan struct{}
}

// NewRotator creates a Rotator over the given products.
// The rotation does not start until Start is called.
//
// NewRotator 在给定产品上创建Rotator。调用Start之前轮转不会开始。
func NewRotator(products []model.Product, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Rotator{
		products: products,
		index:    reactive.NewSignal(0),
		interval: interval,
	}
}

// Index returns the signal carrying the active slide index.
//
// Index 返回携带活动幻灯片索引的信号。
func (r *Rotator) Index() *reactive.Signal[int] {
	return r.index
}

// Current returns the product at the active index.
// The second return value is false when there are no products.
//
// Current 返回活动索引处的产品。没有产品时第二个返回值为false。
func (r *Rotator) Current() (model.Product, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.products) == 0 {
		return model.Product{}, false
	}
	i := r.index.Get()
	if i < 0 || i >= len(r.products) {
		i = 0
	}
	return r.products[i], true
}

// Start begins automatic rotation. It is a no-op when already running or
// when there are fewer than two products to rotate through.
//
// Start 开始自动轮转。已在运行或可轮转产品少于两个时为空操作。
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running || len(r.products) < 2 {
		return
	}
	r.running = true
	r.stop = make(chan struct{})

	go func(stop chan struct{}) {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.advance(1)
			case <-stop:
				return
			}
		}
	}(r.stop)
}

// Stop halts automatic rotation. Safe to call more than once.
//
// Stop 停止自动轮转。可以安全地多次调用。
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	close(r.stop)
}

// Pause suspends automatic advancement without stopping the timer loop.
// Called when the pointer enters the carousel.
//
// Pause 暂停自动前进而不停止定时器循环。指针进入轮播时调用。
func (r *Rotator) Pause() {
	r.mu.Lock()
	r.paused = true
	r.mu.Unlock()
}

// Resume re-enables automatic advancement after a Pause.
// Called when the pointer leaves the carousel.
//
// Resume 在Pause之后重新启用自动前进。指针离开轮播时调用。
func (r *Rotator) Resume() {
	r.mu.Lock()
	r.paused = false
	r.mu.Unlock()
}

// Next manually advances to the next slide, wrapping at the end.
//
// Next 手动前进到下一张幻灯片，到结尾时回绕。
func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.step(1)
}

// Prev manually moves to the previous slide, wrapping at the start.
//
// Prev 手动移动到上一张幻灯片，到开头时回绕。
func (r *Rotator) Prev() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.step(-1)
}

// advance moves the index by delta unless rotation is paused.
//
// advance 除非轮转已暂停，否则将索引移动delta。
func (r *Rotator) advance(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.paused {
		return
	}
	r.step(delta)
}

// step moves the index by delta with wrap-around. Caller holds the lock.
//
// step 将索引移动delta并回绕。调用者持有锁。
func (r *Rotator) step(delta int) {
	n := len(r.products)
	if n == 0 {
		return
	}
	next := (r.index.Get() + delta + n) % n
	r.index.Set(next)
}
