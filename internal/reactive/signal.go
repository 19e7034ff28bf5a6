// Package reactive provides the subscription primitive shared by the state
// holders. Each holder owns one or more signals; view-layer consumers read
// the current value and subscribe for changes, never mutating directly.
//
// Package reactive 提供状态持有者共享的订阅原语。
// 每个持有者拥有一个或多个信号；视图层消费者读取当前值并订阅变更，从不直接修改。
package reactive

import "sync"

// Signal holds one reactive value. Set replaces the value and notifies all
// subscribers synchronously; subscribers are copied before notification so
// a callback may subscribe or unsubscribe without deadlocking.
//
// Signal 保存一个响应式值。Set替换该值并同步通知所有订阅者；
// 通知前会复制订阅者列表，因此回调可以订阅或取消订阅而不会死锁。
type Signal[T any] struct {
	mu          sync.RWMutex
	value       T
	subscribers map[int]func(T)
	nextID      int
}

// NewSignal creates a signal holding the given initial value.
//
// NewSignal 创建一个保存给定初始值的信号。
//
// Parameters:
//   - initial: The initial value
//
// Returns:
//   - *Signal[T]: A new signal instance
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value:       initial,
		subscribers: make(map[int]func(T)),
	}
}

// Get returns the current value.
// This method is thread-safe and can be called concurrently.
//
// Get 返回当前值。此方法是线程安全的，可以并发调用。
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value and notifies all subscribers with it.
//
// Set 替换当前值并用它通知所有订阅者。
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	subscribers := make([]func(T), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock
	// 在锁外通知
	for _, fn := range subscribers {
		fn(value)
	}
}

// Subscribe registers a function called on every subsequent Set.
// The returned cancel function removes the subscription; calling it more
// than once is harmless.
//
// Subscribe 注册一个在之后每次Set时被调用的函数。
// 返回的取消函数移除订阅；多次调用它无害。
//
// Parameters:
//   - fn: The function to call with each new value
//
// Returns:
//   - func(): A cancel function that removes the subscription
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
