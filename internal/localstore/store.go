// Package localstore provides the browser-localStorage stand-in backing the
// session and wishlist holders.
// Package localstore 提供支持会话和愿望清单持有者的浏览器localStorage替身。
//
// The store is a flat string-to-string map persisted as one JSON document on
// disk. Writes are synchronous and atomic (temp file + rename) so persisted
// state survives process restarts until explicitly removed, matching
// localStorage semantics. The store is safe for concurrent use; a single
// mutex suffices because the document is tiny and write rates are
// interaction-driven.
//
// 存储是一个扁平的字符串到字符串映射，作为一个JSON文档持久化到磁盘。
// 写入是同步且原子的（临时文件+重命名），因此持久化状态在进程重启后仍然存在，
// 直到显式删除，与localStorage语义一致。
package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yourusername/storefront/pkg/codec"
)

// Store is a file-backed key/value store with localStorage semantics.
// All values are strings; structured data is stored via SetJSON/GetJSON.
//
// Store 是具有localStorage语义的文件支持的键/值存储。
// 所有值都是字符串；结构化数据通过SetJSON/GetJSON存储。
type Store struct {
	path    string
	mu      sync.Mutex
	entries map[string]string
	codec   codec.Codec
}

// Open loads (or creates) a store at the given path. A missing file yields an
// empty store; an unreadable or corrupt file also yields an empty store, the
// same way a browser treats unparseable storage.
//
// Open 在给定路径加载（或创建）存储。缺失的文件产生空存储；
// 不可读或损坏的文件同样产生空存储，就像浏览器处理无法解析的存储一样。
//
// Parameters:
//   - path: Path of the backing JSON file
//
// Returns:
//   - *Store: The opened store
//   - error: An error if the parent directory cannot be created
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("localstore: path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create directory: %w", err)
	}

	s := &Store{
		path:    path,
		entries: make(map[string]string),
		codec:   codec.NewJSONCodec(true),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Missing file is a fresh store
		// 文件缺失即为新存储
		return s, nil
	}
	if err := s.codec.Unmarshal(data, &s.entries); err != nil {
		s.entries = make(map[string]string)
	}
	return s, nil
}

// Get returns the raw string stored under key.
//
// Get 返回存储在key下的原始字符串。
//
// Parameters:
//   - key: The storage key
//
// Returns:
//   - string: The stored value, or "" if absent
//   - bool: True if the key was present
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// Set stores a raw string under key and persists immediately.
//
// Set 将原始字符串存储在key下并立即持久化。
//
// Parameters:
//   - key: The storage key
//   - value: The value to store
//
// Returns:
//   - error: An error if persisting to disk failed
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return s.persistLocked()
}

// GetJSON decodes the value stored under key into out.
//
// GetJSON 将存储在key下的值解码到out中。
//
// Parameters:
//   - key: The storage key
//   - out: Pointer to the decode target
//
// Returns:
//   - bool: True if the key was present
//   - error: An error if decoding failed
func (s *Store) GetJSON(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := codec.DefaultCodec().Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("localstore: decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key, persisting immediately.
//
// SetJSON 编码v并将其存储在key下，立即持久化。
//
// Parameters:
//   - key: The storage key
//   - v: The value to encode and store
//
// Returns:
//   - error: An error if encoding or persisting failed
func (s *Store) SetJSON(key string, v interface{}) error {
	data, err := codec.DefaultCodec().Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %q: %w", key, err)
	}
	return s.Set(key, string(data))
}

// Remove deletes the entry under key and persists immediately.
// Removing an absent key is a no-op.
//
// Remove 删除key下的条目并立即持久化。删除不存在的键是空操作。
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.persistLocked()
}

// Clear removes every entry and persists immediately.
//
// Clear 删除所有条目并立即持久化。
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string)
	return s.persistLocked()
}

// persistLocked writes the whole document atomically. Callers must hold mu.
//
// persistLocked 原子地写入整个文档。调用者必须持有mu。
func (s *Store) persistLocked() error {
	data, err := s.codec.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("localstore: encode entries: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: replace file: %w", err)
	}
	return nil
}
