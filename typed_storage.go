/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"fmt"
	"reflect"
	"sync"
)

// TypedStorage provides type-safe access to Collection instances for a specific type T
type TypedStorage[T any] struct {
	mu          sync.RWMutex
	collections map[string]*Collection[T]
}

// NewTypedStorage creates a new TypedStorage for type T
func NewTypedStorage[T any]() *TypedStorage[T] {
	return &TypedStorage[T]{
		collections: make(map[string]*Collection[T]),
	}
}

// Register adds a collection with the given key
func (ts *TypedStorage[T]) Register(key string, col *Collection[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.collections[key]; exists {
		return fmt.Errorf("collection with key %q already registered", key)
	}

	ts.collections[key] = col
	return nil
}

// Get retrieves a collection by key
func (ts *TypedStorage[T]) Get(key string) (*Collection[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	col, exists := ts.collections[key]
	if !exists {
		return nil, fmt.Errorf("collection with key %q not found", key)
	}

	return col, nil
}

// Remove deletes a collection by key
func (ts *TypedStorage[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.collections[key]; !exists {
		return fmt.Errorf("collection with key %q not found", key)
	}

	delete(ts.collections, key)
	return nil
}

// List returns all registered collection keys
func (ts *TypedStorage[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.collections))
	for k := range ts.collections {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeStorage manages TypedStorage instances for different types
type MultiTypeStorage struct {
	mu       sync.RWMutex
	storages map[reflect.Type]interface{}
}

// NewMultiTypeStorage creates a new MultiTypeStorage
func NewMultiTypeStorage() *MultiTypeStorage {
	return &MultiTypeStorage{
		storages: make(map[reflect.Type]interface{}),
	}
}

// GetTypedStorage returns a TypedStorage for the specified type, creating it if necessary
func GetTypedStorage[T any](mts *MultiTypeStorage) *TypedStorage[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedStorage[T])
	}

	newStorage := NewTypedStorage[T]()
	mts.storages[typ] = newStorage
	return newStorage
}

// RegisterCollection is a convenience function to register a collection for type T
func RegisterCollection[T any](mts *MultiTypeStorage, key string, col *Collection[T]) error {
	storage := GetTypedStorage[T](mts)
	return storage.Register(key, col)
}

// GetCollection is a convenience function to get a collection for type T
func GetCollection[T any](mts *MultiTypeStorage, key string) (*Collection[T], error) {
	storage := GetTypedStorage[T](mts)
	return storage.Get(key)
}

// RemoveCollection is a convenience function to remove a collection for type T
func RemoveCollection[T any](mts *MultiTypeStorage, key string) error {
	storage := GetTypedStorage[T](mts)
	return storage.Remove(key)
}

// ListCollections is a convenience function to list all collections for type T
func ListCollections[T any](mts *MultiTypeStorage) []string {
	storage := GetTypedStorage[T](mts)
	return storage.List()
}
