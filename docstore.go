/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"fmt"
	"sync"
)

// Storage is a higher-level interface that manages a set of Collection instances.
// Note that its methods are not generic; they use the empty interface (any) to store and retrieve Collections.
type Storage interface {
	// RegisterCollection registers a Collection under a given key (for example, "users" or "orders").
	RegisterCollection(key string, col any) error
	// GetCollection retrieves the registered Collection for a given key.
	// The caller must type-assert the returned value to the appropriate Collection type.
	GetCollection(key string) (any, error)
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu          sync.RWMutex
	collections map[string]any
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		collections: make(map[string]any),
	}
}

// RegisterCollection stores the provided Collection under the given key.
func (sm *storageManager) RegisterCollection(key string, col any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.collections[key]; exists {
		return fmt.Errorf("collection with key %q already registered", key)
	}
	sm.collections[key] = col
	return nil
}

// GetCollection retrieves the Collection associated with the given key.
func (sm *storageManager) GetCollection(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	col, exists := sm.collections[key]
	if !exists {
		return nil, fmt.Errorf("collection with key %q not found", key)
	}
	return col, nil
}
