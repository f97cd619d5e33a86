/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/docstore/errors"
)

// CollectionConfig declares the storage collection for an entity type.
type CollectionConfig struct {
	// Name is the collection (table) the type is stored in. Required.
	Name string `yaml:"name"`
}

var (
	collectionRegistry = make(map[reflect.Type]CollectionConfig)
	mu                 sync.RWMutex
)

// RegisterCollection associates a Go type T with its collection configuration.
// Registering the same type again replaces the previous configuration.
func RegisterCollection[T any](cfg CollectionConfig) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	collectionRegistry[t] = cfg
}

// GetCollectionConfig retrieves the collection configuration for type T, if any.
func GetCollectionConfig[T any]() (CollectionConfig, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	cfg, ok := collectionRegistry[t]
	return cfg, ok
}

// ResolveCollectionName returns the collection name for type T.
//
// Resolution is performed on every call, never cached, so a misconfigured
// type fails the same way on every operation that touches the store.
// A type with no registered configuration yields a MissingCollectionConfigError;
// a configuration with an empty Name yields a MissingCollectionNameError.
func ResolveCollectionName[T any]() (string, error) {
	var zero T
	cfg, ok := GetCollectionConfig[T]()
	if !ok {
		return "", errors.NewMissingCollectionConfigError(reflect.TypeOf(zero).Name())
	}
	if cfg.Name == "" {
		return "", errors.NewMissingCollectionNameError(reflect.TypeOf(zero).Name())
	}
	return cfg.Name, nil
}
