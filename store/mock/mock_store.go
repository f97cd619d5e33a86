/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the store handle for testing
package mock

import (
	"context"
	"reflect"
	"sync"

	"github.com/suparena/docstore/storemodels"
)

// Store is an in-memory implementation of store.Store for testing.
// Records are held per collection in insertion order. Write and query
// failures can be injected to exercise degraded paths.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]storemodels.Record
	insertError error
	queryError  error
}

// New creates a new mock Store
func New() *Store {
	return &Store{
		collections: make(map[string][]storemodels.Record),
	}
}

// WithInsertError makes InsertOne and InsertMany return an error
func (m *Store) WithInsertError(err error) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertError = err
	return m
}

// WithQueryError makes FindOne and FindMany return an error
func (m *Store) WithQueryError(err error) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
	return m
}

// InsertOne appends a copy of the record to the collection.
func (m *Store) InsertOne(ctx context.Context, collection string, rec storemodels.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertError != nil {
		return m.insertError
	}
	m.collections[collection] = append(m.collections[collection], rec.Clone())
	return nil
}

// InsertMany appends copies of all records, or nothing on injected failure.
func (m *Store) InsertMany(ctx context.Context, collection string, recs []storemodels.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertError != nil {
		return m.insertError
	}
	for _, rec := range recs {
		m.collections[collection] = append(m.collections[collection], rec.Clone())
	}
	return nil
}

// FindOne returns a copy of the first matching record, or nil.
func (m *Store) FindOne(ctx context.Context, collection string, filter storemodels.Filter) (storemodels.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.queryError != nil {
		return nil, m.queryError
	}
	for _, rec := range m.collections[collection] {
		if matches(rec, filter) {
			return rec.Clone(), nil
		}
	}
	return nil, nil
}

// FindMany returns copies of all matching records.
func (m *Store) FindMany(ctx context.Context, collection string, filter storemodels.Filter) ([]storemodels.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.queryError != nil {
		return nil, m.queryError
	}
	var out []storemodels.Record
	for _, rec := range m.collections[collection] {
		if matches(rec, filter) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// Records returns copies of everything stored in a collection, for assertions.
func (m *Store) Records(collection string) []storemodels.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]storemodels.Record, 0, len(m.collections[collection]))
	for _, rec := range m.collections[collection] {
		out = append(out, rec.Clone())
	}
	return out
}

// Reset drops all collections and clears injected errors.
func (m *Store) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections = make(map[string][]storemodels.Record)
	m.insertError = nil
	m.queryError = nil
}

func matches(rec storemodels.Record, filter storemodels.Filter) bool {
	for k, want := range filter {
		got, ok := rec[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
