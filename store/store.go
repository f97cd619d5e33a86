/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"context"

	"github.com/suparena/docstore/storemodels"
)

// Store is the handle through which all collection operations are issued.
//
// A Store is established once at process start and passed to the components
// that need it; it is safe for concurrent use. Implementations perform no
// retries and no caching — transient failures surface as errors and the
// caller decides how to degrade.
type Store interface {
	// InsertOne writes a single record into the named collection.
	InsertOne(ctx context.Context, collection string, rec storemodels.Record) error

	// InsertMany writes an ordered batch of records into the named collection.
	// Any failure aborts the batch; there is no partial-success reporting.
	InsertMany(ctx context.Context, collection string, recs []storemodels.Record) error

	// FindOne returns the first record matching the equality filter,
	// or nil with a nil error when nothing matches.
	FindOne(ctx context.Context, collection string, filter storemodels.Filter) (storemodels.Record, error)

	// FindMany returns all records matching the equality filter.
	FindMany(ctx context.Context, collection string, filter storemodels.Filter) ([]storemodels.Record, error)
}
