/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/suparena/docstore/codec"
	"github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/registry"
	"github.com/suparena/docstore/store"
	"github.com/suparena/docstore/storemodels"
)

// Collection provides the typed operation set for one entity type T against
// a store handle. T must embed Document and have a collection registered via
// registry.RegisterCollection; the collection name is resolved on every
// operation so a misconfigured type fails fast and consistently.
//
// Error semantics follow two regimes. Save, Find and BulkFind favor
// availability: a transient store failure degrades to a nil/empty result
// and is only logged. GetOrCreate and BulkInsert favor correctness
// signaling, since a silently wrong result there would mean duplicate
// creation or a partially applied batch. Configuration errors always
// propagate from every operation.
type Collection[T any] struct {
	store store.Store
	log   *slog.Logger
	opts  codec.MarshalOptions
}

// NewCollection binds an entity type to a store handle. The handle is
// established once at process start and passed in explicitly; Collection
// holds no other state and is safe for concurrent use.
func NewCollection[T any](s store.Store) *Collection[T] {
	return &Collection[T]{
		store: s,
		log:   slog.Default(),
		opts:  codec.DefaultMarshalOptions(),
	}
}

// WithLogger sets the logger used to report degraded store failures.
func (c *Collection[T]) WithLogger(log *slog.Logger) *Collection[T] {
	c.log = log
	return c
}

// WithMarshalOptions overrides the serialization options used on writes.
func (c *Collection[T]) WithMarshalOptions(opts codec.MarshalOptions) *Collection[T] {
	c.opts = opts
	return c
}

// Save persists the entity, assigning a fresh identity if it has none yet.
// On success it returns the same instance. A store write failure is
// non-fatal: it is logged and Save returns (nil, nil). Configuration and
// serialization errors propagate.
func (c *Collection[T]) Save(ctx context.Context, entity *T) (*T, error) {
	name, err := registry.ResolveCollectionName[T]()
	if err != nil {
		return nil, err
	}
	ent, err := asEntity(entity)
	if err != nil {
		return nil, err
	}
	if ent.DocumentID() == uuid.Nil {
		ent.SetDocumentID(uuid.New())
	}

	rec, err := codec.Marshal(entity, c.opts)
	if err != nil {
		return nil, err
	}
	if err := c.store.InsertOne(ctx, name, rec); err != nil {
		c.log.Error("save failed", "collection", name, "id", ent.DocumentID(), "error", err)
		return nil, nil
	}
	return entity, nil
}

// GetOrCreate returns the first entity matching the filter, or constructs
// one from the filter fields with a fresh identity and persists it. Store
// failures on either the lookup or the insert are fatal and propagate;
// returning a fabricated result here would let callers create duplicates.
//
// Two concurrent calls with the same filter may both observe a miss and
// both create; there is no atomic upsert underneath.
func (c *Collection[T]) GetOrCreate(ctx context.Context, filter storemodels.Filter) (*T, error) {
	name, err := registry.ResolveCollectionName[T]()
	if err != nil {
		return nil, err
	}

	rec, err := c.store.FindOne(ctx, name, filter)
	if err != nil {
		return nil, errors.NewStoreQueryError(name, err)
	}
	if rec != nil {
		out := new(T)
		if err := codec.Unmarshal(rec, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	seed := make(storemodels.Record, len(filter)+1)
	for k, v := range filter {
		seed[k] = v
	}
	seed[storemodels.IDKey] = uuid.New().String()

	out := new(T)
	if err := codec.Unmarshal(seed, out); err != nil {
		return nil, err
	}
	created, err := codec.Marshal(out, c.opts)
	if err != nil {
		return nil, err
	}
	if err := c.store.InsertOne(ctx, name, created); err != nil {
		return nil, errors.NewStoreWriteError(name, err)
	}
	return out, nil
}

// BulkInsert persists an ordered batch of entities. Any write failure
// aborts the whole batch and yields false; there is no partial-success
// reporting. Configuration and serialization errors propagate.
func (c *Collection[T]) BulkInsert(ctx context.Context, entities []*T) (bool, error) {
	name, err := registry.ResolveCollectionName[T]()
	if err != nil {
		return false, err
	}

	recs := make([]storemodels.Record, 0, len(entities))
	for _, entity := range entities {
		ent, err := asEntity(entity)
		if err != nil {
			return false, err
		}
		if ent.DocumentID() == uuid.Nil {
			ent.SetDocumentID(uuid.New())
		}
		rec, err := codec.Marshal(entity, c.opts)
		if err != nil {
			return false, err
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return true, nil
	}

	if err := c.store.InsertMany(ctx, name, recs); err != nil {
		c.log.Error("bulk insert failed", "collection", name, "count", len(recs), "error", err)
		return false, nil
	}
	return true, nil
}

// Find returns the first entity matching the filter, or nil when nothing
// matches. Store failures and undecodable records are treated as not
// found; only configuration errors propagate.
func (c *Collection[T]) Find(ctx context.Context, filter storemodels.Filter) (*T, error) {
	name, err := registry.ResolveCollectionName[T]()
	if err != nil {
		return nil, err
	}

	rec, err := c.store.FindOne(ctx, name, filter)
	if err != nil {
		c.log.Warn("find failed", "collection", name, "error", err)
		return nil, nil
	}
	if rec == nil {
		return nil, nil
	}
	out := new(T)
	if err := codec.Unmarshal(rec, out); err != nil {
		c.log.Warn("find decode failed", "collection", name, "error", err)
		return nil, nil
	}
	return out, nil
}

// BulkFind returns all entities matching the filter. A store failure
// yields an empty result; records that fail to deserialize are skipped
// individually. Only configuration errors propagate.
func (c *Collection[T]) BulkFind(ctx context.Context, filter storemodels.Filter) ([]*T, error) {
	name, err := registry.ResolveCollectionName[T]()
	if err != nil {
		return nil, err
	}

	recs, err := c.store.FindMany(ctx, name, filter)
	if err != nil {
		c.log.Warn("bulk find failed", "collection", name, "error", err)
		return nil, nil
	}

	out := make([]*T, 0, len(recs))
	for _, rec := range recs {
		entity := new(T)
		if err := codec.Unmarshal(rec, entity); err != nil {
			c.log.Debug("skipping undecodable record", "collection", name, "error", err)
			continue
		}
		out = append(out, entity)
	}
	return out, nil
}

func asEntity[T any](entity *T) (Entity, error) {
	ent, ok := any(entity).(Entity)
	if !ok {
		return nil, errors.NewValidationError("entity", fmt.Sprintf("%T does not embed docstore.Document", entity))
	}
	return ent, nil
}
