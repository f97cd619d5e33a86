/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mongo implements the DocStore store handle on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suparena/docstore/storemodels"
)

// Store issues collection operations against a single MongoDB database.
type Store struct {
	db *mongo.Database
}

// Connect establishes a client, pings the server and returns a Store bound
// to the named database. Call once at process start; the caller owns the
// client lifecycle via Client().Disconnect.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{db: client.Database(database)}, nil
}

// NewStore wraps an already-connected database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Client exposes the underlying client, mainly for Disconnect at shutdown.
func (s *Store) Client() *mongo.Client {
	return s.db.Client()
}

// InsertOne writes a single record.
func (s *Store) InsertOne(ctx context.Context, collection string, rec storemodels.Record) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, bson.M(rec))
	if err != nil {
		return fmt.Errorf("insert one into %q: %w", collection, err)
	}
	return nil
}

// InsertMany writes an ordered batch. Ordered inserts stop at the first
// failure, matching the all-or-nothing batch contract.
func (s *Store) InsertMany(ctx context.Context, collection string, recs []storemodels.Record) error {
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(recs))
	for i, rec := range recs {
		docs[i] = bson.M(rec)
	}
	_, err := s.db.Collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("insert many into %q: %w", collection, err)
	}
	return nil
}

// FindOne returns the first matching record, or nil when nothing matches.
func (s *Store) FindOne(ctx context.Context, collection string, filter storemodels.Filter) (storemodels.Record, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M(filter)).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %q: %w", collection, err)
	}
	return normalizeRecord(raw), nil
}

// FindMany returns all matching records.
func (s *Store) FindMany(ctx context.Context, collection string, filter storemodels.Filter) ([]storemodels.Record, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter))
	if err != nil {
		return nil, fmt.Errorf("find in %q: %w", collection, err)
	}
	defer cur.Close(ctx)

	var out []storemodels.Record
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode record from %q: %w", collection, err)
		}
		out = append(out, normalizeRecord(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor on %q: %w", collection, err)
	}
	return out, nil
}

// normalizeRecord converts BSON decode artifacts back into plain Go values
// so records look the same regardless of backend.
func normalizeRecord(raw bson.M) storemodels.Record {
	rec := make(storemodels.Record, len(raw))
	for k, v := range raw {
		rec[k] = normalizeValue(v)
	}
	return rec
}

func normalizeValue(v any) any {
	switch tv := v.(type) {
	case primitive.DateTime:
		return tv.Time().UTC()
	case primitive.ObjectID:
		return tv.Hex()
	case primitive.M:
		m := make(map[string]any, len(tv))
		for k, e := range tv {
			m[k] = normalizeValue(e)
		}
		return m
	case primitive.D:
		m := make(map[string]any, len(tv))
		for _, e := range tv {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case primitive.A:
		a := make([]any, len(tv))
		for i, e := range tv {
			a[i] = normalizeValue(e)
		}
		return a
	default:
		return v
	}
}
