/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/suparena/docstore"
	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/registry"
	"github.com/suparena/docstore/store/mock"
	"github.com/suparena/docstore/storemodels"
)

type User struct {
	docstore.Document
	Name  string `store:"name"`
	Email string `store:"email"`
}

type Unregistered struct {
	docstore.Document
	Name string `store:"name"`
}

type NamelessUser struct {
	docstore.Document
	Name string `store:"name"`
}

func init() {
	registry.RegisterCollection[User](registry.CollectionConfig{Name: "users"})
	registry.RegisterCollection[NamelessUser](registry.CollectionConfig{})
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserCollection(s *mock.Store) *docstore.Collection[User] {
	return docstore.NewCollection[User](s).WithLogger(quiet())
}

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	users := newUserCollection(store)

	u := &User{Document: docstore.NewDocument(), Name: "Michael", Email: "michael@example.com"}
	saved, err := users.Save(ctx, u)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved != u {
		t.Error("Save should return the same instance")
	}

	found, err := users.Find(ctx, storemodels.Filter{"email": "michael@example.com"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found == nil {
		t.Fatal("Expected to find the saved user")
	}
	if !docstore.SameIdentity(found, u) {
		t.Errorf("Found user has identity %s, want %s", found.ID, u.ID)
	}
	if found.Name != "Michael" || found.Email != "michael@example.com" {
		t.Errorf("Found user lost fields: %+v", found)
	}
}

func TestSaveAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	users := newUserCollection(mock.New())

	u := &User{Name: "no id yet"}
	if _, err := users.Save(ctx, u); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Error("Save should assign a fresh identity to an entity without one")
	}
}

func TestSaveWriteFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	store := mock.New().WithInsertError(errors.New("store down"))
	users := newUserCollection(store)

	saved, err := users.Save(ctx, &User{Document: docstore.NewDocument(), Name: "x"})
	if err != nil {
		t.Fatalf("Save must not propagate store write failures, got %v", err)
	}
	if saved != nil {
		t.Error("Save must return no result on a write failure")
	}
}

func TestFindMissReturnsNil(t *testing.T) {
	ctx := context.Background()
	users := newUserCollection(mock.New())

	found, err := users.Find(ctx, storemodels.Filter{"email": "nobody@example.com"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil for a miss, got %+v", found)
	}
}

func TestFindQueryFailureIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := mock.New().WithQueryError(errors.New("store down"))
	users := newUserCollection(store)

	found, err := users.Find(ctx, storemodels.Filter{"email": "x"})
	if err != nil {
		t.Fatalf("Find must not propagate store query failures, got %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil on query failure, got %+v", found)
	}
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	users := newUserCollection(store)

	filter := storemodels.Filter{"name": "Michael", "email": "michael@example.com"}

	first, err := users.GetOrCreate(ctx, filter)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if first == nil {
		t.Fatal("GetOrCreate returned nothing")
	}
	if first.ID == uuid.Nil {
		t.Error("Created entity must have a freshly generated identity")
	}
	if first.Name != "Michael" || first.Email != "michael@example.com" {
		t.Errorf("Created entity lost filter fields: %+v", first)
	}
	if got := len(store.Records("users")); got != 1 {
		t.Fatalf("Expected exactly one stored record, got %d", got)
	}

	second, err := users.GetOrCreate(ctx, filter)
	if err != nil {
		t.Fatalf("Second GetOrCreate failed: %v", err)
	}
	if !docstore.SameIdentity(second, first) {
		t.Errorf("Second call must retrieve the first identity: got %s, want %s", second.ID, first.ID)
	}
	if got := len(store.Records("users")); got != 1 {
		t.Errorf("Second call must not create another record, have %d", got)
	}
}

func TestGetOrCreateQueryFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := mock.New().WithQueryError(errors.New("store down"))
	users := newUserCollection(store)

	_, err := users.GetOrCreate(ctx, storemodels.Filter{"name": "x"})
	if !dserrors.IsStoreQuery(err) {
		t.Errorf("Expected StoreQueryError, got %v", err)
	}
}

func TestGetOrCreateWriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	store := mock.New().WithInsertError(errors.New("store down"))
	users := newUserCollection(store)

	_, err := users.GetOrCreate(ctx, storemodels.Filter{"name": "x"})
	if !dserrors.IsStoreWrite(err) {
		t.Errorf("Expected StoreWriteError, got %v", err)
	}
}

func TestBulkInsertAndBulkFind(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	users := newUserCollection(store)

	batch := []*User{
		{Document: docstore.NewDocument(), Name: "a", Email: "a@example.com"},
		{Document: docstore.NewDocument(), Name: "dup", Email: "b@example.com"},
		{Document: docstore.NewDocument(), Name: "dup", Email: "c@example.com"},
		{Document: docstore.NewDocument(), Name: "dup", Email: "d@example.com"},
		{Document: docstore.NewDocument(), Name: "e", Email: "e@example.com"},
	}

	ok, err := users.BulkInsert(ctx, batch)
	if err != nil {
		t.Fatalf("BulkInsert failed: %v", err)
	}
	if !ok {
		t.Fatal("BulkInsert reported failure")
	}

	dups, err := users.BulkFind(ctx, storemodels.Filter{"name": "dup"})
	if err != nil {
		t.Fatalf("BulkFind failed: %v", err)
	}
	if len(dups) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(dups))
	}
	for _, d := range dups {
		if d.Name != "dup" {
			t.Errorf("Unexpected match: %+v", d)
		}
	}

	all, err := users.BulkFind(ctx, storemodels.Filter{})
	if err != nil {
		t.Fatalf("BulkFind failed: %v", err)
	}
	if len(all) != len(batch) {
		t.Errorf("Expected %d records, got %d", len(batch), len(all))
	}
}

func TestBulkInsertFailureAbortsBatch(t *testing.T) {
	ctx := context.Background()
	store := mock.New().WithInsertError(errors.New("store down"))
	users := newUserCollection(store)

	ok, err := users.BulkInsert(ctx, []*User{
		{Document: docstore.NewDocument(), Name: "a"},
		{Document: docstore.NewDocument(), Name: "b"},
	})
	if err != nil {
		t.Fatalf("BulkInsert must not propagate store write failures, got %v", err)
	}
	if ok {
		t.Error("BulkInsert must report failure")
	}
	if got := len(store.Records("users")); got != 0 {
		t.Errorf("Aborted batch must not leave partial writes, found %d", got)
	}
}

func TestBulkFindQueryFailureIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := mock.New().WithQueryError(errors.New("store down"))
	users := newUserCollection(store)

	out, err := users.BulkFind(ctx, storemodels.Filter{"name": "x"})
	if err != nil {
		t.Fatalf("BulkFind must not propagate store query failures, got %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Expected empty result, got %d", len(out))
	}
}

func TestBulkFindSkipsUndecodableRecords(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	users := newUserCollection(store)

	good := &User{Document: docstore.NewDocument(), Name: "dup", Email: "good@example.com"}
	if _, err := users.Save(ctx, good); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// A record with a corrupt identity sitting in the same collection.
	if err := store.InsertOne(ctx, "users", storemodels.Record{
		storemodels.IDKey: "not-a-uuid",
		"name":            "dup",
	}); err != nil {
		t.Fatalf("InsertOne failed: %v", err)
	}

	out, err := users.BulkFind(ctx, storemodels.Filter{"name": "dup"})
	if err != nil {
		t.Fatalf("BulkFind failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("Expected the corrupt record to be skipped, got %d results", len(out))
	}
	if !docstore.SameIdentity(out[0], good) {
		t.Errorf("Surviving record has identity %s, want %s", out[0].ID, good.ID)
	}
}

func TestConfigurationErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	store := mock.New()

	t.Run("MissingConfig", func(t *testing.T) {
		col := docstore.NewCollection[Unregistered](store).WithLogger(quiet())

		if _, err := col.Save(ctx, &Unregistered{}); !dserrors.IsMissingCollectionConfig(err) {
			t.Errorf("Save: expected MissingCollectionConfigError, got %v", err)
		}
		if _, err := col.Find(ctx, storemodels.Filter{}); !dserrors.IsMissingCollectionConfig(err) {
			t.Errorf("Find: expected MissingCollectionConfigError, got %v", err)
		}
		if _, err := col.GetOrCreate(ctx, storemodels.Filter{}); !dserrors.IsMissingCollectionConfig(err) {
			t.Errorf("GetOrCreate: expected MissingCollectionConfigError, got %v", err)
		}
		if _, err := col.BulkInsert(ctx, nil); !dserrors.IsMissingCollectionConfig(err) {
			t.Errorf("BulkInsert: expected MissingCollectionConfigError, got %v", err)
		}
		if _, err := col.BulkFind(ctx, storemodels.Filter{}); !dserrors.IsMissingCollectionConfig(err) {
			t.Errorf("BulkFind: expected MissingCollectionConfigError, got %v", err)
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		col := docstore.NewCollection[NamelessUser](store).WithLogger(quiet())

		if _, err := col.Save(ctx, &NamelessUser{}); !dserrors.IsMissingCollectionName(err) {
			t.Errorf("Save: expected MissingCollectionNameError, got %v", err)
		}
		if _, err := col.Find(ctx, storemodels.Filter{}); !dserrors.IsMissingCollectionName(err) {
			t.Errorf("Find: expected MissingCollectionNameError, got %v", err)
		}
	})
}

func TestSameIdentity(t *testing.T) {
	id := uuid.New()
	a := &User{Document: docstore.Document{ID: id}, Name: "a"}
	b := &User{Document: docstore.Document{ID: id}, Name: "completely different fields"}
	c := &User{Document: docstore.NewDocument(), Name: "a"}

	if !docstore.SameIdentity(a, b) {
		t.Error("Equality is identity-based; matching fields are irrelevant")
	}
	if docstore.SameIdentity(a, c) {
		t.Error("Different identities must not compare equal")
	}
}
