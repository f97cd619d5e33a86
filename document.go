/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import "github.com/google/uuid"

// Document is the base struct every storable entity embeds. It carries the
// entity's identity: a 128-bit UUID generated locally, never by the store.
//
//	type User struct {
//	    docstore.Document
//	    Name  string `store:"name"`
//	    Email string `store:"email"`
//	}
//
// The `store:"_id"` tag marks the identity for the codec; it is always
// written under the store's native identity key as a string.
type Document struct {
	ID uuid.UUID `store:"_id"`
}

// NewDocument returns a Document with a freshly generated identity.
// Entities constructed without one get an identity on first Save.
func NewDocument() Document {
	return Document{ID: uuid.New()}
}

// DocumentID returns the entity's identity.
func (d *Document) DocumentID() uuid.UUID {
	return d.ID
}

// SetDocumentID replaces the entity's identity. Intended for deserialization
// and for callers that must construct an entity with a known identity;
// an entity's identity must not change once it has been persisted.
func (d *Document) SetDocumentID(id uuid.UUID) {
	d.ID = id
}

// Entity is implemented by every type that embeds Document.
type Entity interface {
	DocumentID() uuid.UUID
	SetDocumentID(uuid.UUID)
}

// SameIdentity reports whether two entities share an identity. Equality is
// identity-based, not field-based; the type parameter restricts the
// comparison to entities of the same concrete type.
func SameIdentity[T Entity](a, b T) bool {
	return a.DocumentID() == b.DocumentID()
}
