/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storemodels

// IDKey is the store-native identity field name. The in-memory identity field
// is always renamed to this key on serialization and back on deserialization.
const IDKey = "_id"

// Record is the store's native schemaless representation of one entity:
// an untyped mapping of store field names to values. The identity value is
// carried as a string under IDKey; the store has no native identifier type.
type Record map[string]any

// Filter is an equality-only query: each entry requires the named store
// field to equal the given value.
type Filter map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
