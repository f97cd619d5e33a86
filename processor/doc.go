/*
Package processor provides code generation functionality for DocStore.

The processor reads a YAML collection map and generates Go code that
registers each entity type's collection configuration.

Collection Map:

	collections:
	  User: users
	  Order: orders

Generated Code:

	func init() {
	    registry.RegisterCollection[User](registry.CollectionConfig{Name: "users"})
	    registry.RegisterCollection[Order](registry.CollectionConfig{Name: "orders"})
	}

This automation reduces boilerplate and keeps the collection map in one
reviewable file instead of scattered init() functions.
*/
package processor
