/*
Package docstore provides a typed object-document mapping layer over
schemaless document stores, with type-safe CRUD operations, locally
generated UUID identities and pluggable storage backends.

Entities embed the Document base struct and declare their store field
names with tags; the collection each type lives in is registered once,
typically in init() or through generated code:

	type User struct {
	    docstore.Document
	    Name  string `store:"name"`
	    Email string `store:"email"`
	}

	func init() {
	    registry.RegisterCollection[User](registry.CollectionConfig{Name: "users"})
	}

Operations run through a Collection bound to a store handle that is
established once at startup and passed in explicitly:

	handle, _ := mongo.Connect(ctx, uri, "app", 5*time.Second)
	users := docstore.NewCollection[User](handle)

	u, _ := users.GetOrCreate(ctx, storemodels.Filter{
	    "name":  "Michael",
	    "email": "michael@example.com",
	})
	found, _ := users.Find(ctx, storemodels.Filter{"email": "michael@example.com"})

Key Features:
  - Type-safe operations using Go generics
  - Identity-based equality: 128-bit UUIDs generated in-process, never by the store
  - Multiple storage backend support (MongoDB, DynamoDB)
  - Semantic error types for better error handling
  - Availability-first reads: Find and BulkFind degrade to empty results
    when the store is unavailable, while GetOrCreate and BulkInsert signal
    failures that would otherwise corrupt caller invariants
  - Thread-safe collection management
  - In-memory mock store for testing

For more information, see the documentation at https://github.com/suparena/docstore
*/
package docstore
