/*
Package registry manages per-type collection configuration for DocStore.

Every entity type must declare the collection it is stored in before any
store-touching operation runs. Registration is keyed by the Go type and is
typically done in init() functions or through generated code:

	registry.RegisterCollection[User](registry.CollectionConfig{Name: "users"})

Resolution happens on every operation and is never cached, so a type that
was never registered, or whose configuration omits the collection name,
fails fast and consistently with a semantic error from the errors package.

The registry is thread-safe.
*/
package registry
