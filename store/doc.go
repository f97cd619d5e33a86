/*
Package store defines the store-handle contract for DocStore's persistence layer.

The main interface is Store, which exposes the four collection primitives the
core operates through:

	type Store interface {
	    InsertOne(ctx context.Context, collection string, rec storemodels.Record) error
	    InsertMany(ctx context.Context, collection string, recs []storemodels.Record) error
	    FindOne(ctx context.Context, collection string, filter storemodels.Filter) (storemodels.Record, error)
	    FindMany(ctx context.Context, collection string, filter storemodels.Filter) ([]storemodels.Record, error)
	}

Implementations:
  - mongo: MongoDB implementation, the store whose conventions (string "_id",
    schemaless records) the record model follows
  - ddb: DynamoDB implementation mapping collections onto tables keyed by "_id"
  - mock: in-memory implementation with error injection for testing

Records and filters are untyped maps; typed conversion is the codec's job,
not the store's.
*/
package store
