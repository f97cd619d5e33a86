/*
Package storemodels defines the wire-level data model shared between the
DocStore core and its store backends.

A Record is the schemaless field-name-to-value mapping that document stores
exchange on reads and writes. A Filter is the equality-only subset of that
mapping used for lookups. Both are plain maps so that backends can convert
them to their own native forms (bson.M for MongoDB, attribute values for
DynamoDB) without an intermediate layer.
*/
package storemodels
