/*
Package codec converts typed entities to and from the schemaless record
form exchanged with document stores.

Field mapping is declared with `store:"..."` struct tags. The field tagged
`store:"_id"` is the entity identity: a uuid.UUID that is always emitted
under the store's native identity key as a string and parsed back on the
way in. Fields tagged `store:"-"` never leave the process.

	type User struct {
	    docstore.Document
	    Name  string `store:"name"`
	    Email string `store:"email"`
	}

Marshal supports two independent options: ExcludeUnset drops zero-value
fields, UseFieldAliases (on by default) emits the tagged store names
instead of the Go field names. Unmarshal accepts records written under
either naming scheme.
*/
package codec
