/*
Package errors provides semantic error types for the DocStore library.

The package defines common failure scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrEmptyRecord             = errors.New("empty record")
	    ErrMalformedIdentity       = errors.New("malformed identity")
	    ErrMissingCollectionConfig = errors.New("missing collection configuration")
	    ErrMissingCollectionName   = errors.New("missing collection name")
	    ErrStoreWrite              = errors.New("store write failed")
	    ErrStoreQuery              = errors.New("store query failed")
	    ErrInvalidInput            = errors.New("invalid input")
	)

Usage:

	// Check error type
	user, err := users.GetOrCreate(ctx, filter)
	if err != nil {
	    if errors.IsStoreQuery(err) {
	        // Store was unavailable; retry or surface to the caller
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewMalformedIdentityError("User", "not-a-uuid")
	err := errors.NewStoreWriteError("users", cause)

Configuration errors (missing collection setup) indicate a bug in the calling
code and always propagate from every operation. Store-level errors wrap the
underlying cause and support errors.Unwrap.
*/
package errors
