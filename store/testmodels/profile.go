package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/docstore"
	"github.com/suparena/docstore/registry"
)

// Profile is the entity used by the integration tests.
type Profile struct {
	docstore.Document

	// Display name of the profile.
	// Required: true
	Name string `store:"name"`

	// Contact email, unique per profile.
	// Required: true
	Email string `store:"email"`

	// Free-form description.
	Bio string `store:"bio"`

	// Timestamp when the profile was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `store:"createdAt"`

	// Timestamp when the profile was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `store:"updatedAt"`
}

func init() {
	registry.RegisterCollection[Profile](registry.CollectionConfig{Name: "profiles"})
}
