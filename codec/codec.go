/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storemodels"
)

// MarshalOptions controls how an entity is rendered into a store record.
type MarshalOptions struct {
	// ExcludeUnset omits fields still at their zero value.
	ExcludeUnset bool

	// UseFieldAliases emits the store-native field names declared in
	// `store:"..."` tags instead of the Go field names.
	UseFieldAliases bool
}

// DefaultMarshalOptions returns the default rendering options:
// all fields included, store-native aliases on.
func DefaultMarshalOptions() MarshalOptions {
	return MarshalOptions{ExcludeUnset: false, UseFieldAliases: true}
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Marshal renders an entity into the store's native record form.
//
// The identity field (tagged `store:"_id"`) is always emitted under the
// store's identity key as a string, regardless of options. Any other
// uuid.UUID value is likewise coerced to its string form; the store has
// no native identifier type.
func Marshal(entity any, opts MarshalOptions) (storemodels.Record, error) {
	rv := reflect.ValueOf(entity)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.NewValidationError("entity", "cannot marshal a nil entity")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.NewValidationError("entity", fmt.Sprintf("cannot marshal %T, want a struct", entity))
	}

	rec := make(storemodels.Record)
	if err := marshalFields(rv, opts, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func marshalFields(rv reflect.Value, opts MarshalOptions, rec storemodels.Record) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := marshalFields(fv, opts, rec); err != nil {
				return err
			}
			continue
		}

		tag := field.Tag.Get("store")
		if tag == "-" {
			continue
		}

		if tag == storemodels.IDKey {
			id, ok := fv.Interface().(uuid.UUID)
			if !ok {
				return errors.NewValidationError(field.Name, "identity field must be a uuid.UUID")
			}
			rec[storemodels.IDKey] = id.String()
			continue
		}

		if opts.ExcludeUnset && fv.IsZero() {
			continue
		}

		name := field.Name
		if opts.UseFieldAliases && tag != "" {
			name = tag
		}

		if u, ok := fv.Interface().(uuid.UUID); ok {
			rec[name] = u.String()
			continue
		}
		rec[name] = fv.Interface()
	}
	return nil
}

// Unmarshal populates an entity from the store's native record form.
//
// An empty or absent record yields an EmptyRecordError. The store identity
// key must hold a string parseable as a UUID; anything else yields a
// MalformedIdentityError. Remaining record fields are matched by store
// alias first, Go field name second; record keys with no matching field
// are ignored.
func Unmarshal(rec storemodels.Record, entity any) error {
	rv := reflect.ValueOf(entity)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.NewValidationError("entity", fmt.Sprintf("cannot unmarshal into %T, want a non-nil pointer", entity))
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.NewValidationError("entity", fmt.Sprintf("cannot unmarshal into %T, want a pointer to struct", entity))
	}
	typeName := rv.Type().Name()

	if len(rec) == 0 {
		return errors.NewEmptyRecordError(typeName)
	}

	raw, ok := rec[storemodels.IDKey]
	if !ok {
		return errors.NewMalformedIdentityError(typeName, "<missing>")
	}
	s, ok := raw.(string)
	if !ok {
		return errors.NewMalformedIdentityError(typeName, fmt.Sprint(raw))
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return errors.NewMalformedIdentityError(typeName, s)
	}

	return unmarshalFields(rv, rec, id, typeName)
}

func unmarshalFields(rv reflect.Value, rec storemodels.Record, id uuid.UUID, typeName string) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := unmarshalFields(fv, rec, id, typeName); err != nil {
				return err
			}
			continue
		}

		tag := field.Tag.Get("store")
		if tag == "-" {
			continue
		}

		if tag == storemodels.IDKey {
			if _, ok := fv.Interface().(uuid.UUID); !ok {
				return errors.NewValidationError(field.Name, "identity field must be a uuid.UUID")
			}
			fv.Set(reflect.ValueOf(id))
			continue
		}

		val, ok := rec[tag]
		if !ok || tag == "" {
			val, ok = rec[field.Name]
		}
		if !ok {
			continue
		}

		if err := assign(fv, val); err != nil {
			return errors.NewValidationError(field.Name, fmt.Sprintf("cannot assign %T: %v", val, err))
		}
	}
	return nil
}

// assign coerces a record value into a destination field. Coercions cover
// direct assignment, string forms of TextUnmarshaler types (uuid.UUID,
// strfmt.DateTime and friends), numeric widening and same-kind conversions
// such as time.Time into strfmt.DateTime.
func assign(dst reflect.Value, val any) error {
	if val == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	vv := reflect.ValueOf(val)
	if vv.Type().AssignableTo(dst.Type()) {
		dst.Set(vv)
		return nil
	}

	if dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), val)
	}

	if s, ok := val.(string); ok && dst.CanAddr() && dst.Addr().Type().Implements(textUnmarshalerType) {
		return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}

	if convertible(vv.Type(), dst.Type()) {
		dst.Set(vv.Convert(dst.Type()))
		return nil
	}

	return fmt.Errorf("value of type %s is not assignable to %s", vv.Type(), dst.Type())
}

// convertible allows reflect conversions only between numeric kinds or
// between identical kinds. Go's reflect would happily convert an int into
// a string as a rune; that is never what a store record means.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if isNumeric(from.Kind()) && isNumeric(to.Kind()) {
		return true
	}
	return from.Kind() == to.Kind()
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
