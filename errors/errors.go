/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrEmptyRecord is returned when deserializing an empty or absent record
	ErrEmptyRecord = errors.New("empty record")

	// ErrMalformedIdentity is returned when a record's identity field cannot be parsed as a UUID
	ErrMalformedIdentity = errors.New("malformed identity")

	// ErrMissingCollectionConfig is returned when an entity type declares no collection configuration
	ErrMissingCollectionConfig = errors.New("missing collection configuration")

	// ErrMissingCollectionName is returned when a collection configuration omits the name field
	ErrMissingCollectionName = errors.New("missing collection name")

	// ErrStoreWrite is returned when a store-level write fails
	ErrStoreWrite = errors.New("store write failed")

	// ErrStoreQuery is returned when a store-level query fails
	ErrStoreQuery = errors.New("store query failed")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// EmptyRecordError represents an attempt to deserialize an empty or absent record
type EmptyRecordError struct {
	Type string
}

func (e *EmptyRecordError) Error() string {
	return fmt.Sprintf("cannot deserialize %s from an empty record", e.Type)
}

func (e *EmptyRecordError) Is(target error) bool {
	return target == ErrEmptyRecord
}

// MalformedIdentityError represents an identity field that is not a parseable UUID
type MalformedIdentityError struct {
	Type  string
	Value string
}

func (e *MalformedIdentityError) Error() string {
	return fmt.Sprintf("malformed identity %q for %s", e.Value, e.Type)
}

func (e *MalformedIdentityError) Is(target error) bool {
	return target == ErrMalformedIdentity
}

// MissingCollectionConfigError represents an entity type with no collection configuration
type MissingCollectionConfigError struct {
	Type string
}

func (e *MissingCollectionConfigError) Error() string {
	return fmt.Sprintf("%s declares no collection configuration", e.Type)
}

func (e *MissingCollectionConfigError) Is(target error) bool {
	return target == ErrMissingCollectionConfig
}

// MissingCollectionNameError represents a collection configuration without a name
type MissingCollectionNameError struct {
	Type string
}

func (e *MissingCollectionNameError) Error() string {
	return fmt.Sprintf("collection configuration for %s omits the collection name", e.Type)
}

func (e *MissingCollectionNameError) Is(target error) bool {
	return target == ErrMissingCollectionName
}

// StoreWriteError wraps a store-level write failure
type StoreWriteError struct {
	Collection string
	Err        error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write to collection %q failed: %v", e.Collection, e.Err)
}

func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// StoreQueryError wraps a store-level query failure
type StoreQueryError struct {
	Collection string
	Err        error
}

func (e *StoreQueryError) Error() string {
	return fmt.Sprintf("query on collection %q failed: %v", e.Collection, e.Err)
}

func (e *StoreQueryError) Is(target error) bool {
	return target == ErrStoreQuery
}

func (e *StoreQueryError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewEmptyRecordError creates a new EmptyRecordError
func NewEmptyRecordError(entityType string) error {
	return &EmptyRecordError{Type: entityType}
}

// NewMalformedIdentityError creates a new MalformedIdentityError
func NewMalformedIdentityError(entityType, value string) error {
	return &MalformedIdentityError{Type: entityType, Value: value}
}

// NewMissingCollectionConfigError creates a new MissingCollectionConfigError
func NewMissingCollectionConfigError(entityType string) error {
	return &MissingCollectionConfigError{Type: entityType}
}

// NewMissingCollectionNameError creates a new MissingCollectionNameError
func NewMissingCollectionNameError(entityType string) error {
	return &MissingCollectionNameError{Type: entityType}
}

// NewStoreWriteError creates a new StoreWriteError wrapping err
func NewStoreWriteError(collection string, err error) error {
	return &StoreWriteError{Collection: collection, Err: err}
}

// NewStoreQueryError creates a new StoreQueryError wrapping err
func NewStoreQueryError(collection string, err error) error {
	return &StoreQueryError{Collection: collection, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsEmptyRecord checks if an error is an empty record error
func IsEmptyRecord(err error) bool {
	return errors.Is(err, ErrEmptyRecord)
}

// IsMalformedIdentity checks if an error is a malformed identity error
func IsMalformedIdentity(err error) bool {
	return errors.Is(err, ErrMalformedIdentity)
}

// IsMissingCollectionConfig checks if an error is a missing collection configuration error
func IsMissingCollectionConfig(err error) bool {
	return errors.Is(err, ErrMissingCollectionConfig)
}

// IsMissingCollectionName checks if an error is a missing collection name error
func IsMissingCollectionName(err error) bool {
	return errors.Is(err, ErrMissingCollectionName)
}

// IsStoreWrite checks if an error is a store write error
func IsStoreWrite(err error) bool {
	return errors.Is(err, ErrStoreWrite)
}

// IsStoreQuery checks if an error is a store query error
func IsStoreQuery(err error) bool {
	return errors.Is(err, ErrStoreQuery)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
