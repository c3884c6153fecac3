// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import "errors"

// ErrNotFound is the domain-specific error returned when a row does not
// resolve. Repositories return it instead of driver-level errors.
var ErrNotFound = errors.New("record not found")
