// SPDX-License-Identifier: MIT

package ring

import "errors"

// Sentinel errors of the ring package. Call sites wrap them with context via
// fmt.Errorf("...: %w", Err...); match with errors.Is.
var (
	// ErrUninitialized is reported when a runtime ring is used before a
	// Definition for its scalar type was registered.
	ErrUninitialized = errors.New("ring: operations not registered for type")

	// ErrAlreadySet is returned by Register when the scalar type already has
	// a Definition in the registry. The existing one is kept.
	ErrAlreadySet = errors.New("ring: operations already registered for type")

	// ErrIncompleteDefinition is returned by Register when a required
	// closure of the Definition is nil.
	ErrIncompleteDefinition = errors.New("ring: incomplete operations definition")

	// ErrNilRegistry is returned when a nil *Registry is passed.
	ErrNilRegistry = errors.New("ring: nil registry")

	// ErrInvalidModulus is returned by NewModular for n < 1.
	ErrInvalidModulus = errors.New("ring: modulus must be >= 1")
)
