// Package repository holds the storage error kinds shared by every store
// implementation.
package repository

import "errors"

var (
	// ErrDanglingReference reports a write that points at a row which no
	// longer exists (foreign key violation).
	ErrDanglingReference = errors.New("repository: dangling reference")

	// ErrDuplicate reports a write rejected by a uniqueness constraint.
	ErrDuplicate = errors.New("repository: duplicate key")
)
