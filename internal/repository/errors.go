// Package repository implements data access on top of MongoDB.  Each
// repository wraps one collection.  Sentinel errors defined here let
// handlers distinguish failure scenarios without inspecting driver
// errors: ErrNotFound maps to HTTP 404 and ErrEmailExists to 409.
package repository

import "errors"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering an email that is already
// taken.
var ErrEmailExists = errors.New("email already exists")
