package domain

import "errors"

// ErrNoDocument is returned when no root document can be located in a
// directory: no well-known candidate name exists and the extension scan
// found zero or more than one match.
var ErrNoDocument = errors.New("no document found")

// ErrCacheMiss is returned by tree caches when a key is absent or expired.
var ErrCacheMiss = errors.New("tree not found in cache")
