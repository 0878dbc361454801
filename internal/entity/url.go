// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a shortened URL together with
// its admin secret key and lifecycle state, and the sentinel errors shared by
// the repositories, the use case and the delivery layer.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrInvalidURL is returned when the target URL fails syntax validation.
	ErrInvalidURL = errors.New("invalid url")
	// ErrKeyExists is returned when a record with the same key or secret key already exists.
	ErrKeyExists = errors.New("key exists")
	// ErrURLNotFound is returned when no active URL matches the key or secret key.
	// Deactivated records are reported the same way as records that never existed.
	ErrURLNotFound = errors.New("url not found")
)

// URL represents a shortened URL.
type URL struct {
	ID        int64     // ID is the unique identifier of the URL in the store.
	TargetURL string    // TargetURL is the full URL that the key redirects to.
	Key       string    // Key is the public short key.
	SecretKey string    // SecretKey is the admin key granting read and deactivate rights.
	IsActive  bool      // IsActive is false once the URL has been deactivated.
	URLStats            // URLStats contains statistics about the URL.
	CreatedAt time.Time // CreatedAt is the timestamp when the URL was created.
	UpdatedAt time.Time // UpdatedAt is the timestamp when the URL was last updated.
}

// URLStats contains statistics related to a shortened URL.
type URLStats struct {
	Clicks int64 // Clicks is the number of successful redirects through the key.
}
