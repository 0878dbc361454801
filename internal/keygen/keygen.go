// Package keygen mints the public short keys and the admin secret keys.
package keygen

import (
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the set of characters keys are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	DefaultKeyLength       = 5
	DefaultSecretKeyLength = 8
	DefaultMaxRetries      = 100
)

var (
	// ErrInvalidLength is returned when a non-positive key length is requested.
	ErrInvalidLength = errors.New("key length must be positive")
	// ErrKeyGenerationExhausted is returned when no free key was found within the retry budget.
	ErrKeyGenerationExhausted = errors.New("maximum retries exceeded for generating key")
)

// ExistsFunc reports whether a key is already taken, active or not.
type ExistsFunc func(ctx context.Context, key string) (bool, error)

// Generate returns a key of the given length. Characters are drawn uniformly
// and independently from Alphabet using crypto/rand.
func Generate(length int) (string, error) {
	const op = "keygen.Generate"

	if length <= 0 {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidLength)
	}

	key, err := gonanoid.Generate(Alphabet, length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate key: %w", op, err)
	}

	return key, nil
}

// GenerateUnique generates keys until exists reports a free one, giving up
// after maxRetries attempts.
func GenerateUnique(ctx context.Context, length, maxRetries int, exists ExistsFunc) (string, error) {
	const op = "keygen.GenerateUnique"

	for i := 0; i < maxRetries; i++ {
		key, err := Generate(length)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		taken, err := exists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("%s: failed to check key: %w", op, err)
		}

		if !taken {
			return key, nil
		}
	}

	return "", fmt.Errorf("%s: %w", op, ErrKeyGenerationExhausted)
}
