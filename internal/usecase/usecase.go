package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortener/internal/entity"
	"github.com/vadimbarashkov/shortener/internal/keygen"
)

type urlRepository interface {
	Save(ctx context.Context, key, secretKey, targetURL string) (*entity.URL, error)
	ExistsByKey(ctx context.Context, key string) (bool, error)
	RetrieveActiveByKey(ctx context.Context, key string) (*entity.URL, error)
	RetrieveActiveBySecretKey(ctx context.Context, secretKey string) (*entity.URL, error)
	IncrementClicks(ctx context.Context, id int64) (*entity.URL, error)
	Deactivate(ctx context.Context, id int64) (*entity.URL, error)
}

// maxSaveAttempts bounds the inserts retried after a unique index conflict.
// Each attempt runs its own free key search of up to maxRetries lookups.
const maxSaveAttempts = 5

type Option func(*URLUseCase)

func WithKeyLength(n int) Option {
	return func(uc *URLUseCase) {
		uc.keyLength = n
	}
}

func WithSecretKeyLength(n int) Option {
	return func(uc *URLUseCase) {
		uc.secretKeyLength = n
	}
}

// WithMaxRetries bounds the free key search of a single insert attempt.
func WithMaxRetries(n int) Option {
	return func(uc *URLUseCase) {
		uc.maxRetries = n
	}
}

type URLUseCase struct {
	keyLength       int
	secretKeyLength int
	maxRetries      int
	urlRepo         urlRepository
	validate        *validator.Validate
}

func NewURLUseCase(urlRepo urlRepository, opts ...Option) *URLUseCase {
	uc := &URLUseCase{
		keyLength:       keygen.DefaultKeyLength,
		secretKeyLength: keygen.DefaultSecretKeyLength,
		maxRetries:      keygen.DefaultMaxRetries,
		urlRepo:         urlRepo,
		validate:        validator.New(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

func (uc *URLUseCase) ShortenURL(ctx context.Context, targetURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if err := uc.validate.Var(targetURL, "required,http_url"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	for i := 0; i < maxSaveAttempts; i++ {
		key, err := keygen.GenerateUnique(ctx, uc.keyLength, uc.maxRetries, uc.urlRepo.ExistsByKey)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate key: %w", op, err)
		}

		secretKey, err := keygen.Generate(uc.secretKeyLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate secret key: %w", op, err)
		}

		url, err := uc.urlRepo.Save(ctx, key, secretKey, targetURL)
		if err != nil {
			// Another request took the key after the check, or the secret collided.
			if errors.Is(err, entity.ErrKeyExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return url, nil
	}

	return nil, fmt.Errorf("%s: %w", op, keygen.ErrKeyGenerationExhausted)
}

// ResolveKey counts a click on the active URL behind key and returns it.
// A URL deactivated between the lookup and the increment is not counted.
func (uc *URLUseCase) ResolveKey(ctx context.Context, key string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveKey"

	url, err := uc.urlRepo.RetrieveActiveByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve key: %w", op, err)
	}

	url, err = uc.urlRepo.IncrementClicks(ctx, url.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count click: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) GetInfo(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetInfo"

	url, err := uc.urlRepo.RetrieveActiveBySecretKey(ctx, secretKey)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url info: %w", op, err)
	}

	return url, nil
}

// Revoke deactivates the URL owned by secretKey and returns its final state.
func (uc *URLUseCase) Revoke(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.Revoke"

	url, err := uc.urlRepo.RetrieveActiveBySecretKey(ctx, secretKey)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to find url: %w", op, err)
	}

	url, err = uc.urlRepo.Deactivate(ctx, url.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to deactivate url: %w", op, err)
	}

	return url, nil
}
