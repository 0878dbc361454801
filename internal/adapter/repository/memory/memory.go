// Package memory keeps URLs in process memory. Records are lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vadimbarashkov/shortener/internal/entity"
)

type URLRepository struct {
	mu       sync.Mutex
	nextID   int64
	urls     map[int64]*entity.URL
	byKey    map[string]int64
	bySecret map[string]int64
	nowFunc  func() time.Time
}

func NewURLRepository() *URLRepository {
	return &URLRepository{
		urls:     make(map[int64]*entity.URL),
		byKey:    make(map[string]int64),
		bySecret: make(map[string]int64),
		nowFunc:  time.Now,
	}
}

// Len returns the number of stored records, active or not.
func (r *URLRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.urls)
}

func (r *URLRepository) Save(_ context.Context, key, secretKey, targetURL string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Save"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[key]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrKeyExists)
	}
	if _, ok := r.bySecret[secretKey]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrKeyExists)
	}

	r.nextID++
	now := r.nowFunc()

	url := &entity.URL{
		ID:        r.nextID,
		TargetURL: targetURL,
		Key:       key,
		SecretKey: secretKey,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.urls[url.ID] = url
	r.byKey[key] = url.ID
	r.bySecret[secretKey] = url.ID

	return copyURL(url), nil
}

func (r *URLRepository) ExistsByKey(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byKey[key]
	return ok, nil
}

func (r *URLRepository) RetrieveActiveByKey(_ context.Context, key string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RetrieveActiveByKey"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.active(r.byKey, key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return copyURL(url), nil
}

func (r *URLRepository) RetrieveActiveBySecretKey(_ context.Context, secretKey string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RetrieveActiveBySecretKey"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.active(r.bySecret, secretKey)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return copyURL(url), nil
}

func (r *URLRepository) IncrementClicks(_ context.Context, id int64) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.IncrementClicks"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[id]
	if !ok || !url.IsActive {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	url.Clicks++
	url.UpdatedAt = r.nowFunc()

	return copyURL(url), nil
}

func (r *URLRepository) Deactivate(_ context.Context, id int64) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Deactivate"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[id]
	if !ok || !url.IsActive {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	url.IsActive = false
	url.UpdatedAt = r.nowFunc()

	return copyURL(url), nil
}

// active must be called with r.mu held.
func (r *URLRepository) active(index map[string]int64, k string) (*entity.URL, bool) {
	id, ok := index[k]
	if !ok {
		return nil, false
	}

	url := r.urls[id]
	return url, url.IsActive
}

func copyURL(url *entity.URL) *entity.URL {
	c := *url
	return &c
}
