package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/commerce-api/internal/domain"
)

const (
	customerKeyPrefix = "customer:"
	customerListKey   = "customers:all"
)

type cachedCustomerRepository struct {
	inner Crud[domain.Customer]
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedCustomerRepository decorates a customer store with a best-effort
// read-through Redis cache. Cache failures never fail the operation; the
// store stays authoritative.
func NewCachedCustomerRepository(inner Crud[domain.Customer], cache *redis.Client, ttl time.Duration) Crud[domain.Customer] {
	return &cachedCustomerRepository{inner: inner, cache: cache, ttl: ttl}
}

func (r *cachedCustomerRepository) Insert(ctx context.Context, customer *domain.Customer) error {
	if err := r.inner.Insert(ctx, customer); err != nil {
		return err
	}
	r.invalidate(ctx, customer.CustomerID)
	return nil
}

func (r *cachedCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if err := r.inner.Update(ctx, customer); err != nil {
		return err
	}
	r.invalidate(ctx, customer.CustomerID)
	return nil
}

func (r *cachedCustomerRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedCustomerRepository) Get(ctx context.Context, id string) (*domain.Customer, error) {
	if raw, err := r.cache.Get(ctx, customerKeyPrefix+id).Bytes(); err == nil {
		var customer domain.Customer
		if json.Unmarshal(raw, &customer) == nil {
			return &customer, nil
		}
	}

	customer, err := r.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(customer); err == nil {
		r.cache.Set(ctx, customerKeyPrefix+id, raw, r.ttl)
	}
	return customer, nil
}

func (r *cachedCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	if raw, err := r.cache.Get(ctx, customerListKey).Bytes(); err == nil {
		var customers []domain.Customer
		if json.Unmarshal(raw, &customers) == nil {
			return customers, nil
		}
	}

	customers, err := r.inner.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(customers); err == nil {
		r.cache.Set(ctx, customerListKey, raw, r.ttl)
	}
	return customers, nil
}

func (r *cachedCustomerRepository) invalidate(ctx context.Context, id string) {
	r.cache.Del(ctx, customerKeyPrefix+id, customerListKey)
}
