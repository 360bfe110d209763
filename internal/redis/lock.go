package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireCustomerLock attempts to acquire the booking-submission lock for
// the given customer. Two concurrent submissions from the same customer
// would otherwise both read the same completed-booking count before either
// insert commits and both be granted the loyalty discount.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireCustomerLock(ctx context.Context, customerID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:customer:%s", customerID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseCustomerLock releases the booking-submission lock for the customer.
func (s *LockStore) ReleaseCustomerLock(ctx context.Context, customerID string) error {
	key := fmt.Sprintf("lock:customer:%s", customerID)

	return s.client.Del(ctx, key).Err()
}
