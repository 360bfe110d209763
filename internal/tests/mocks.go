package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount             int32
	ListCompletedSinceCallCount int32

	// Error injection
	CreateError error
	ListError   error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *booking
	m.bookings[booking.ID] = &copy
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	sortNewestFirst(result)
	return result, nil
}

func (m *MockBookingRepository) GetByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			copy := *b
			result = append(result, &copy)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (m *MockBookingRepository) ListCompletedSince(ctx context.Context, customerID string, since time.Time) ([]*domain.Booking, error) {
	atomic.AddInt32(&m.ListCompletedSinceCallCount, 1)
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.CustomerID == customerID && b.Status == domain.BookingStatusCompleted && b.CreatedAt.After(since) {
			copy := *b
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	return nil
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.PaymentStatus = status
	return nil
}

// GetBooking returns a stored booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// Count returns the number of stored bookings.
func (m *MockBookingRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// atomic32 reads a mock call counter.
func atomic32(v *int32) int32 {
	return atomic.LoadInt32(v)
}

func sortNewestFirst(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

// ──────────────────────────────────────────────
// MOCK TIER PROVIDER
// ──────────────────────────────────────────────

// MockTierProvider is a mock implementation of TierProviderInterface.
type MockTierProvider struct {
	mu    sync.RWMutex
	tiers map[string]*domain.ServiceTier

	GetTierCallCount int32
	GetTierError     error
}

// NewMockTierProvider creates a new mock tier provider.
func NewMockTierProvider() *MockTierProvider {
	return &MockTierProvider{
		tiers: make(map[string]*domain.ServiceTier),
	}
}

// AddTier adds a tier to the mock provider.
func (m *MockTierProvider) AddTier(tier *domain.ServiceTier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers[tier.ID] = tier
}

func (m *MockTierProvider) GetTier(ctx context.Context, id string) (*domain.ServiceTier, error) {
	atomic.AddInt32(&m.GetTierCallCount, 1)
	if m.GetTierError != nil {
		return nil, m.GetTierError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tier, ok := m.tiers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *tier
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK TIER REPOSITORY
// ──────────────────────────────────────────────

// MockTierRepository is a mock implementation of TierRepository.
type MockTierRepository struct {
	mu    sync.RWMutex
	tiers map[string]*domain.ServiceTier

	CreateError error
	UpdateError error
}

// NewMockTierRepository creates a new mock tier repository.
func NewMockTierRepository() *MockTierRepository {
	return &MockTierRepository{
		tiers: make(map[string]*domain.ServiceTier),
	}
}

// AddTier adds a tier to the mock repository.
func (m *MockTierRepository) AddTier(tier *domain.ServiceTier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers[tier.ID] = tier
}

func (m *MockTierRepository) Create(ctx context.Context, tier *domain.ServiceTier) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *tier
	m.tiers[tier.ID] = &copy
	return nil
}

func (m *MockTierRepository) GetByID(ctx context.Context, id string) (*domain.ServiceTier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tier, ok := m.tiers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *tier
	return &copy, nil
}

func (m *MockTierRepository) GetAll(ctx context.Context) ([]*domain.ServiceTier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.ServiceTier, 0, len(m.tiers))
	for _, t := range m.tiers {
		copy := *t
		result = append(result, &copy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BasePrice.LessThan(result[j].BasePrice)
	})
	return result, nil
}

func (m *MockTierRepository) Update(ctx context.Context, tier *domain.ServiceTier) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tiers[tier.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *tier
	m.tiers[tier.ID] = &copy
	return nil
}

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Phone == phone {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	AcquireCallCount int32
	ReleaseCallCount int32

	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireCustomerLock(ctx context.Context, customerID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[customerID] {
		return false, nil
	}
	m.locks[customerID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseCustomerLock(ctx context.Context, customerID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, customerID)
	return nil
}

// Held reports whether the customer's lock is currently held.
func (m *MockLockStore) Held(customerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locks[customerID]
}
