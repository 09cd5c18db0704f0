package app

import (
	"context"
	"time"

	"github.com/jruizdesign/HotelManagement/internal/domain"
)

// Cache keys for the full-collection reads. Mutations in FrontDeskService
// evict these so the next read reflects the write.
const (
	keyRooms    = "rooms:all"
	keyBookings = "bookings:all"
	keyLogs     = "logs:all"
	keyGuests   = "guests:all"
)

// QueryService serves the pure reads. Filtering and pagination are
// presentation concerns and do not happen here.
type QueryService struct {
	repo     domain.Repository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.Repository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return cached(ctx, s, keyRooms, s.repo.ListRooms)
}

func (s *QueryService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return cached(ctx, s, keyBookings, s.repo.ListBookings)
}

// ListLogs returns the audit trail newest first.
func (s *QueryService) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	return cached(ctx, s, keyLogs, s.repo.ListLogs)
}

func (s *QueryService) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	return cached(ctx, s, keyGuests, s.repo.ListGuests)
}

// cached serves key from the cache when possible, falling back to the repo
// and populating the cache on a miss. A nil cache disables caching.
func cached[T any](ctx context.Context, s *QueryService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var out []T
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		// copy so later callers cannot mutate the cached value through
		// the returned slice
		cp := make([]T, len(out))
		copy(cp, out)
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}
